package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

const (
	JobsListCachePattern = "jobs:list:*"
	JobsListCacheTTL     = 10 * time.Minute
)

type jobListCacheKeyInput struct {
	Query       string `json:"query"`
	DeletedOnly bool   `json:"deleted_only"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// JobsListCacheKey derives the cache key of a listing. Queries differing only
// in case or spacing share a key, matching the case-insensitive title filter.
func JobsListCacheKey(params JobListParams) string {
	in := jobListCacheKeyInput{
		Query:       normalizeSearchValue(params.Query),
		DeletedOnly: params.DeletedOnly,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:list:" + hex.EncodeToString(sum[:])
}
