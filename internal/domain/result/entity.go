package result

import (
	"errors"
	"math"
	"strings"
	"time"

	"hr-portal/internal/domain/aptitude"

	"github.com/google/uuid"
)

var (
	ErrNotFound            = errors.New("result not found")
	ErrAlreadyAttempted    = errors.New("aptitude test already attempted")
	ErrScoreOutOfRange     = errors.New("interview score out of range")
	ErrUnknownCommissioner = errors.New("unknown commissioner")
)

const (
	MinScore = 0
	MaxScore = 100
)

// Commissioner identifies one of the six interview panel slots.
type Commissioner string

const (
	CommOne   Commissioner = "comm_one"
	CommTwo   Commissioner = "comm_two"
	CommThree Commissioner = "comm_three"
	CommFour  Commissioner = "comm_four"
	CommFive  Commissioner = "comm_five"
	Technical Commissioner = "technical"
)

var Commissioners = []Commissioner{CommOne, CommTwo, CommThree, CommFour, CommFive, Technical}

var commissionerAliases = map[string]Commissioner{
	"commone":   CommOne,
	"commtwo":   CommTwo,
	"commthree": CommThree,
	"commfour":  CommFour,
	"commfive":  CommFive,
	"technical": Technical,
}

// ParseCommissioner accepts both the snake_case names and the camelCase field
// names ("commOne") used by older clients.
func ParseCommissioner(s string) (Commissioner, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	c, ok := commissionerAliases[key]
	if !ok {
		return "", ErrUnknownCommissioner
	}
	return c, nil
}

func ValidateScore(score float64) error {
	if score < MinScore || score > MaxScore {
		return ErrScoreOutOfRange
	}
	return nil
}

type Scores struct {
	CommOne   *float64 `json:"comm_one"`
	CommTwo   *float64 `json:"comm_two"`
	CommThree *float64 `json:"comm_three"`
	CommFour  *float64 `json:"comm_four"`
	CommFive  *float64 `json:"comm_five"`
	Technical *float64 `json:"technical"`
}

func (s *Scores) field(c Commissioner) **float64 {
	switch c {
	case CommOne:
		return &s.CommOne
	case CommTwo:
		return &s.CommTwo
	case CommThree:
		return &s.CommThree
	case CommFour:
		return &s.CommFour
	case CommFive:
		return &s.CommFive
	case Technical:
		return &s.Technical
	default:
		return nil
	}
}

// Get returns the score recorded for c, or nil.
func (s Scores) Get(c Commissioner) *float64 {
	f := s.field(c)
	if f == nil {
		return nil
	}
	return *f
}

// Complete reports whether every panel slot has a score, returning them in
// panel order when it does.
func (s Scores) Complete() ([]float64, bool) {
	out := make([]float64, 0, len(Commissioners))
	for _, c := range Commissioners {
		v := s.Get(c)
		if v == nil {
			return nil, false
		}
		out = append(out, *v)
	}
	return out, true
}

type Result struct {
	ID                   uuid.UUID                 `json:"id"`
	UserID               uuid.UUID                 `json:"user_id"`
	ApplicantName        string                    `json:"applicant_name"`
	JobPost              string                    `json:"job_post"`
	TestID               uuid.UUID                 `json:"test_id"`
	SelectedAnswers      []aptitude.SelectedAnswer `json:"selected_answers"`
	AptitudeScore        float64                   `json:"aptitude_score"`
	Scores               Scores                    `json:"scores"`
	OralInterviewAverage *float64                  `json:"oral_interview_average"`
	OverallAverageScore  *float64                  `json:"overall_average_score"`
	CreatedAt            time.Time                 `json:"created_at"`
	UpdatedAt            time.Time                 `json:"updated_at"`
}

// ApplyScore records one commissioner's score and refreshes the derived
// averages. A zero score counts as submitted.
func (r *Result) ApplyScore(c Commissioner, score float64) error {
	if err := ValidateScore(score); err != nil {
		return err
	}
	f := r.Scores.field(c)
	if f == nil {
		return ErrUnknownCommissioner
	}
	v := score
	*f = &v
	r.Recompute()
	return nil
}

// Recompute sets the oral interview average to the mean of the six panel
// scores and the overall average to the mean of that and the aptitude score.
// Both stay nil until the panel is complete.
func (r *Result) Recompute() {
	scores, ok := r.Scores.Complete()
	if !ok {
		r.OralInterviewAverage = nil
		r.OverallAverageScore = nil
		return
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	oral := sum / float64(len(scores))
	overall := (r.AptitudeScore + oral) / 2
	r.OralInterviewAverage = &oral
	r.OverallAverageScore = &overall
}

// RoundAverages rounds the oral interview average to a whole number and
// derives the overall average from that rounded value, rounding it as well.
// Corrections made through a result id store whole-number averages.
func (r *Result) RoundAverages() {
	if r.OralInterviewAverage == nil {
		return
	}
	oral := math.Round(*r.OralInterviewAverage)
	overall := math.Round((r.AptitudeScore + oral) / 2)
	r.OralInterviewAverage = &oral
	r.OverallAverageScore = &overall
}
