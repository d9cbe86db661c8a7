package usecase

import (
	"context"
	"time"

	"hr-portal/internal/infrastructure/notify"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// ObjectStore is the blob store holding applicant documents.
type ObjectStore interface {
	NewUploadURL(ctx context.Context) (storageID string, uploadURL string, err error)
	DownloadURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type Mailer interface {
	Send(ctx context.Context, m notify.Message) error
}

type EventPublisher interface {
	Publish(eventType, id, detail string)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, string, string) {}

func publisherOrNop(p EventPublisher) EventPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}
