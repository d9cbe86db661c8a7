package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hr-portal/internal/domain/review"
	"hr-portal/internal/infrastructure/notify"
	"hr-portal/internal/metrics"
	"hr-portal/internal/repository"
	"hr-portal/internal/ws"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const notifyTimeout = 10 * time.Second

type ReviewUsecase interface {
	// Shortlist, Reject and Appoint report whether the applicant's standing
	// changed. Repeating a call is a no-op.
	Shortlist(ctx context.Context, userID uuid.UUID) (bool, error)
	Reject(ctx context.Context, userID uuid.UUID, reason string) (bool, error)
	Appoint(ctx context.Context, userID uuid.UUID) (bool, error)
	List(ctx context.Context, set review.Set) ([]review.Entry, error)
}

type Review struct {
	reviews repository.ReviewRepository
	files   repository.ApplicantFileRepository
	mailer  Mailer
	events  EventPublisher
	logger  *zap.Logger
}

func NewReviewUsecase(
	reviews repository.ReviewRepository,
	files repository.ApplicantFileRepository,
	mailer Mailer,
	events EventPublisher,
	logger *zap.Logger,
) *Review {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Review{reviews: reviews, files: files, mailer: mailer, events: publisherOrNop(events), logger: logger}
}

func (u *Review) Shortlist(ctx context.Context, userID uuid.UUID) (bool, error) {
	return u.move(ctx, review.Shortlisted, userID, nil)
}

func (u *Review) Reject(ctx context.Context, userID uuid.UUID, reason string) (bool, error) {
	var r *string
	if reason = strings.TrimSpace(reason); reason != "" {
		r = &reason
	}
	return u.move(ctx, review.Rejected, userID, r)
}

func (u *Review) Appoint(ctx context.Context, userID uuid.UUID) (bool, error) {
	return u.move(ctx, review.Appointed, userID, nil)
}

func (u *Review) List(ctx context.Context, set review.Set) ([]review.Entry, error) {
	if !set.Valid() {
		return nil, invalidInput("unknown review set %q", set)
	}
	entries, err := u.reviews.List(ctx, set)
	if err != nil {
		return nil, internalError(err)
	}
	return entries, nil
}

func (u *Review) move(ctx context.Context, set review.Set, userID uuid.UUID, reason *string) (bool, error) {
	if userID == uuid.Nil {
		return false, invalidInput("missing user id")
	}

	var clear []review.Set
	if opposite, ok := set.Opposite(); ok {
		clear = append(clear, opposite)
	}

	changed, err := u.reviews.Move(ctx, set, userID, reason, clear)
	if err != nil {
		return false, internalError(err)
	}
	if !changed {
		return false, nil
	}

	metrics.ReviewTransitions.WithLabelValues(string(set)).Inc()
	u.events.Publish(ws.EventReviewUpdated, userID.String(), string(set))
	u.notify(ctx, set, userID, reason)
	return true, nil
}

// notify emails the applicant at the address on their file. Failures are
// logged and never fail the review action.
func (u *Review) notify(ctx context.Context, set review.Set, userID uuid.UUID, reason *string) {
	if u.mailer == nil || u.files == nil {
		return
	}
	files, err := u.files.ListByUserID(ctx, userID)
	if err != nil || len(files) == 0 {
		if err != nil {
			u.logger.Warn("notification lookup failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
		metrics.NotificationsSent.WithLabelValues("skipped").Inc()
		return
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := u.mailer.Send(sendCtx, statusMessage(set, files[0].Email, files[0].Name, files[0].Post, reason)); err != nil {
		u.logger.Warn("status email failed", zap.String("user_id", userID.String()), zap.String("set", string(set)), zap.Error(err))
		metrics.NotificationsSent.WithLabelValues("failed").Inc()
		return
	}
	metrics.NotificationsSent.WithLabelValues("sent").Inc()
}

func statusMessage(set review.Set, to, name, post string, reason *string) notify.Message {
	m := notify.Message{To: to}
	switch set {
	case review.Shortlisted:
		m.Subject = "Your application has been shortlisted"
		m.Body = fmt.Sprintf("Dear %s,\n\nYour application for the post of %s has been shortlisted. You will be contacted with details of the next stage.", name, post)
	case review.Rejected:
		m.Subject = "Update on your application"
		m.Body = fmt.Sprintf("Dear %s,\n\nThank you for applying for the post of %s. Unfortunately your application was not successful.", name, post)
		if reason != nil {
			m.Body += "\n\nReason: " + *reason
		}
	case review.Appointed:
		m.Subject = "Appointment"
		m.Body = fmt.Sprintf("Dear %s,\n\nCongratulations, you have been appointed to the post of %s.", name, post)
	}
	return m
}
