package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hr-portal/internal/domain/applicant"
	"hr-portal/internal/metrics"
	"hr-portal/internal/pkg/workerpool"
	"hr-portal/internal/repository"

	"go.uber.org/zap"
)

// Purger hard-deletes soft-deleted rows on a fixed interval.
type Purger struct {
	jobs     repository.JobRepository
	tests    repository.AptitudeTestRepository
	files    repository.ApplicantFileRepository
	cache    Cache
	store    ObjectStore
	interval time.Duration
	logger   *zap.Logger

	workers   int
	deleteRPS int
}

func NewPurger(
	jobs repository.JobRepository,
	tests repository.AptitudeTestRepository,
	files repository.ApplicantFileRepository,
	cache Cache,
	store ObjectStore,
	interval time.Duration,
	logger *zap.Logger,
) *Purger {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Purger{jobs: jobs, tests: tests, files: files, cache: cache, store: store, interval: interval, logger: logger, workers: 4}
}

// WithConcurrency sets how many stored objects are deleted in parallel and
// caps deletions per second. rps <= 0 means no cap.
func (p *Purger) WithConcurrency(workers, rps int) *Purger {
	if workers > 0 {
		p.workers = workers
	}
	p.deleteRPS = rps
	return p
}

// Run purges every interval until ctx is done.
func (p *Purger) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.PurgeOnce(ctx); err != nil {
				p.logger.Error("purge failed", zap.Error(err))
			}
		}
	}
}

func (p *Purger) PurgeOnce(ctx context.Context) error {
	var errs []error

	n, err := p.jobs.PurgeDeleted(ctx)
	if err != nil {
		errs = append(errs, err)
	}
	metrics.PurgedRows.WithLabelValues("jobs").Add(float64(n))
	if n > 0 && p.cache != nil {
		if err := p.cache.DeleteByPattern(ctx, JobsListCachePattern); err != nil {
			p.logger.Warn("jobs cache invalidation failed", zap.Error(err))
		}
	}

	n, err = p.tests.PurgeDeleted(ctx)
	if err != nil {
		errs = append(errs, err)
	}
	metrics.PurgedRows.WithLabelValues("tests").Add(float64(n))

	removed, err := p.purgeFiles(ctx)
	if err != nil {
		errs = append(errs, err)
	}
	metrics.PurgedRows.WithLabelValues("files").Add(float64(removed))

	p.logger.Info("purge finished", zap.Int("files", removed))
	return errors.Join(errs...)
}

// purgeFiles deletes each file's stored objects before its row. A file whose
// objects cannot all be deleted is kept for the next run.
func (p *Purger) purgeFiles(ctx context.Context) (int, error) {
	files, err := p.files.ListDeleted(ctx)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, nil
	}

	failed, err := p.deleteObjects(ctx, files)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, f := range files {
		if failed[f.ID.String()] {
			continue
		}
		if err := p.files.DeleteByID(ctx, f.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// deleteObjects removes the stored documents of files and returns the ids of
// files with at least one failed deletion.
func (p *Purger) deleteObjects(ctx context.Context, files []applicant.File) (map[string]bool, error) {
	failed := map[string]bool{}
	if p.store == nil {
		return failed, nil
	}

	pool := workerpool.New(p.workers, 0)
	pool.SetRateLimit(p.deleteRPS)
	results := pool.Run(ctx)

	go func() {
		defer pool.Close()
		for _, f := range files {
			for kind, key := range f.Documents {
				if key == "" {
					continue
				}
				task := workerpool.Task{Key: f.ID.String(), Run: func(ctx context.Context) error {
					if err := p.store.Delete(ctx, key); err != nil {
						return fmt.Errorf("delete %s object %s: %w", kind, key, err)
					}
					return nil
				}}
				if err := pool.Submit(ctx, task); err != nil {
					return
				}
			}
		}
	}()

	for r := range results {
		if r.Err != nil {
			failed[r.Key] = true
			p.logger.Warn("delete stored object failed", zap.String("file_id", r.Key), zap.Error(r.Err))
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return failed, nil
}
