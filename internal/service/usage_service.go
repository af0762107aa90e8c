package service

import (
	"context"
	"log/slog"
	"time"

	"massive-gateway/internal/model"
	"massive-gateway/internal/repository"
)

// UsageService records gateway requests for ops and billing questions.
// With a nil repository (no DATABASE_URL) recording is a no-op.
type UsageService struct {
	repo *repository.UsageRepository
}

func NewUsageService(repo *repository.UsageRepository) *UsageService {
	return &UsageService{repo: repo}
}

func (s *UsageService) Enabled() bool {
	return s != nil && s.repo != nil
}

// Record inserts asynchronously so the data path never waits on Postgres.
func (s *UsageService) Record(entry model.UsageEntry) {
	if !s.Enabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.repo.Insert(ctx, entry); err != nil {
			slog.Warn("usage entry insert failed", "endpoint", entry.Endpoint, "error", err)
		}
	}()
}

func (s *UsageService) Query(ctx context.Context, query model.UsageQuery) ([]model.UsageEntry, model.Meta, error) {
	if !s.Enabled() {
		return nil, model.Meta{}, model.ErrUsageDisabled
	}

	return s.repo.Query(ctx, query)
}
