package brand

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/ecolife/ecolife-api/pkg/errors"
	"github.com/ecolife/ecolife-api/pkg/util"
)

// Service exposes brand scoring and search telemetry.
type Service interface {
	Lookup(ctx context.Context, name string) (Score, error)
	Trending(ctx context.Context) ([]TrendingBrand, error)
	Recent(ctx context.Context) ([]Lookup, error)
}

type service struct {
	cfg    Config
	trends TrendStore
	repo   LookupRepository
	logger *slog.Logger
	now    func() time.Time
	newID  func() uuid.UUID
}

// NewService wires up the brand domain.
func NewService(cfg Config, trends TrendStore, repo LookupRepository, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		trends: trends,
		repo:   repo,
		logger: logger.With("component", "brand.service"),
		now:    util.NowUTC,
		newID:  uuid.New,
	}
}

func (s *service) Lookup(ctx context.Context, name string) (Score, error) {
	if strings.TrimSpace(name) == "" {
		return Score{}, apperrors.Wrap(apperrors.CodeNotFound, "brand not found", nil)
	}
	score := Compute(name)
	s.record(ctx, score)
	return score, nil
}

// record stores telemetry for a lookup. Failures are logged and swallowed.
func (s *service) record(ctx context.Context, score Score) {
	display := strings.TrimSpace(score.Name)
	canonical := strings.ToLower(display)
	if err := s.trends.IncrementSearch(ctx, canonical, display); err != nil {
		s.logger.Warn("brand trending update failed", "brand", display, "error", err)
	}
	lookup := Lookup{
		ID:         s.newID(),
		Name:       score.Name,
		Score:      score.Score,
		EcoRating:  score.EcoRating,
		LookedUpAt: s.now(),
	}
	if err := s.repo.Append(ctx, lookup); err != nil {
		s.logger.Warn("brand lookup log failed", "brand", display, "error", err)
	}
	s.logger.Info("brand scored", "brand", display, "score", score.Score, "rating", score.EcoRating)
}

func (s *service) Trending(ctx context.Context) ([]TrendingBrand, error) {
	items, err := s.trends.TopSearches(ctx, s.cfg.TrendingLimit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStoreError, "failed to load trending brands", err)
	}
	if items == nil {
		items = []TrendingBrand{}
	}
	return items, nil
}

func (s *service) Recent(ctx context.Context) ([]Lookup, error) {
	items, err := s.repo.Recent(ctx, s.cfg.RecentLimit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStoreError, "failed to load recent lookups", err)
	}
	if items == nil {
		items = []Lookup{}
	}
	return items, nil
}
