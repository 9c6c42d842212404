package solar

import (
	"context"
	"log/slog"
	"math"

	apperrors "github.com/ecolife/ecolife-api/pkg/errors"
)

// Service exposes solar sizing to transports.
type Service interface {
	Calculate(ctx context.Context, req Request) (Estimate, error)
}

type service struct {
	logger *slog.Logger
}

// NewService wires up the solar domain.
func NewService(logger *slog.Logger) Service {
	return &service{logger: logger.With("component", "solar.service")}
}

func (s *service) Calculate(_ context.Context, req Request) (Estimate, error) {
	if req.DailyKwh == nil {
		return Estimate{}, apperrors.Wrap(apperrors.CodeInvalidInput, "dailyKwh is required", nil)
	}
	kwh := float64(*req.DailyKwh)
	if math.IsNaN(kwh) || math.IsInf(kwh, 0) {
		return Estimate{}, apperrors.Wrap(apperrors.CodeInvalidInput, "dailyKwh must be a finite number", nil)
	}
	if kwh < 0 {
		return Estimate{}, apperrors.Wrap(apperrors.CodeInvalidInput, "dailyKwh cannot be negative", nil)
	}
	if kwh > MaxDailyKwh {
		return Estimate{}, apperrors.Wrap(apperrors.CodeInvalidInput, "dailyKwh exceeds the supported maximum", nil)
	}

	est := Size(kwh)
	s.logger.Debug("solar sized", "zip", req.Zip, "daily_kwh", kwh, "panels", est.Panels, "worth_it", est.WorthIt)
	return est, nil
}
