package aqi

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	apperrors "github.com/ecolife/ecolife-api/pkg/errors"
)

// Service exposes the AQI estimator to transports.
type Service interface {
	Estimate(ctx context.Context, req Request) (Reading, error)
}

type service struct {
	logger *slog.Logger
}

// NewService wires up the AQI domain.
func NewService(logger *slog.Logger) Service {
	return &service{logger: logger.With("component", "aqi.service")}
}

func (s *service) Estimate(_ context.Context, req Request) (Reading, error) {
	if utf8.RuneCountInString(req.Zip) < minZipLength {
		return Reading{}, apperrors.Wrap(apperrors.CodeInvalidInput, "zip must be at least 5 characters", nil)
	}
	reading := Estimate(req.Zip)
	s.logger.Debug("aqi estimated", "zip", strings.TrimSpace(req.Zip), "value", reading.Value, "category", reading.Category)
	return reading, nil
}
