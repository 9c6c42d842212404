package plant

import (
	"context"
	"log/slog"

	apperrors "github.com/ecolife/ecolife-api/pkg/errors"
)

// Service exposes plant recommendations to transports.
type Service interface {
	Recommend(ctx context.Context, req Request) ([]Plant, error)
	Get(ctx context.Context, id int) (Plant, error)
}

type service struct {
	catalog *Catalog
	logger  *slog.Logger
}

// NewService wires up the plant domain over a catalog.
func NewService(catalog *Catalog, logger *slog.Logger) Service {
	return &service{catalog: catalog, logger: logger.With("component", "plant.service")}
}

func (s *service) Recommend(_ context.Context, req Request) ([]Plant, error) {
	crit, weather, err := criteriaFrom(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid recommendation filter", err)
	}
	plants := Recommend(s.catalog, crit)
	s.logger.Debug("plants recommended", "weather", weather, "disease", crit.Disease, "matches", len(plants))
	return plants, nil
}

func (s *service) Get(_ context.Context, id int) (Plant, error) {
	p, ok := s.catalog.ByID(id)
	if !ok {
		return Plant{}, apperrors.Wrap(apperrors.CodeNotFound, "plant not found", nil)
	}
	return p, nil
}

// criteriaFrom validates the request. Weather is checked but does not narrow the
// catalog: plants carry no climate attribute.
func criteriaFrom(req Request) (Criteria, Weather, error) {
	weather, err := ParseWeather(req.Weather)
	if err != nil {
		return Criteria{}, "", err
	}
	sun, err := ParseSunlight(req.Sunlight)
	if err != nil {
		return Criteria{}, "", err
	}
	water, err := ParseWatering(req.Watering)
	if err != nil {
		return Criteria{}, "", err
	}
	care, err := ParseCareIntensity(req.CareIntensity)
	if err != nil {
		return Criteria{}, "", err
	}
	return Criteria{
		Sunlight:      sun,
		Watering:      water,
		CareIntensity: care,
		Disease:       req.Disease,
	}, weather, nil
}
