package garden

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecolife/ecolife-api/internal/domain/plant"
	apperrors "github.com/ecolife/ecolife-api/pkg/errors"
	"github.com/ecolife/ecolife-api/pkg/util"
)

// Service manages per-session gardens held in memory.
type Service interface {
	StartSession(ctx context.Context) (Session, error)
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
	List(ctx context.Context, sessionID uuid.UUID) (Garden, error)
	Add(ctx context.Context, sessionID uuid.UUID, plantID int) (Garden, error)
	Remove(ctx context.Context, sessionID uuid.UUID, plantID int) (Garden, error)
}

type service struct {
	cfg     Config
	store   Store
	catalog PlantCatalog
	logger  *slog.Logger
	now     func() time.Time
	newID   func() uuid.UUID
}

// NewService wires up the garden domain.
func NewService(cfg Config, store Store, catalog PlantCatalog, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg,
		store:   store,
		catalog: catalog,
		logger:  logger.With("component", "garden.service"),
		now:     util.NowUTC,
		newID:   uuid.New,
	}
}

func (s *service) StartSession(ctx context.Context) (Session, error) {
	id := s.newID()
	now := s.now()
	token, err := signSession(s.cfg.Secret, id, now, s.cfg.SessionTTL)
	if err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeStoreError, "failed to sign garden session", err)
	}
	if err := s.store.Create(ctx, id, s.cfg.SessionTTL); err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeStoreError, "failed to create garden", err)
	}
	s.logger.Info("garden session started", "session_id", id)
	return Session{ID: id, Token: token, ExpiresAt: now.Add(s.cfg.SessionTTL)}, nil
}

func (s *service) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return uuid.Nil, apperrors.Wrap(apperrors.CodeSessionInvalid, "missing garden session", nil)
	}
	id, err := parseSession(s.cfg.Secret, token, s.now())
	if err != nil {
		return uuid.Nil, apperrors.Wrap(apperrors.CodeSessionInvalid, "garden session invalid", err)
	}
	if _, err := s.store.PlantIDs(ctx, id); err != nil {
		return uuid.Nil, s.storeErr(err)
	}
	return id, nil
}

func (s *service) List(ctx context.Context, sessionID uuid.UUID) (Garden, error) {
	ids, err := s.store.PlantIDs(ctx, sessionID)
	if err != nil {
		return Garden{}, s.storeErr(err)
	}
	return s.garden(sessionID, ids), nil
}

func (s *service) Add(ctx context.Context, sessionID uuid.UUID, plantID int) (Garden, error) {
	if _, ok := s.catalog.ByID(plantID); !ok {
		return Garden{}, apperrors.Wrap(apperrors.CodeNotFound, "plant not found", nil)
	}
	ids, err := s.store.Update(ctx, sessionID, func(ids []int) ([]int, error) {
		if slices.Contains(ids, plantID) {
			return ids, nil
		}
		if s.cfg.MaxPlants > 0 && len(ids) >= s.cfg.MaxPlants {
			return nil, apperrors.Wrap(apperrors.CodeGardenFull, "garden is full", nil)
		}
		return append(ids, plantID), nil
	})
	if err != nil {
		return Garden{}, s.storeErr(err)
	}
	s.logger.Debug("plant added to garden", "session_id", sessionID, "plant_id", plantID)
	return s.garden(sessionID, ids), nil
}

func (s *service) Remove(ctx context.Context, sessionID uuid.UUID, plantID int) (Garden, error) {
	ids, err := s.store.Update(ctx, sessionID, func(ids []int) ([]int, error) {
		return slices.DeleteFunc(ids, func(id int) bool { return id == plantID }), nil
	})
	if err != nil {
		return Garden{}, s.storeErr(err)
	}
	return s.garden(sessionID, ids), nil
}

func (s *service) garden(sessionID uuid.UUID, ids []int) Garden {
	plants := make([]plant.Plant, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.catalog.ByID(id); ok {
			plants = append(plants, p)
		}
	}
	return Garden{SessionID: sessionID, Plants: plants}
}

func (s *service) storeErr(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, ErrSessionNotFound) {
		return apperrors.Wrap(apperrors.CodeSessionInvalid, "garden session expired", err)
	}
	return apperrors.Wrap(apperrors.CodeStoreError, "garden store failure", err)
}
