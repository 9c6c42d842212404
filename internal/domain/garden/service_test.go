package garden

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ecolife/ecolife-api/internal/domain/plant"
	apperrors "github.com/ecolife/ecolife-api/pkg/errors"
)

const testSecret = "garden-test-secret"

type fixture struct {
	svc   *service
	store *stubStore
	now   time.Time
}

func newFixture(t *testing.T, maxPlants int) *fixture {
	t.Helper()
	f := &fixture{
		store: &stubStore{gardens: map[uuid.UUID][]int{}},
		now:   time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
	}
	f.svc = &service{
		cfg:     Config{Secret: testSecret, SessionTTL: time.Hour, MaxPlants: maxPlants},
		store:   f.store,
		catalog: plant.DefaultCatalog(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     func() time.Time { return f.now },
		newID:   uuid.New,
	}
	return f
}

func plantIDs(g Garden) []int {
	out := make([]int, 0, len(g.Plants))
	for _, p := range g.Plants {
		out = append(out, p.ID)
	}
	return out
}

func TestGardenSessionRoundTrip(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	require.Equal(t, f.now.Add(time.Hour), session.ExpiresAt)

	id, err := f.svc.Resolve(ctx, session.Token)
	require.NoError(t, err)
	require.Equal(t, session.ID, id)
}

func TestGardenAddRemoveList(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	session, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	g, err := f.svc.Add(ctx, session.ID, 6)
	require.NoError(t, err)
	g, err = f.svc.Add(ctx, session.ID, 1)
	require.NoError(t, err)
	g, err = f.svc.Add(ctx, session.ID, 6)
	require.NoError(t, err)
	require.Equal(t, []int{6, 1}, plantIDs(g))
	require.Equal(t, "Aloe Vera", g.Plants[0].Name)

	g, err = f.svc.Remove(ctx, session.ID, 6)
	require.NoError(t, err)
	require.Equal(t, []int{1}, plantIDs(g))

	g, err = f.svc.Remove(ctx, session.ID, 42)
	require.NoError(t, err)
	require.Equal(t, []int{1}, plantIDs(g))

	g, err = f.svc.List(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, session.ID, g.SessionID)
	require.Equal(t, []int{1}, plantIDs(g))
}

func TestGardenAddUnknownPlant(t *testing.T) {
	f := newFixture(t, 0)
	session, err := f.svc.StartSession(context.Background())
	require.NoError(t, err)

	_, err = f.svc.Add(context.Background(), session.ID, 404)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestGardenFull(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	session, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = f.svc.Add(ctx, session.ID, 1)
	require.NoError(t, err)
	_, err = f.svc.Add(ctx, session.ID, 2)
	require.NoError(t, err)
	_, err = f.svc.Add(ctx, session.ID, 2)
	require.NoError(t, err)

	_, err = f.svc.Add(ctx, session.ID, 3)
	require.True(t, apperrors.IsCode(err, apperrors.CodeGardenFull))
}

func TestGardenResolveRejectsBadTokens(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	session, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = f.svc.Resolve(ctx, "")
	require.True(t, apperrors.IsCode(err, apperrors.CodeSessionInvalid))

	_, err = f.svc.Resolve(ctx, "not-a-jwt")
	require.True(t, apperrors.IsCode(err, apperrors.CodeSessionInvalid))

	forged, err := signSession("other-secret", session.ID, f.now, time.Hour)
	require.NoError(t, err)
	_, err = f.svc.Resolve(ctx, forged)
	require.True(t, apperrors.IsCode(err, apperrors.CodeSessionInvalid))

	f.now = f.now.Add(2 * time.Hour)
	_, err = f.svc.Resolve(ctx, session.Token)
	require.True(t, apperrors.IsCode(err, apperrors.CodeSessionInvalid))
}

func TestGardenResolveUnknownSession(t *testing.T) {
	f := newFixture(t, 0)
	token, err := signSession(testSecret, uuid.New(), f.now, time.Hour)
	require.NoError(t, err)

	_, err = f.svc.Resolve(context.Background(), token)
	require.True(t, apperrors.IsCode(err, apperrors.CodeSessionInvalid))
}

type stubStore struct {
	gardens map[uuid.UUID][]int
}

func (s *stubStore) Create(_ context.Context, id uuid.UUID, _ time.Duration) error {
	s.gardens[id] = []int{}
	return nil
}

func (s *stubStore) PlantIDs(_ context.Context, id uuid.UUID) ([]int, error) {
	ids, ok := s.gardens[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return append([]int(nil), ids...), nil
}

func (s *stubStore) Update(_ context.Context, id uuid.UUID, fn func([]int) ([]int, error)) ([]int, error) {
	ids, ok := s.gardens[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	next, err := fn(append([]int(nil), ids...))
	if err != nil {
		return nil, err
	}
	s.gardens[id] = next
	return next, nil
}
