package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
	availabilityRepo "github.com/m04kA/MDT-ScheduleService/internal/infra/storage/availability"
	"github.com/m04kA/MDT-ScheduleService/internal/service/availability/models"
)

type fakeRepo struct {
	windows map[int64]*domain.AvailabilityWindow

	lastFrom *time.Time
	lastTo   *time.Time
}

func newFakeRepo(items ...*domain.AvailabilityWindow) *fakeRepo {
	repo := &fakeRepo{windows: make(map[int64]*domain.AvailabilityWindow)}
	for _, w := range items {
		repo.windows[w.ID] = w
	}
	return repo
}

func (f *fakeRepo) GetByMediatorID(_ context.Context, mediatorID int64, from, to *time.Time) ([]*domain.AvailabilityWindow, error) {
	f.lastFrom = from
	f.lastTo = to

	var out []*domain.AvailabilityWindow
	for _, w := range f.windows {
		if w.MediatorID != mediatorID {
			continue
		}
		if from != nil && w.StartAt.Before(*from) {
			continue
		}
		if to != nil && w.EndAt.After(*to) {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, mediatorID, windowID int64) error {
	w, ok := f.windows[windowID]
	if !ok || w.MediatorID != mediatorID {
		return availabilityRepo.ErrWindowNotFound
	}
	delete(f.windows, windowID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func windowFixture(t *testing.T, id, mediatorID int64, start, end string) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		ID:         id,
		MediatorID: mediatorID,
		StartAt:    ts(t, start),
		EndAt:      ts(t, end),
	}
}

func TestGetMyWindows(t *testing.T) {
	repo := newFakeRepo(
		windowFixture(t, 1, 10, "2026-03-10T09:00:00Z", "2026-03-10T12:00:00Z"),
		windowFixture(t, 2, 10, "2026-03-11T09:00:00Z", "2026-03-11T12:00:00Z"),
		windowFixture(t, 3, 77, "2026-03-10T09:00:00Z", "2026-03-10T12:00:00Z"),
	)
	svc := NewService(repo, nopLogger{})

	t.Run("mediator sees own windows", func(t *testing.T) {
		resp, err := svc.GetMyWindows(context.Background(), 10, domain.RoleMediator, &models.ListWindowsRequest{})
		require.NoError(t, err)
		assert.Len(t, resp.Availability, 2)
	})

	t.Run("client role is rejected", func(t *testing.T) {
		_, err := svc.GetMyWindows(context.Background(), 10, domain.RoleClient, &models.ListWindowsRequest{})
		assert.ErrorIs(t, err, ErrMediatorOnly)
	})

	t.Run("range filter narrows result", func(t *testing.T) {
		from := ts(t, "2026-03-11T00:00:00Z")
		to := ts(t, "2026-03-12T00:00:00Z")
		resp, err := svc.GetMyWindows(context.Background(), 10, domain.RoleMediator, &models.ListWindowsRequest{
			From: &from,
			To:   &to,
		})
		require.NoError(t, err)
		require.Len(t, resp.Availability, 1)
		assert.Equal(t, int64(2), resp.Availability[0].ID)
	})
}

func TestGetMediatorWindows(t *testing.T) {
	repo := newFakeRepo(
		windowFixture(t, 1, 10, "2026-03-10T09:00:00Z", "2026-03-10T12:00:00Z"),
	)
	svc := NewService(repo, nopLogger{})

	t.Run("any caller reads published windows", func(t *testing.T) {
		resp, err := svc.GetMediatorWindows(context.Background(), &models.ListWindowsRequest{MediatorID: 10})
		require.NoError(t, err)
		assert.Len(t, resp.Availability, 1)
	})

	t.Run("unknown mediator yields empty list", func(t *testing.T) {
		resp, err := svc.GetMediatorWindows(context.Background(), &models.ListWindowsRequest{MediatorID: 999})
		require.NoError(t, err)
		assert.Empty(t, resp.Availability)
	})

	t.Run("mediator id is required", func(t *testing.T) {
		_, err := svc.GetMediatorWindows(context.Background(), &models.ListWindowsRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDeleteWindow(t *testing.T) {
	t.Run("owner deletes window", func(t *testing.T) {
		repo := newFakeRepo(windowFixture(t, 1, 10, "2026-03-10T09:00:00Z", "2026-03-10T12:00:00Z"))
		svc := NewService(repo, nopLogger{})

		err := svc.DeleteWindow(context.Background(), 10, domain.RoleMediator, 1)

		require.NoError(t, err)
		assert.Empty(t, repo.windows)
	})

	t.Run("foreign window looks like not found", func(t *testing.T) {
		repo := newFakeRepo(windowFixture(t, 1, 77, "2026-03-10T09:00:00Z", "2026-03-10T12:00:00Z"))
		svc := NewService(repo, nopLogger{})

		err := svc.DeleteWindow(context.Background(), 10, domain.RoleMediator, 1)

		assert.ErrorIs(t, err, ErrWindowNotFound)
		assert.Len(t, repo.windows, 1)
	})

	t.Run("client role is rejected", func(t *testing.T) {
		repo := newFakeRepo(windowFixture(t, 1, 10, "2026-03-10T09:00:00Z", "2026-03-10T12:00:00Z"))
		svc := NewService(repo, nopLogger{})

		err := svc.DeleteWindow(context.Background(), 10, domain.RoleClient, 1)

		assert.ErrorIs(t, err, ErrMediatorOnly)
	})

	t.Run("missing window", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, nopLogger{})

		err := svc.DeleteWindow(context.Background(), 10, domain.RoleMediator, 404)

		assert.ErrorIs(t, err, ErrWindowNotFound)
	})
}
