package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
	appointmentRepo "github.com/m04kA/MDT-ScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/MDT-ScheduleService/internal/service/appointments/models"
)

type fakeRepo struct {
	appointments map[int64]*domain.Appointment
	byMediator   []*domain.Appointment
	byClient     []*domain.Appointment
}

func newFakeRepo(items ...*domain.Appointment) *fakeRepo {
	repo := &fakeRepo{appointments: make(map[int64]*domain.Appointment)}
	for _, a := range items {
		repo.appointments[a.ID] = a
	}
	return repo
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeRepo) GetByMediatorID(_ context.Context, _ int64) ([]*domain.Appointment, error) {
	return f.byMediator, nil
}

func (f *fakeRepo) GetByClientID(_ context.Context, _ int64) ([]*domain.Appointment, error) {
	return f.byClient, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64) error {
	appt, ok := f.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	now := time.Now()
	appt.Status = domain.StatusCancelled
	appt.CancelledAt = &now
	return nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := f.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
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

func scheduledAppointment(t *testing.T) *domain.Appointment {
	return &domain.Appointment{
		ID:         1,
		CaseID:     5,
		MediatorID: 10,
		ClientID:   20,
		StartAt:    ts(t, "2026-03-10T10:00:00Z"),
		EndAt:      ts(t, "2026-03-10T11:00:00Z"),
		Status:     domain.StatusScheduled,
		CreatedBy:  20,
	}
}

func newTestService(repo *fakeRepo, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTime{now: now}
	return svc
}

func TestGetByID(t *testing.T) {
	repo := newFakeRepo(scheduledAppointment(t))
	svc := newTestService(repo, ts(t, "2026-03-10T12:00:00Z"))

	t.Run("party can read", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing appointment", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 404, 20)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestGetMyAppointments(t *testing.T) {
	repo := newFakeRepo()
	repo.byMediator = []*domain.Appointment{scheduledAppointment(t)}
	repo.byClient = []*domain.Appointment{scheduledAppointment(t), scheduledAppointment(t)}
	svc := newTestService(repo, ts(t, "2026-03-10T12:00:00Z"))

	t.Run("mediator axis", func(t *testing.T) {
		resp, err := svc.GetMyAppointments(context.Background(), &models.GetMyAppointmentsRequest{
			UserID: 10,
			Role:   domain.RoleMediator,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Appointments, 1)
	})

	t.Run("client axis", func(t *testing.T) {
		resp, err := svc.GetMyAppointments(context.Background(), &models.GetMyAppointmentsRequest{
			UserID: 20,
			Role:   domain.RoleClient,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Appointments, 2)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.GetMyAppointments(context.Background(), &models.GetMyAppointmentsRequest{
			UserID: 20,
			Role:   "Admin",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	t.Run("client cancels scheduled appointment", func(t *testing.T) {
		repo := newFakeRepo(scheduledAppointment(t))
		svc := newTestService(repo, ts(t, "2026-03-10T09:00:00Z"))

		resp, err := svc.Cancel(context.Background(), 1, 20)

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		require.NotNil(t, resp.CancelledAt)
	})

	t.Run("mediator cancels too", func(t *testing.T) {
		repo := newFakeRepo(scheduledAppointment(t))
		svc := newTestService(repo, ts(t, "2026-03-10T09:00:00Z"))

		resp, err := svc.Cancel(context.Background(), 1, 10)

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	})

	t.Run("repeated cancel is idempotent", func(t *testing.T) {
		repo := newFakeRepo(scheduledAppointment(t))
		svc := newTestService(repo, ts(t, "2026-03-10T09:00:00Z"))

		first, err := svc.Cancel(context.Background(), 1, 20)
		require.NoError(t, err)

		second, err := svc.Cancel(context.Background(), 1, 20)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), second.Status)
		assert.Equal(t, first.CancelledAt, second.CancelledAt)
	})

	t.Run("completed appointment cannot be cancelled", func(t *testing.T) {
		appt := scheduledAppointment(t)
		appt.Status = domain.StatusCompleted
		repo := newFakeRepo(appt)
		svc := newTestService(repo, ts(t, "2026-03-10T12:00:00Z"))

		_, err := svc.Cancel(context.Background(), 1, 20)

		assert.ErrorIs(t, err, ErrCannotCancel)
		stored := repo.appointments[1]
		assert.Equal(t, domain.StatusCompleted, stored.Status)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		repo := newFakeRepo(scheduledAppointment(t))
		svc := newTestService(repo, ts(t, "2026-03-10T09:00:00Z"))

		_, err := svc.Cancel(context.Background(), 1, 99)

		assert.ErrorIs(t, err, ErrAccessDenied)
		stored := repo.appointments[1]
		assert.Equal(t, domain.StatusScheduled, stored.Status)
	})

	t.Run("missing appointment", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, ts(t, "2026-03-10T09:00:00Z"))

		_, err := svc.Cancel(context.Background(), 404, 20)

		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestComplete(t *testing.T) {
	t.Run("mediator completes after end", func(t *testing.T) {
		repo := newFakeRepo(scheduledAppointment(t))
		svc := newTestService(repo, ts(t, "2026-03-10T11:00:00Z"))

		resp, err := svc.Complete(context.Background(), 1, 10)

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	})

	t.Run("cannot complete before end", func(t *testing.T) {
		repo := newFakeRepo(scheduledAppointment(t))
		svc := newTestService(repo, ts(t, "2026-03-10T10:30:00Z"))

		_, err := svc.Complete(context.Background(), 1, 10)

		assert.ErrorIs(t, err, ErrCannotComplete)
	})

	t.Run("client cannot complete", func(t *testing.T) {
		repo := newFakeRepo(scheduledAppointment(t))
		svc := newTestService(repo, ts(t, "2026-03-10T12:00:00Z"))

		_, err := svc.Complete(context.Background(), 1, 20)

		assert.ErrorIs(t, err, ErrMediatorOnly)
	})

	t.Run("stranger gets access denied", func(t *testing.T) {
		repo := newFakeRepo(scheduledAppointment(t))
		svc := newTestService(repo, ts(t, "2026-03-10T12:00:00Z"))

		_, err := svc.Complete(context.Background(), 1, 99)

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("cancelled appointment cannot be completed", func(t *testing.T) {
		appt := scheduledAppointment(t)
		appt.Status = domain.StatusCancelled
		repo := newFakeRepo(appt)
		svc := newTestService(repo, ts(t, "2026-03-10T12:00:00Z"))

		_, err := svc.Complete(context.Background(), 1, 10)

		assert.ErrorIs(t, err, ErrCannotComplete)
	})

	t.Run("completed appointment stays completed", func(t *testing.T) {
		appt := scheduledAppointment(t)
		appt.Status = domain.StatusCompleted
		repo := newFakeRepo(appt)
		svc := newTestService(repo, ts(t, "2026-03-10T12:00:00Z"))

		_, err := svc.Complete(context.Background(), 1, 10)

		assert.ErrorIs(t, err, ErrCannotComplete)
	})
}
