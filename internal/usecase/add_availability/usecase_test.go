package add_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
	"github.com/m04kA/MDT-ScheduleService/pkg/ptr"
)

type fakeAvailabilityRepo struct {
	overlapping []*domain.AvailabilityWindow
	createErr   error
	created     *domain.AvailabilityWindow
}

func (f *fakeAvailabilityRepo) Create(_ context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *window
	stored.ID = 42
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeAvailabilityRepo) GetOverlapping(_ context.Context, _ int64, _, _ time.Time) ([]*domain.AvailabilityWindow, error) {
	return f.overlapping, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func validRequest(t *testing.T) *Request {
	return &Request{
		MediatorID: 10,
		Role:       domain.RoleMediator,
		Start:      ts(t, "2026-03-10T09:00:00Z"),
		End:        ts(t, "2026-03-10T18:00:00Z"),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.Note = ptr.Ptr("  приём в офисе  ")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(10), resp.MediatorID)
	require.NotNil(t, resp.Note)
	assert.Equal(t, "приём в офисе", *resp.Note)
	require.NotNil(t, repo.created)
	assert.Equal(t, ts(t, "2026-03-10T09:00:00Z"), repo.created.StartAt)
}

func TestExecute_TouchingWindowAllowed(t *testing.T) {
	// Репозиторий обязан отфильтровать касающиеся окна: полуоткрытое
	// сравнение start_at < end AND end_at > start их не вернёт
	repo := &fakeAvailabilityRepo{}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.Start = ts(t, "2026-03-10T18:00:00Z")
	req.End = ts(t, "2026-03-10T20:00:00Z")

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestExecute_WindowOverlap(t *testing.T) {
	repo := &fakeAvailabilityRepo{
		overlapping: []*domain.AvailabilityWindow{{
			ID:         7,
			MediatorID: 10,
			StartAt:    ts(t, "2026-03-10T08:00:00Z"),
			EndAt:      ts(t, "2026-03-10T10:00:00Z"),
		}},
	}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrWindowOverlap)
	assert.Nil(t, repo.created)
}

func TestExecute_ClientRoleRejected(t *testing.T) {
	uc := NewUseCase(&fakeAvailabilityRepo{}, &fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.Role = domain.RoleClient

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrMediatorOnly)
}

func TestExecute_InvalidInterval(t *testing.T) {
	uc := NewUseCase(&fakeAvailabilityRepo{}, &fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.End = req.Start

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestExecute_NoteTooLong(t *testing.T) {
	uc := NewUseCase(&fakeAvailabilityRepo{}, &fakeTxManager{}, nopLogger{})

	long := make([]byte, domain.MaxWindowNoteLength+1)
	for i := range long {
		long[i] = 'a'
	}

	req := validRequest(t)
	req.Note = ptr.Ptr(string(long))

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CreateFailure(t *testing.T) {
	repo := &fakeAvailabilityRepo{createErr: errors.New("connection reset")}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrInternal)
}
