package appointment

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MDT-ScheduleService/pkg/txmanager"
)

type failingExecutor struct {
	err error
}

func (f *failingExecutor) ExecContext(_ context.Context, _ string, _ ...interface{}) (sql.Result, error) {
	return nil, f.err
}

func (f *failingExecutor) QueryContext(_ context.Context, _ string, _ ...interface{}) (*sql.Rows, error) {
	return nil, f.err
}

func (f *failingExecutor) QueryRowContext(_ context.Context, _ string, _ ...interface{}) *sql.Row {
	return nil
}

func TestGetActiveOverlapping_PreservesDriverError(t *testing.T) {
	driverErr := &pq.Error{Code: "40001"}
	repo := NewRepository(&failingExecutor{err: driverErr})

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	_, err := repo.GetActiveOverlappingByMediator(context.Background(), 10, start, end)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecQuery)
	// Конфликт сериализации должен пережить обертку репозитория,
	// иначе DoSerializable не сможет повторить транзакцию
	assert.True(t, txmanager.IsSerializationFailure(err))

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestGetByParty_PreservesDriverError(t *testing.T) {
	driverErr := &pq.Error{Code: "40001"}
	repo := NewRepository(&failingExecutor{err: driverErr})

	_, err := repo.GetByMediatorID(context.Background(), 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.True(t, txmanager.IsSerializationFailure(err))
}
