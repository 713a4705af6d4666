package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"testing"

	"roster/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResult struct {
	affected int64
	err      error
}

func (r stubResult) LastInsertId() (int64, error) { return 0, nil }
func (r stubResult) RowsAffected() (int64, error) { return r.affected, r.err }

func TestValidateRowsAffected(t *testing.T) {
	assert.NoError(t, ValidateRowsAffected(stubResult{affected: 1}, "task", 1))

	err := ValidateRowsAffected(stubResult{affected: 0}, "task", 1)
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "task not found: 1")

	err = ValidateRowsAffected(stubResult{err: stderrors.New("unsupported")}, "task", 1)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
}

func TestExecuteUpdate_MissingRow(t *testing.T) {
	repo := setupTestDB(t)

	err := ExecuteUpdate(context.Background(), repo.db, "task", 9,
		`UPDATE tasks SET hours_worked = ? WHERE id = ?`, 1, 9)
	assert.True(t, errors.IsNotFound(err))
}

func TestHandleDatabaseError_KeepsTimeout(t *testing.T) {
	err := HandleDatabaseError("list tasks", context.DeadlineExceeded)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "The database did not respond in time. Please try again.", errors.GetUserMessage(err))
}

func TestWithTx_RollsBack(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	boom := stderrors.New("boom")

	err := WithTx(ctx, repo.db, func(tx *sql.Tx) error {
		if err := createTask(ctx, tx, &Task{Name: "Temp", Kind: "coding", DurationHours: 1}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
