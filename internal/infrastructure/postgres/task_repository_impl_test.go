package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/apperror"
	"github.com/oksasatya/go-users-tasks-api/internal/domain/entity"
)

var taskCols = []string{"id", "name", "description", "status", "user_id", "created_at", "updated_at"}

func newTaskRepoWithMock(t *testing.T) (*TaskRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewTaskRepository(mock), mock
}

func TestTaskRepository_Create(t *testing.T) {
	repo, mock := newTaskRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO tasks`).
		WithArgs("write docs", "", 0, "u-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("t-1", now, now))

	task := &entity.Task{Name: "write docs", UserID: "u-1"}
	require.NoError(t, repo.Create(context.Background(), task))
	assert.Equal(t, "t-1", task.ID)
}

func TestTaskRepository_GetByID_ScopedToUser(t *testing.T) {
	repo, mock := newTaskRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND user_id = $2`)).
		WithArgs("t-1", "u-1").
		WillReturnRows(pgxmock.NewRows(taskCols).AddRow("t-1", "write docs", "", 1, "u-1", now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND user_id = $2`)).
		WithArgs("t-1", "u-2").
		WillReturnError(pgx.ErrNoRows)

	task, err := repo.GetByID(context.Background(), "u-1", "t-1")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusDone, task.Status)

	_, err = repo.GetByID(context.Background(), "u-2", "t-1")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestTaskRepository_GetTasksByPage_WithStatus(t *testing.T) {
	repo, mock := newTaskRepoWithMock(t)
	status := 0

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND status = $2`)).
		WithArgs("u-1", 0).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`LIMIT $3 OFFSET $4`)).
		WithArgs("u-1", 0, 10, 0).
		WillReturnRows(pgxmock.NewRows(taskCols).AddRow("t-1", "write docs", "", 0, "u-1", now, now))

	items, total, err := repo.GetTasksByPage(context.Background(), "u-1", 1, 10, "", &status)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_SearchEscapesWildcards(t *testing.T) {
	repo, mock := newTaskRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM tasks WHERE user_id = $1 AND name ILIKE '%' || $2 || '%'`)).
		WithArgs("u-1", `50\%`).
		WillReturnRows(pgxmock.NewRows(taskCols))

	items, err := repo.Search(context.Background(), "u-1", "50%", nil)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete(t *testing.T) {
	repo, mock := newTaskRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tasks WHERE id = $1 AND user_id = $2`)).
		WithArgs("t-1", "u-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "u-1", "t-1"), apperror.ErrNotFound)
}
