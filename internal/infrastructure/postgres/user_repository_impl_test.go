package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/apperror"
	"github.com/oksasatya/go-users-tasks-api/internal/domain/entity"
)

var (
	viewCols = []string{"id", "name", "email", "avatar_url", "created_at", "updated_at"}
	userCols = []string{"id", "name", "email", "password_hash", "avatar_url", "created_at", "updated_at"}
	now      = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
)

func newUserRepoWithMock(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewUserRepository(mock), mock
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO users \(name, email, password_hash, avatar_url\)`).
		WithArgs("Ann", "ann@x.com", "hash", "").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("u-1", now, now))

	u := &entity.User{Name: "Ann", Email: "ann@x.com", Password: "hash"}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, now, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Ann", "ann@x.com", "hash", "").
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Create(context.Background(), &entity.User{Name: "Ann", Email: "ann@x.com", Password: "hash"})
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestUserRepository_GetByID(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE id = $1`)).
		WithArgs("u-1").
		WillReturnRows(pgxmock.NewRows(userCols).AddRow("u-1", "Ann", "ann@x.com", "hash", "", now, now))

	u, err := repo.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "hash", u.Password)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs("u-404").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs("not-a-uuid").
		WillReturnError(&pgconn.PgError{Code: pgInvalidTextRepr})

	_, err := repo.GetByID(context.Background(), "u-404")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = repo.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUserRepository_GetByID_DBError(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs("u-1").
		WillReturnError(errors.New("db down"))

	_, err := repo.GetByID(context.Background(), "u-1")
	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "db down")
}

func TestUserRepository_CheckUserByEmail(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("free@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("taken@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	assert.NoError(t, repo.CheckUserByEmail(context.Background(), "free@x.com"))
	assert.ErrorIs(t, repo.CheckUserByEmail(context.Background(), "taken@x.com"), apperror.ErrConflict)
}

func TestUserRepository_GetUsersByPage(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users WHERE name ILIKE '%' || $1 || '%' AND email ILIKE '%' || $2 || '%'`)).
		WithArgs("an", "x.com").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at, id LIMIT $3 OFFSET $4`)).
		WithArgs("an", "x.com", 5, 5).
		WillReturnRows(pgxmock.NewRows(viewCols).
			AddRow("u-6", "Dan", "dan@x.com", "", now, now).
			AddRow("u-7", "Jan", "jan@x.com", "", now, now))

	items, total, err := repo.GetUsersByPage(context.Background(), 2, 5, "an", "x.com")
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, items, 2)
	assert.Equal(t, "u-6", items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUsersByPage_NoFilters(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users ORDER BY created_at, id LIMIT $1 OFFSET $2`)).
		WithArgs(5, 0).
		WillReturnRows(pgxmock.NewRows(viewCols))

	items, total, err := repo.GetUsersByPage(context.Background(), 1, 5, "", "")
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestUserRepository_Search(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`WHERE name ILIKE`).WithArgs("ann").
		WillReturnRows(pgxmock.NewRows(viewCols).AddRow("u-1", "Ann", "ann@x.com", "", now, now))

	items, err := repo.Search(context.Background(), "ann")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUserRepository_SearchEscapesWildcards(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`WHERE name ILIKE`).WithArgs(`100\%\_off`).
		WillReturnRows(pgxmock.NewRows(viewCols))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users WHERE name ILIKE`)).
		WithArgs(`a\_b`, `\%`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(`LIMIT $3 OFFSET $4`)).
		WithArgs(`a\_b`, `\%`, 5, 0).
		WillReturnRows(pgxmock.NewRows(viewCols))

	_, err := repo.Search(context.Background(), "100%_off")
	require.NoError(t, err)
	_, _, err = repo.GetUsersByPage(context.Background(), 1, 5, "a_b", "%")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeEscape(t *testing.T) {
	assert.Equal(t, "ann", likeEscape("ann"))
	assert.Equal(t, `100\%`, likeEscape("100%"))
	assert.Equal(t, `a\_b`, likeEscape("a_b"))
	assert.Equal(t, `c:\\tmp`, likeEscape(`c:\tmp`))
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`UPDATE users`).
		WithArgs("Ann", "ann@x.com", "hash", "", "u-404").
		WillReturnError(pgx.ErrNoRows)

	err := repo.Update(context.Background(), &entity.User{ID: "u-404", Name: "Ann", Email: "ann@x.com", Password: "hash"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUserRepository_DeleteAndTasks(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tasks WHERE user_id = $1`)).WithArgs("u-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).WithArgs("u-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).WithArgs("u-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	ctx := context.Background()
	require.NoError(t, repo.DeleteUserTasks(ctx, "u-1"))
	require.NoError(t, repo.Delete(ctx, "u-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "u-1"), apperror.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
