package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/apperror"
	"github.com/oksasatya/go-users-tasks-api/internal/domain/entity"
	"github.com/oksasatya/go-users-tasks-api/internal/domain/repository"
)

const (
	userNotFound = "user not found"

	userViewColumns = `id, name, email, avatar_url, created_at, updated_at`
	userColumns     = `id, name, email, password_hash, avatar_url, created_at, updated_at`
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUserView(row pgx.Row) (entity.UserView, error) {
	var v entity.UserView
	err := row.Scan(&v.ID, &v.Name, &v.Email, &v.AvatarURL, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) queryViews(ctx context.Context, sql string, args ...any) ([]entity.UserView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, userNotFound)
	}
	defer rows.Close()

	out := make([]entity.UserView, 0)
	for rows.Next() {
		v, err := scanUserView(rows)
		if err != nil {
			return nil, mapError(err, userNotFound)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, userNotFound)
	}
	return out, nil
}

func (r *UserRepository) GetUsersByPage(ctx context.Context, page, perPage int, name, email string) ([]entity.UserView, int, error) {
	f := &filter{}
	if name != "" {
		f.add("name ILIKE '%%' || $%d || '%%'", likeEscape(name))
	}
	if email != "" {
		f.add("email ILIKE '%%' || $%d || '%%'", likeEscape(email))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`+f.where(), f.args...).Scan(&total); err != nil {
		return nil, 0, mapError(err, userNotFound)
	}

	q := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY created_at, id LIMIT $%d OFFSET $%d`,
		userViewColumns, f.where(), f.next(), f.next()+1)
	args := append(f.args, perPage, entity.Offset(page, perPage))
	items, err := r.queryViews(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]entity.UserView, error) {
	return r.queryViews(ctx, `SELECT `+userViewColumns+` FROM users ORDER BY created_at, id`)
}

func (r *UserRepository) Search(ctx context.Context, name string) ([]entity.UserView, error) {
	return r.queryViews(ctx, `SELECT `+userViewColumns+` FROM users WHERE name ILIKE '%' || $1 || '%' ORDER BY created_at, id`, likeEscape(name))
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, u.Name, u.Email, u.Password, u.AvatarURL)

	return mapError(row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt), userNotFound)
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	row := r.db.QueryRow(ctx, `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, avatar_url = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`, u.Name, u.Email, u.Password, u.AvatarURL, u.ID)

	return mapError(row.Scan(&u.UpdatedAt), userNotFound)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError(err, userNotFound)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound(userNotFound)
	}
	return nil
}

func (r *UserRepository) DeleteUserTasks(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE user_id = $1`, userID)
	return mapError(err, userNotFound)
}

func (r *UserRepository) CheckUserByEmail(ctx context.Context, email string) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		return mapError(err, userNotFound)
	}
	if exists {
		return apperror.Conflict("email already exists")
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, mapError(err, userNotFound)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, userNotFound)
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
