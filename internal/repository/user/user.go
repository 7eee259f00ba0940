package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/service/user"
)

const userColumns = `id, email, display_name, role, created_at, last_login_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert создает пользователя либо, при повторной регистрации того же
// email, только обновляет last_login_at. Возвращает признак того, что
// запись была создана впервые.
func (r *Repository) Upsert(ctx context.Context, email, displayName string, role entities.RoleType) (*entities.User, bool, error) {
	query := `INSERT INTO users (email, display_name, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET last_login_at = NOW()
		RETURNING ` + userColumns + `, (xmax = 0) AS inserted`

	var userModel UserDB
	var inserted bool
	err := r.querier.QueryRow(ctx, query, email, displayName, role.String()).
		Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.DisplayName,
			&userModel.Role,
			&userModel.CreatedAt,
			&userModel.LastLoginAt,
			&inserted,
		)
	if err != nil {
		return nil, false, fmt.Errorf("unexpected user repository upsert error: %w", err)
	}

	return ToDomain(&userModel), inserted, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, email).
		Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.DisplayName,
			&userModel.Role,
			&userModel.CreatedAt,
			&userModel.LastLoginAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) Search(ctx context.Context, query string, limit int) ([]entities.User, error) {
	sqlQuery := `SELECT ` + userColumns + `
		FROM users
		WHERE display_name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
		ORDER BY id
		LIMIT $2`

	rows, err := r.querier.Query(ctx, sqlQuery, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, limit)
	for rows.Next() {
		var userModel UserDB
		err := rows.Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.DisplayName,
			&userModel.Role,
			&userModel.CreatedAt,
			&userModel.LastLoginAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository search error: %w", err)
		}
		userModels = append(userModels, userModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}

	return ToDomainList(userModels), nil
}

func (r *Repository) UpdateRoleByID(ctx context.Context, id int64, role entities.RoleType) (*entities.User, error) {
	query := `UPDATE users
		SET role = $1
		WHERE id = $2
		RETURNING ` + userColumns

	return r.updateRole(ctx, query, role.String(), id)
}

func (r *Repository) UpdateRoleByEmail(ctx context.Context, email string, role entities.RoleType) (*entities.User, error) {
	query := `UPDATE users
		SET role = $1
		WHERE email = $2
		RETURNING ` + userColumns

	return r.updateRole(ctx, query, role.String(), email)
}

func (r *Repository) updateRole(ctx context.Context, query string, args ...interface{}) (*entities.User, error) {
	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, args...).
		Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.DisplayName,
			&userModel.Role,
			&userModel.CreatedAt,
			&userModel.LastLoginAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository updaterole error: %w", err)
	}

	return ToDomain(&userModel), nil
}
