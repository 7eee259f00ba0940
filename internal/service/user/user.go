package user

import (
	"context"
	"fmt"
	"strings"

	"service/internal/entities"
)

// SearchLimit — размер страницы поиска пользователей.
const SearchLimit = 5

type User struct {
	repository Repository
}

func New(repository Repository) *User {
	return &User{
		repository: repository,
	}
}

// RegisterUser создает пользователя с ролью по умолчанию. Повторная
// регистрация того же email — no-op (обновляется только last_login_at).
func (s *User) RegisterUser(ctx context.Context, email, displayName string) (*entities.User, bool, error) {
	if !isValidEmail(email) {
		return nil, false, ErrInvalidEmail
	}

	registered, created, err := s.repository.Upsert(ctx, email, displayName, entities.DefaultRole)
	if err != nil {
		return nil, false, fmt.Errorf("register user: %w", err)
	}

	return registered, created, nil
}

func (s *User) SearchUsers(ctx context.Context, query string) ([]entities.User, error) {
	users, err := s.repository.Search(ctx, strings.TrimSpace(query), SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return users, nil
}

// GetRole возвращает роль по email; для неизвестного email — роль по
// умолчанию.
func (s *User) GetRole(ctx context.Context, email string) (entities.RoleType, error) {
	if !isValidEmail(email) {
		return "", ErrInvalidEmail
	}

	registered, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return entities.DefaultRole, nil
		}
		return "", fmt.Errorf("failed to get role: %w", err)
	}

	return registered.Role, nil
}

func (s *User) SetRole(ctx context.Context, id int64, role entities.RoleType) (*entities.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	updated, err := s.repository.UpdateRoleByID(ctx, id, role)
	if err != nil {
		return nil, fmt.Errorf("failed to set role: %w", err)
	}

	return updated, nil
}
