package auth

import (
	"context"
	"strings"

	"service/internal/entities"
)

const bearerPrefix = "Bearer "

type Auth struct {
	identityGateway IdentityGateway
	userRepository  UserRepository
}

func New(identityGateway IdentityGateway, userRepository UserRepository) *Auth {
	return &Auth{
		identityGateway: identityGateway,
		userRepository:  userRepository,
	}
}

// Authenticate проверяет заголовок Authorization через внешний провайдер
// токенов. Все причины отказа схлопываются в ErrUnauthorized — наружу
// деталь не уходит.
func (s *Auth) Authenticate(ctx context.Context, authorizationHeader string) (*entities.Identity, error) {
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return nil, ErrUnauthorized
	}

	token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, bearerPrefix))
	if token == "" {
		return nil, ErrUnauthorized
	}

	identity, err := s.identityGateway.VerifyToken(ctx, token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	return identity, nil
}

// RequireOperation проверяет, что роль сохраненного пользователя
// разрешает операцию. Вызывается только после Authenticate:
// неаутентифицированный email сюда попадать не должен.
func (s *Auth) RequireOperation(ctx context.Context, email string, op entities.Operation) error {
	registered, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		return ErrForbidden
	}

	if !registered.Role.Can(op) {
		return ErrForbidden
	}

	return nil
}
