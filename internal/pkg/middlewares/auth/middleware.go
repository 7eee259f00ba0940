package auth

import (
	"context"
	"net/http"

	"service/pkg/logger"
)

type emailContextKey struct{}

// Middleware проверяет Bearer-токен через Authenticator и кладет email
// подтвержденной личности в контекст запроса. Любой отказ — единый
// 401 без деталей.
func Middleware(log middlewareLogger, authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := authenticator.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				log.With(
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
					logger.NewField("remote_addr", r.RemoteAddr),
				).Warn("unauthorized request")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)

				_, writeErr := w.Write([]byte(`{"message":"unauthorized access"}`))
				if writeErr != nil {
					log.With(
						logger.NewField("error", writeErr),
						logger.NewField("path", r.URL.Path),
					).Error("failed to write unauthorized response")
				}
				return
			}

			ctx := ContextWithEmail(r.Context(), identity.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextWithEmail кладет email аутентифицированного вызывающего в
// контекст так же, как это делает Middleware.
func ContextWithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailContextKey{}, email)
}

// EmailFromContext возвращает email, положенный Middleware.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailContextKey{}).(string)
	return email, ok
}
