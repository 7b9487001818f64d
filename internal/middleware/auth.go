package middleware

import (
	"context"
	"net/http"
	"strings"

	"crypto_luck/internal/logger"
	"crypto_luck/pkg/resp"
	"crypto_luck/pkg/token"

	"go.uber.org/zap"
)

type ctxKey struct{}

// WithUsername кладёт имя игрока в контекст
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, ctxKey{}, username)
}

// UsernameFromContext достаёт имя игрока, положенное Auth
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(ctxKey{}).(string)
	return username, ok && username != ""
}

// Auth проверяет Bearer токен и пропускает запрос дальше с именем игрока в контексте
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				logger.Log.Debug("token rejected", zap.Error(err))
				resp.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUsername(r.Context(), claims.Subject)))
		})
	}
}
