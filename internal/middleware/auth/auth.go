package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"injetora-apontamentos/internal/lib/api"
	"injetora-apontamentos/internal/token"
)

type ctxKey struct{}

type TokenParser interface {
	Parse(raw string) (*token.Claims, error)
}

// Bearer exige um token válido no header Authorization e guarda as claims no contexto.
func Bearer(log *slog.Logger, parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				api.Error(w, r, http.StatusUnauthorized, "token não informado")
				return
			}

			claims, err := parser.Parse(strings.TrimSpace(authHeader[len("Bearer "):]))
			if err != nil {
				log.Warn("token rejeitado",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("error", err.Error()),
				)
				api.Error(w, r, http.StatusUnauthorized, "token inválido ou expirado")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireLevel deve vir depois de Bearer.
func RequireLevel(level int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r.Context())
			if !ok {
				api.Error(w, r, http.StatusUnauthorized, "token não informado")
				return
			}
			if claims.Level != level {
				api.Error(w, r, http.StatusForbidden, "permissão insuficiente")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func WithClaims(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

func ClaimsFrom(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*token.Claims)
	return claims, ok && claims != nil
}
