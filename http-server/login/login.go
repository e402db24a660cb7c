package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"injetora-apontamentos/internal/credentials"
	"injetora-apontamentos/internal/lib/api"
	"injetora-apontamentos/internal/token"
)

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (credentials.User, error)
}

type TokenIssuer interface {
	Issue(username string, level int) (string, *token.Claims, error)
}

type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Level    int    `json:"level"`
}

func Login(log *slog.Logger, auth Authenticator, issuer TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.login.Login"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("invalid JSON", slog.String("error", err.Error()))
			api.Error(w, r, http.StatusBadRequest, "JSON inválido")
			return
		}

		if fields := api.Validate(req); fields != nil {
			api.ValidationError(w, r, fields)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		user, err := auth.Authenticate(ctx, req.Username, req.Password)
		if err != nil {
			if errors.Is(err, credentials.ErrInvalidCredentials) {
				log.Info("login recusado", slog.String("username", req.Username))
				api.Error(w, r, http.StatusUnauthorized, "credenciais inválidas")
				return
			}
			log.Error("erro ao consultar planilha de usuários", slog.String("error", err.Error()))
			api.Internal(w, r, "erro ao consultar credenciais", err)
			return
		}

		signed, _, err := issuer.Issue(user.Username, user.Level)
		if err != nil {
			log.Error("erro ao assinar token", slog.String("error", err.Error()))
			api.Internal(w, r, "erro ao gerar token", err)
			return
		}

		log.Info("login ok", slog.String("username", user.Username), slog.Int("level", user.Level))

		render.JSON(w, r, Response{Token: signed, Username: user.Username, Level: user.Level})
	}
}
