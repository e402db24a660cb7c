package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"injetora-apontamentos/internal/lib/api"
	"injetora-apontamentos/internal/storage"
)

type ListsProvider interface {
	Lists(ctx context.Context, tipoInjetora string) (storage.ReferenceLists, error)
}

func GetLists(log *slog.Logger, provider ListsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lists.GetLists"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		lists, err := provider.Lists(ctx, r.URL.Query().Get("tipoInjetora"))
		if err != nil {
			log.Error("erro ao buscar listas de cadastro",
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("error", err.Error()),
			)
			api.Internal(w, r, "erro ao buscar listas", err)
			return
		}

		render.JSON(w, r, lists)
	}
}
