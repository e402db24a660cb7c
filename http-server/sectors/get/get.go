package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"injetora-apontamentos/internal/lib/api"
	"injetora-apontamentos/internal/storage"
)

type SectorsProvider interface {
	ListSectors(ctx context.Context) ([]storage.Sector, error)
}

func GetSectors(log *slog.Logger, provider SectorsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sectors.GetSectors"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		sectors, err := provider.ListSectors(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("erro ao buscar setores")
			api.Internal(w, r, "erro ao buscar setores", err)
			return
		}

		render.JSON(w, r, sectors)
	}
}
