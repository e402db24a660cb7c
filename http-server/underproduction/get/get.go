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

type UnderproductionProvider interface {
	ListUnderproduction(ctx context.Context, f storage.UnderproductionFilter) ([]storage.UnderproductionEvent, error)
}

func GetUnderproductionAnalysis(log *slog.Logger, provider UnderproductionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.underproduction.GetUnderproductionAnalysis"

		filter, err := api.UnderproductionFilterFromQuery(r)
		if err != nil {
			api.Error(w, r, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		events, err := provider.ListUnderproduction(ctx, filter)
		if err != nil {
			log.Error("erro ao buscar improdutividade",
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("error", err.Error()),
			)
			api.Internal(w, r, "erro ao buscar improdutividade", err)
			return
		}

		render.JSON(w, r, events)
	}
}
