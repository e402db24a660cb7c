package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"injetora-apontamentos/internal/lib/api"
	"injetora-apontamentos/internal/service/shift"
	"injetora-apontamentos/internal/storage"
)

type ReadingUpdater interface {
	UpdateReading(ctx context.Context, id int64, upd storage.ReadingUpdate) (storage.Reading, error)
}

func UpdateReading(log *slog.Logger, updater ReadingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.readings.UpdateReading"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			api.Error(w, r, http.StatusBadRequest, "id inválido")
			return
		}

		var upd storage.ReadingUpdate
		if err := render.DecodeJSON(r.Body, &upd); err != nil {
			api.Error(w, r, http.StatusBadRequest, "JSON inválido")
			return
		}

		if upd.Empty() {
			api.Error(w, r, http.StatusBadRequest, "nenhum campo para atualizar")
			return
		}

		if upd.HoraApontamento != nil {
			h := api.CanonicalHour(*upd.HoraApontamento)
			upd.HoraApontamento = &h
		}
		if upd.Turno != nil {
			t := shift.Normalize(*upd.Turno)
			upd.Turno = &t
		}

		if fields := api.Validate(upd); fields != nil {
			api.ValidationError(w, r, fields)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		updated, err := updater.UpdateReading(ctx, id, upd)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrReadingNotFound):
				api.Error(w, r, http.StatusNotFound, storage.ErrReadingNotFound.Error())
			case errors.Is(err, storage.ErrDuplicateReading):
				api.Error(w, r, http.StatusConflict, storage.ErrDuplicateReading.Error())
			default:
				log.Error("erro ao atualizar apontamento", slog.Int64("id", id), slog.String("error", err.Error()))
				api.Internal(w, r, "erro ao atualizar apontamento", err)
			}
			return
		}

		log.Info("apontamento atualizado", slog.Int64("id", id))

		render.JSON(w, r, updated)
	}
}
