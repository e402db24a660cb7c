// Package save cadastra dados de referência pelo painel do supervisor.
package save

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

type EmployeeCreator interface {
	CreateEmployee(ctx context.Context, e storage.Employee) (storage.Employee, error)
}

type PartSaver interface {
	SavePart(ctx context.Context, p storage.Part) (storage.Part, error)
}

type MachineCreator interface {
	CreateMachine(ctx context.Context, m storage.Machine) (storage.Machine, error)
}

type SectorCreator interface {
	CreateSector(ctx context.Context, s storage.Sector) (storage.Sector, error)
}

// create decodifica T, valida, grava e responde 201 com o registro salvo.
func create[T any](log *slog.Logger, op, what string, store func(context.Context, T) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var item T
		if err := render.DecodeJSON(r.Body, &item); err != nil {
			api.Error(w, r, http.StatusBadRequest, "JSON inválido")
			return
		}

		if fields := api.Validate(item); fields != nil {
			api.ValidationError(w, r, fields)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		saved, err := store(ctx, item)
		if err != nil {
			log.Error("erro ao cadastrar "+what, slog.String("error", err.Error()))
			api.Internal(w, r, "erro ao cadastrar "+what, err)
			return
		}

		log.Info(what + " cadastrado")

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, saved)
	}
}

func SaveEmployee(log *slog.Logger, st EmployeeCreator) http.HandlerFunc {
	return create(log, "handlers.admin.SaveEmployee", "funcionário", func(ctx context.Context, e storage.Employee) (storage.Employee, error) {
		e.ID = 0
		return st.CreateEmployee(ctx, e)
	})
}

func SavePart(log *slog.Logger, st PartSaver) http.HandlerFunc {
	return create(log, "handlers.admin.SavePart", "peça", st.SavePart)
}

func SaveMachine(log *slog.Logger, st MachineCreator) http.HandlerFunc {
	return create(log, "handlers.admin.SaveMachine", "máquina", func(ctx context.Context, m storage.Machine) (storage.Machine, error) {
		m.ID = 0
		return st.CreateMachine(ctx, m)
	})
}

func SaveSector(log *slog.Logger, st SectorCreator) http.HandlerFunc {
	return create(log, "handlers.admin.SaveSector", "setor", func(ctx context.Context, s storage.Sector) (storage.Sector, error) {
		s.ID = 0
		return st.CreateSector(ctx, s)
	})
}
