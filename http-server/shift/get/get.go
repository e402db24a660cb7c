package get

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"injetora-apontamentos/internal/lib/api"
	"injetora-apontamentos/internal/service/shift"
)

type Response struct {
	Data     string       `json:"data"`
	Turno    string       `json:"turno"`
	Horarios []shift.Slot `json:"horarios"`
}

func GetShiftSlots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("data")
		turno := r.URL.Query().Get("turno")

		if date == "" || turno == "" {
			api.Error(w, r, http.StatusBadRequest, "informe data e turno")
			return
		}

		slots, err := shift.Slots(date, turno)
		if err != nil {
			if errors.Is(err, shift.ErrUnknownShift) {
				api.Error(w, r, http.StatusBadRequest, "turno inválido")
				return
			}
			api.Error(w, r, http.StatusBadRequest, err.Error())
			return
		}

		render.JSON(w, r, Response{Data: date, Turno: shift.Normalize(turno), Horarios: slots})
	}
}
