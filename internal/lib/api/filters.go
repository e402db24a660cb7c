package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"injetora-apontamentos/internal/service/shift"
	"injetora-apontamentos/internal/storage"
)

const dateLayout = "2006-01-02"

func checkDate(name, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return fmt.Errorf("%s inválida: %q", name, value)
	}
	return nil
}

// ReadingFilterFromQuery lê os filtros de apontamento da query string.
func ReadingFilterFromQuery(r *http.Request) (storage.ReadingFilter, error) {
	q := r.URL.Query()

	f := storage.ReadingFilter{
		DataApontamento: q.Get("dataApontamento"),
		DataInicio:      q.Get("dataInicio"),
		DataFim:         q.Get("dataFim"),
		Maquina:         q.Get("maquina"),
		CodigoPeca:      q.Get("codigoPeca"),
		TipoInjetora:    q.Get("tipoInjetora"),
	}

	if turno := q.Get("turno"); turno != "" {
		f.Turno = shift.Normalize(turno)
		if f.Turno != storage.ShiftMorning && f.Turno != storage.ShiftNight {
			return storage.ReadingFilter{}, fmt.Errorf("turno inválido: %q", turno)
		}
	}

	for name, v := range map[string]string{
		"dataApontamento": f.DataApontamento,
		"dataInicio":      f.DataInicio,
		"dataFim":         f.DataFim,
	} {
		if err := checkDate(name, v); err != nil {
			return storage.ReadingFilter{}, err
		}
	}

	return f, nil
}

func UnderproductionFilterFromQuery(r *http.Request) (storage.UnderproductionFilter, error) {
	q := r.URL.Query()

	f := storage.UnderproductionFilter{
		DataInicio: q.Get("dataInicio"),
		DataFim:    q.Get("dataFim"),
	}

	if err := checkDate("dataInicio", f.DataInicio); err != nil {
		return storage.UnderproductionFilter{}, err
	}
	if err := checkDate("dataFim", f.DataFim); err != nil {
		return storage.UnderproductionFilter{}, err
	}

	if raw := q.Get("setorId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return storage.UnderproductionFilter{}, fmt.Errorf("setorId inválido: %q", raw)
		}
		f.SetorID = id
	}

	return f, nil
}
