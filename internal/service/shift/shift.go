// Package shift gera os horários que o operador precisa apontar em um turno.
package shift

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"injetora-apontamentos/internal/storage"
)

const dateLayout = "2006-01-02"

var ErrUnknownShift = errors.New("turno desconhecido")

type window struct {
	startHour int
	hours     int
}

// Manhã: 07:00–18:00 no mesmo dia. Noite: 18:00 até 07:00 do dia seguinte.
var windows = map[string]window{
	storage.ShiftMorning: {startHour: 7, hours: 11},
	storage.ShiftNight:   {startHour: 18, hours: 13},
}

// Normalize aceita os nomes em português e devolve o nome canônico.
// Valores desconhecidos voltam inalterados.
func Normalize(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "morning", "manhã", "manha":
		return storage.ShiftMorning
	case "night", "noite":
		return storage.ShiftNight
	}
	return name
}

// Slot é um horário do turno. Date muda para o dia seguinte depois da meia-noite no turno da noite.
type Slot struct {
	Date string `json:"data"`
	Hour string `json:"hora"`
}

// Slots devolve os horários inteiros em [início, fim) do turno, em ordem.
func Slots(date string, shiftName string) ([]Slot, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q: %w", date, err)
	}

	w, ok := windows[Normalize(shiftName)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShift, shiftName)
	}

	// UTC só para somar horas; o resultado é horário de parede
	start := time.Date(day.Year(), day.Month(), day.Day(), w.startHour, 0, 0, 0, time.UTC)

	slots := make([]Slot, 0, w.hours)
	for i := 0; i < w.hours; i++ {
		t := start.Add(time.Duration(i) * time.Hour)
		slots = append(slots, Slot{
			Date: t.Format(dateLayout),
			Hour: t.Format("15:04"),
		})
	}

	return slots, nil
}

// Hours é Slots reduzido aos rótulos HH:MM.
func Hours(date string, shiftName string) ([]string, error) {
	slots, err := Slots(date, shiftName)
	if err != nil {
		return nil, err
	}

	hours := make([]string, len(slots))
	for i, s := range slots {
		hours[i] = s.Hour
	}

	return hours, nil
}
