package api

import (
	"strings"
	"time"
)

const hourLayout = "15:04"

// CanonicalHour devolve a hora no formato HH:MM ("7:00" vira "07:00").
// Valor que não é hora volta inalterado para a validação apontar o campo.
func CanonicalHour(v string) string {
	t, err := time.Parse(hourLayout, strings.TrimSpace(v))
	if err != nil {
		return v
	}
	return t.Format(hourLayout)
}
