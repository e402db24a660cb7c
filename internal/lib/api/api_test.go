package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"injetora-apontamentos/internal/storage"
)

func TestReadingFilterFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?dataApontamento=2024-06-01&turno=Noite&maquina=INJ-02", nil)

	f, err := ReadingFilterFromQuery(req)
	require.NoError(t, err)

	assert.Equal(t, storage.ReadingFilter{
		DataApontamento: "2024-06-01",
		Turno:           storage.ShiftNight,
		Maquina:         "INJ-02",
	}, f)
}

func TestReadingFilterFromQuery_Invalid(t *testing.T) {
	for _, q := range []string{"?dataApontamento=01-06-2024", "?turno=Tarde", "?dataFim=ontem"} {
		req := httptest.NewRequest(http.MethodGet, "/"+q, nil)
		_, err := ReadingFilterFromQuery(req)
		assert.Error(t, err, q)
	}
}

func TestUnderproductionFilterFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?dataInicio=2024-06-01&setorId=3", nil)

	f, err := UnderproductionFilterFromQuery(req)
	require.NoError(t, err)
	assert.Equal(t, int64(3), f.SetorID)

	req = httptest.NewRequest(http.MethodGet, "/?setorId=abc", nil)
	_, err = UnderproductionFilterFromQuery(req)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	r := storage.Reading{
		TipoInjetora:    "Horizontal",
		DataApontamento: "2024-06-01",
		HoraApontamento: "25:00",
		Turno:           storage.ShiftMorning,
		Maquina:         "INJ-01",
		Funcionario:     "Maria",
		PecasNC:         -1,
	}

	fields := Validate(r)

	assert.Equal(t, "datetime", fields["HoraApontamento"])
	assert.Equal(t, "required", fields["CodigoPeca"])
	assert.Equal(t, "gte", fields["PecasNC"])
	assert.NotContains(t, fields, "TipoInjetora")
}

func TestCanonicalHour(t *testing.T) {
	cases := map[string]string{
		"7:00":  "07:00",
		"07:00": "07:00",
		" 9:05": "09:05",
		"18:00": "18:00",
		"7h":    "7h",
		"":      "",
	}

	for in, want := range cases {
		assert.Equal(t, want, CanonicalHour(in), in)
	}

	// depois de canônica a ordem de texto é a ordem do relógio
	assert.Less(t, CanonicalHour("7:00"), CanonicalHour("18:00"))
}
