package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"injetora-apontamentos/internal/storage"
)

func reading(part, date string, injetada, nc int) storage.Reading {
	return storage.Reading{
		CodigoPeca:         part,
		DataApontamento:    date,
		QuantidadeInjetada: injetada,
		PecasNC:            nc,
		QuantidadeEfetiva:  injetada - nc,
	}
}

func TestAggregate_PerPartPerDay(t *testing.T) {
	readings := []storage.Reading{
		reading("P1", "2024-06-01", 100, 5),
		reading("P1", "2024-06-01", 50, 0),
	}

	summary, err := Aggregate(readings, 1000, Range{})
	require.NoError(t, err)

	require.Len(t, summary.PorPecaDia, 1)
	pd := summary.PorPecaDia[0]
	assert.Equal(t, 150, pd.TotalInjetado)
	assert.Equal(t, 5, pd.TotalPecasNC)
	assert.Equal(t, 3.33, pd.TaxaNC)
	assert.Len(t, pd.Apontamentos, 2)
}

func TestAggregate_PerDayAndPercentages(t *testing.T) {
	readings := []storage.Reading{
		reading("P2", "2024-06-02", 300, 0),
		reading("P1", "2024-06-01", 100, 10),
		reading("P2", "2024-06-01", 200, 0),
	}

	summary, err := Aggregate(readings, 500, Range{From: "2024-06-01", To: "2024-06-02"})
	require.NoError(t, err)

	require.Len(t, summary.PorDia, 2)
	assert.Equal(t, "2024-06-01", summary.PorDia[0].Data)
	assert.Equal(t, 300, summary.PorDia[0].TotalInjetado)
	assert.Equal(t, 290, summary.PorDia[0].TotalEfetivo)
	assert.Equal(t, 500, summary.PorDia[0].Meta)
	assert.Equal(t, 500, summary.PorDia[1].Meta)

	require.Len(t, summary.PorPecaDia, 3)
	assert.Equal(t, "P1", summary.PorPecaDia[0].CodigoPeca)
	assert.Equal(t, "P2", summary.PorPecaDia[1].CodigoPeca)
	assert.Equal(t, "2024-06-02", summary.PorPecaDia[2].Data)

	// 590 conformes de 600
	assert.Equal(t, 98.33, summary.Percentuais.PercentualConforme)
	assert.Equal(t, 1.67, summary.Percentuais.PercentualNC)
	// 590 / (500 × 2)
	assert.Equal(t, 59.0, summary.Percentuais.PercentualMeta)
	assert.Equal(t, 2, summary.Dias)
}

func TestAggregate_AttainmentCappedAt100(t *testing.T) {
	summary, err := Aggregate([]storage.Reading{reading("P1", "2024-06-01", 5000, 0)}, 1000, Range{})
	require.NoError(t, err)

	assert.Equal(t, 100.0, summary.Percentuais.PercentualMeta)
}

func TestAggregate_Empty(t *testing.T) {
	summary, err := Aggregate(nil, 1000, Range{})
	require.NoError(t, err)

	assert.Empty(t, summary.PorDia)
	assert.Empty(t, summary.PorPecaDia)
	assert.Equal(t, Percentages{}, summary.Percentuais)
}

func TestAggregate_ZeroTarget(t *testing.T) {
	summary, err := Aggregate([]storage.Reading{reading("P1", "2024-06-01", 10, 0)}, 0, Range{})
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.Percentuais.PercentualMeta)
}

func TestRange_Days(t *testing.T) {
	days, err := Range{From: "2024-06-01", To: "2024-06-30"}.Days()
	require.NoError(t, err)
	assert.Equal(t, 30, days)

	_, err = Range{From: "2024-06-02", To: "2024-06-01"}.Days()
	assert.Error(t, err)

	// além do limite de time.Duration
	days, err = Range{From: "0001-01-01", To: "9999-12-31"}.Days()
	require.NoError(t, err)
	assert.Equal(t, 3652059, days)
	assert.Equal(t, 100.0, Attainment(days, 1, days))
}

func TestPeriodOf(t *testing.T) {
	assert.Equal(t, Range{From: "2024-06-05", To: "2024-06-05"},
		PeriodOf(storage.ReadingFilter{DataApontamento: "2024-06-05", DataInicio: "2024-06-01", DataFim: "2024-06-30"}))
	assert.Equal(t, Range{From: "2024-06-01", To: "2024-06-30"},
		PeriodOf(storage.ReadingFilter{DataInicio: "2024-06-01", DataFim: "2024-06-30"}))
	assert.Equal(t, Range{}, PeriodOf(storage.ReadingFilter{}))
}

func TestPartRates_SortedDescending(t *testing.T) {
	rates := PartRates([]storage.PartNCRate{
		{CodigoPeca: "A", TotalInjetado: 100, TotalPecasNC: 1},
		{CodigoPeca: "B", TotalInjetado: 0, TotalPecasNC: 0},
		{CodigoPeca: "C", TotalInjetado: 30, TotalPecasNC: 3},
	})

	require.Len(t, rates, 3)
	assert.Equal(t, "C", rates[0].CodigoPeca)
	assert.Equal(t, 10.0, rates[0].TaxaNC)
	assert.Equal(t, "A", rates[1].CodigoPeca)
	assert.Equal(t, 0.0, rates[2].TaxaNC)
}
