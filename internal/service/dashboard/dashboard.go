// Package dashboard agrega apontamentos para os gráficos de produção.
package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"injetora-apontamentos/internal/storage"
)

const (
	dateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

type Totals struct {
	TotalInjetado int `json:"totalInjetado"`
	TotalPecasNC  int `json:"totalPecasNC"`
	TotalEfetivo  int `json:"totalEfetivo"`
}

func (t *Totals) add(r storage.Reading) {
	t.TotalInjetado += r.QuantidadeInjetada
	t.TotalPecasNC += r.PecasNC
	t.TotalEfetivo += r.QuantidadeEfetiva
}

type DayTotal struct {
	Data string `json:"data"`
	Totals
	Meta int `json:"meta"`
}

type PartDayTotal struct {
	CodigoPeca string `json:"codigoPeca"`
	Data       string `json:"data"`
	Totals
	TaxaNC       float64           `json:"taxaNC"`
	Apontamentos []storage.Reading `json:"apontamentos"`
}

type Percentages struct {
	PercentualConforme float64 `json:"percentualConforme"`
	PercentualNC       float64 `json:"percentualNC"`
	PercentualMeta     float64 `json:"percentualMeta"`
}

type Summary struct {
	PorDia      []DayTotal     `json:"porDia"`
	PorPecaDia  []PartDayTotal `json:"porPecaDia"`
	Totais      Totals         `json:"totais"`
	Percentuais Percentages    `json:"percentuais"`
	Meta        int            `json:"meta"`
	Dias        int            `json:"dias"`
}

// Range é o período filtrado. Vazio: conta os dias distintos presentes nos apontamentos.
type Range struct {
	From string
	To   string
}

// PeriodOf tira o período dos filtros; dataApontamento vale como um dia só.
func PeriodOf(f storage.ReadingFilter) Range {
	if f.DataApontamento != "" {
		return Range{From: f.DataApontamento, To: f.DataApontamento}
	}
	return Range{From: f.DataInicio, To: f.DataFim}
}

// Days devolve o número de dias do período, incluindo as duas pontas.
func (r Range) Days() (int, error) {
	if r.From == "" || r.To == "" {
		return 0, nil
	}

	from, err := time.Parse(dateLayout, r.From)
	if err != nil {
		return 0, fmt.Errorf("dataInicio inválida: %w", err)
	}
	to, err := time.Parse(dateLayout, r.To)
	if err != nil {
		return 0, fmt.Errorf("dataFim inválida: %w", err)
	}
	if to.Before(from) {
		return 0, fmt.Errorf("dataFim anterior a dataInicio")
	}

	// Unix em vez de Sub: Duration satura em ~292 anos
	return int((to.Unix()-from.Unix())/secondsPerDay) + 1, nil
}

// Rate devolve part/whole em porcentagem com duas casas; whole zero dá 0.
func Rate(part, whole int) float64 {
	if whole == 0 {
		return 0
	}

	return decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(whole))).
		Round(2).
		InexactFloat64()
}

// Attainment = min(100, efetivo / (meta × dias) × 100).
func Attainment(effective, target, days int) float64 {
	denominator := target * days
	if denominator <= 0 {
		return 0
	}

	pct := Rate(effective, denominator)
	if pct > 100 {
		return 100
	}

	return pct
}

type partDayKey struct {
	part string
	date string
}

// Aggregate dobra os apontamentos em totais por dia e por peça/dia numa só passada.
func Aggregate(readings []storage.Reading, target int, period Range) (Summary, error) {
	days, err := period.Days()
	if err != nil {
		return Summary{}, err
	}

	byDay := make(map[string]*DayTotal)
	byPartDay := make(map[partDayKey]*PartDayTotal)
	var totals Totals

	for _, r := range readings {
		totals.add(r)

		day, ok := byDay[r.DataApontamento]
		if !ok {
			day = &DayTotal{Data: r.DataApontamento, Meta: target}
			byDay[r.DataApontamento] = day
		}
		day.add(r)

		key := partDayKey{part: r.CodigoPeca, date: r.DataApontamento}
		pd, ok := byPartDay[key]
		if !ok {
			pd = &PartDayTotal{CodigoPeca: r.CodigoPeca, Data: r.DataApontamento}
			byPartDay[key] = pd
		}
		pd.add(r)
		pd.Apontamentos = append(pd.Apontamentos, r)
	}

	if days == 0 {
		days = len(byDay)
	}

	summary := Summary{
		PorDia:     make([]DayTotal, 0, len(byDay)),
		PorPecaDia: make([]PartDayTotal, 0, len(byPartDay)),
		Totais:     totals,
		Meta:       target,
		Dias:       days,
	}

	for _, d := range byDay {
		summary.PorDia = append(summary.PorDia, *d)
	}
	sort.Slice(summary.PorDia, func(i, j int) bool {
		return summary.PorDia[i].Data < summary.PorDia[j].Data
	})

	for _, pd := range byPartDay {
		pd.TaxaNC = Rate(pd.TotalPecasNC, pd.TotalInjetado)
		summary.PorPecaDia = append(summary.PorPecaDia, *pd)
	}
	sort.Slice(summary.PorPecaDia, func(i, j int) bool {
		a, b := summary.PorPecaDia[i], summary.PorPecaDia[j]
		if a.Data != b.Data {
			return a.Data < b.Data
		}
		return a.CodigoPeca < b.CodigoPeca
	})

	conforming := totals.TotalEfetivo
	inspected := conforming + totals.TotalPecasNC
	if inspected > 0 {
		summary.Percentuais.PercentualConforme = Rate(conforming, inspected)
		summary.Percentuais.PercentualNC = decimal.NewFromInt(100).
			Sub(decimal.NewFromFloat(summary.Percentuais.PercentualConforme)).
			Round(2).
			InexactFloat64()
	}
	summary.Percentuais.PercentualMeta = Attainment(totals.TotalEfetivo, target, days)

	return summary, nil
}

// PartRates completa a taxa NC de cada peça e ordena da maior para a menor.
func PartRates(totals []storage.PartNCRate) []storage.PartNCRate {
	rates := make([]storage.PartNCRate, len(totals))
	for i, t := range totals {
		t.TaxaNC = Rate(t.TotalPecasNC, t.TotalInjetado)
		rates[i] = t
	}

	sort.SliceStable(rates, func(i, j int) bool {
		if rates[i].TaxaNC != rates[j].TaxaNC {
			return rates[i].TaxaNC > rates[j].TaxaNC
		}
		return rates[i].CodigoPeca < rates[j].CodigoPeca
	})

	return rates
}
