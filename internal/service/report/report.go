package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"injetora-apontamentos/internal/service/dashboard"
	"injetora-apontamentos/internal/storage"
)

type ReportStorage interface {
	ListReadings(ctx context.Context, f storage.ReadingFilter) ([]storage.Reading, error)
	GetDailyTarget(ctx context.Context) (storage.DailyTarget, bool, error)
}

type ExcelService struct {
	storage ReportStorage
}

func NewExcelService(storage ReportStorage) *ExcelService {
	return &ExcelService{storage: storage}
}

const (
	sheetReadings = "Apontamentos"
	sheetSummary  = "Resumo por peça"
)

var readingHeaders = []string{
	"Data", "Hora", "Turno", "Tipo injetora", "Máquina", "Funcionário", "Peça",
	"Injetadas", "NC", "Efetivas", "Tipo de registro", "Observação",
}

var summaryHeaders = []string{"Data", "Peça", "Injetadas", "NC", "Efetivas", "Taxa NC (%)"}

func (e *ExcelService) GenerateExcel(ctx context.Context, filter storage.ReadingFilter) ([]byte, error) {
	readings, err := e.storage.ListReadings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fetch readings: %w", err)
	}

	target := storage.DefaultDailyTarget
	if t, ok, err := e.storage.GetDailyTarget(ctx); err != nil {
		return nil, fmt.Errorf("fetch target: %w", err)
	} else if ok {
		target = t.Valor
	}

	summary, err := dashboard.Aggregate(readings, target, dashboard.PeriodOf(filter))
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetReadings); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, err
	}

	if err := writeHeader(f, sheetReadings, readingHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, r := range readings {
		row := []any{
			r.DataApontamento, r.HoraApontamento, r.Turno, r.TipoInjetora, r.Maquina, r.Funcionario,
			r.CodigoPeca, r.QuantidadeInjetada, r.PecasNC, r.QuantidadeEfetiva, r.TipoRegistro, r.Observacao,
		}
		if err := f.SetSheetRow(sheetReadings, cellName(1, i+2), &row); err != nil {
			return nil, err
		}
	}

	if err := writeHeader(f, sheetSummary, summaryHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, pd := range summary.PorPecaDia {
		row := []any{pd.Data, pd.CodigoPeca, pd.TotalInjetado, pd.TotalPecasNC, pd.TotalEfetivo, pd.TaxaNC}
		if err := f.SetSheetRow(sheetSummary, cellName(1, i+2), &row); err != nil {
			return nil, err
		}
	}

	for _, sheet := range []string{sheetReadings, sheetSummary} {
		// cabeçalho fixo
		f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		})
		f.SetColWidth(sheet, "A", "L", 15)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for i, name := range headers {
		if err := f.SetCellValue(sheet, cellName(i+1, 1), name); err != nil {
			return err
		}
	}

	return f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), style)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
