package credentials

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type SheetsSource struct {
	svc     *sheets.Service
	sheetID string
	rng     string
}

func NewSheetsSource(ctx context.Context, sheetID, rng string, opts ...option.ClientOption) (*SheetsSource, error) {
	opts = append([]option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}, opts...)

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("credentials.NewSheetsSource: %w", err)
	}

	return &SheetsSource{svc: svc, sheetID: sheetID, rng: rng}, nil
}

func (s *SheetsSource) Users(ctx context.Context) ([]User, error) {
	const op = "credentials.SheetsSource.Users"

	resp, err := s.svc.Spreadsheets.Values.Get(s.sheetID, s.rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%s: erro ao ler planilha: %w", op, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, values := range resp.Values {
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = fmt.Sprint(v)
		}
		rows = append(rows, row)
	}

	return parseRows(rows), nil
}
