package credentials

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSource lê os usuários de um arquivo .xlsx local; a primeira linha é cabeçalho.
type XLSXSource struct {
	path  string
	sheet string
}

func NewXLSXSource(path, sheet string) *XLSXSource {
	return &XLSXSource{path: path, sheet: sheet}
}

func (x *XLSXSource) Users(ctx context.Context) ([]User, error) {
	const op = "credentials.XLSXSource.Users"

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(x.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	rows, err := f.GetRows(x.sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: planilha %q: %w", op, x.sheet, err)
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}

	return parseRows(rows), nil
}
