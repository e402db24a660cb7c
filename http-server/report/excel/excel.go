package excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"injetora-apontamentos/internal/lib/api"
	"injetora-apontamentos/internal/service/dashboard"
	"injetora-apontamentos/internal/storage"
)

type ExcelGenerator interface {
	GenerateExcel(ctx context.Context, filter storage.ReadingFilter) ([]byte, error)
}

func GenerateReadingsExcel(log *slog.Logger, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GenerateReadingsExcel"

		filter, err := api.ReadingFilterFromQuery(r)
		if err != nil {
			api.Error(w, r, http.StatusBadRequest, err.Error())
			return
		}

		if _, err := dashboard.PeriodOf(filter).Days(); err != nil {
			api.Error(w, r, http.StatusBadRequest, err.Error())
			return
		}

		// Excel pode demorar mais
		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		data, err := gen.GenerateExcel(ctx, filter)
		if err != nil {
			log.Error("failed to generate excel", "op", op, "err", err)
			api.Internal(w, r, "erro ao gerar relatório", err)
			return
		}

		fileName := fmt.Sprintf("apontamentos_%s.xlsx", time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(data)
	}
}
