package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"injetora-apontamentos/internal/storage"
)

// CreateUnderproduction grava o evento. SetorID == 0 resolve o setor padrão.
func (s *Storage) CreateUnderproduction(ctx context.Context, ev storage.UnderproductionEvent) (storage.UnderproductionEvent, error) {
	const op = "storage.mysql.CreateUnderproduction"

	if ev.SetorID == 0 {
		id, err := s.DefaultSectorID(ctx)
		if err != nil {
			return storage.UnderproductionEvent{}, fmt.Errorf("%s: %w", op, err)
		}
		ev.SetorID = id
	}

	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM apontamentos_injetora WHERE id = ?`, ev.ApontamentoID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.UnderproductionEvent{}, fmt.Errorf("%s: apontamento id=%d: %w", op, ev.ApontamentoID, storage.ErrReadingNotFound)
		}
		return storage.UnderproductionEvent{}, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO improdutividade (setor_id, apontamento_id, data, hora, causa, pecas_desviadas, registrado_por)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.SetorID,
		ev.ApontamentoID,
		ev.Data,
		ev.Hora,
		ev.Causa,
		ev.PecasDesviadas,
		ev.RegistradoPor,
	)
	if err != nil {
		return storage.UnderproductionEvent{}, fmt.Errorf("%s: erro ao inserir improdutividade: %w", op, mapWriteErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return storage.UnderproductionEvent{}, fmt.Errorf("%s: last insert id: %w", op, err)
	}
	ev.ID = id

	return ev, nil
}

func (s *Storage) ListUnderproduction(ctx context.Context, f storage.UnderproductionFilter) ([]storage.UnderproductionEvent, error) {
	const op = "storage.mysql.ListUnderproduction"

	var conds []string
	var args []any
	if f.DataInicio != "" {
		conds = append(conds, "i.data >= ?")
		args = append(args, f.DataInicio)
	}
	if f.DataFim != "" {
		conds = append(conds, "i.data <= ?")
		args = append(args, f.DataFim)
	}
	if f.SetorID != 0 {
		conds = append(conds, "i.setor_id = ?")
		args = append(args, f.SetorID)
	}

	stmt := `SELECT i.id, i.setor_id, s.nome, i.apontamento_id, DATE_FORMAT(i.data, '%Y-%m-%d'), i.hora,
			i.causa, i.pecas_desviadas, i.registrado_por
		FROM improdutividade i
		JOIN setores s ON s.id = i.setor_id`
	if len(conds) > 0 {
		stmt += ` WHERE ` + strings.Join(conds, " AND ")
	}
	stmt += ` ORDER BY i.data ASC, i.hora ASC, i.id ASC`

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: erro ao buscar improdutividade: %w", op, err)
	}
	defer rows.Close()

	events := []storage.UnderproductionEvent{}
	for rows.Next() {
		var ev storage.UnderproductionEvent
		err := rows.Scan(&ev.ID, &ev.SetorID, &ev.SetorNome, &ev.ApontamentoID, &ev.Data, &ev.Hora,
			&ev.Causa, &ev.PecasDesviadas, &ev.RegistradoPor)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}
