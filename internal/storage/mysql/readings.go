package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"injetora-apontamentos/internal/storage"
)

const readingColumns = `id, tipo_injetora, DATE_FORMAT(data_apontamento, '%Y-%m-%d'), hora_apontamento, turno,
	maquina, funcionario, codigo_peca, quantidade_injetada, pecas_nc, quantidade_efetiva,
	observacao, tipo_registro, finalizado`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReading(row rowScanner) (storage.Reading, error) {
	var r storage.Reading
	var obs sql.NullString

	err := row.Scan(
		&r.ID,
		&r.TipoInjetora,
		&r.DataApontamento,
		&r.HoraApontamento,
		&r.Turno,
		&r.Maquina,
		&r.Funcionario,
		&r.CodigoPeca,
		&r.QuantidadeInjetada,
		&r.PecasNC,
		&r.QuantidadeEfetiva,
		&obs,
		&r.TipoRegistro,
		&r.Finalizado,
	)
	if err != nil {
		return storage.Reading{}, err
	}

	r.Observacao = obs.String

	return r, nil
}

// readingWhere monta o WHERE a partir dos filtros preenchidos.
func readingWhere(f storage.ReadingFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, val string) {
		if val == "" {
			return
		}
		conds = append(conds, cond)
		args = append(args, val)
	}

	add("data_apontamento = ?", f.DataApontamento)
	add("data_apontamento >= ?", f.DataInicio)
	add("data_apontamento <= ?", f.DataFim)
	add("turno = ?", f.Turno)
	add("maquina = ?", f.Maquina)
	add("codigo_peca = ?", f.CodigoPeca)
	add("tipo_injetora = ?", f.TipoInjetora)

	if len(conds) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func (s *Storage) CreateReading(ctx context.Context, r storage.Reading) (storage.Reading, error) {
	const op = "storage.mysql.CreateReading"

	if r.TipoRegistro == "" {
		r.TipoRegistro = storage.KindProduction
	}
	r.ComputeEffective()

	stmt := `INSERT INTO apontamentos_injetora
		(tipo_injetora, data_apontamento, hora_apontamento, turno, maquina, funcionario, codigo_peca,
		 quantidade_injetada, pecas_nc, quantidade_efetiva, observacao, tipo_registro, finalizado)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, stmt,
		r.TipoInjetora,
		r.DataApontamento,
		r.HoraApontamento,
		r.Turno,
		r.Maquina,
		r.Funcionario,
		r.CodigoPeca,
		r.QuantidadeInjetada,
		r.PecasNC,
		r.QuantidadeEfetiva,
		r.Observacao,
		r.TipoRegistro,
		r.Finalizado,
	)
	if err != nil {
		return storage.Reading{}, fmt.Errorf("%s: erro ao inserir apontamento: %w", op, mapWriteErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return storage.Reading{}, fmt.Errorf("%s: last insert id: %w", op, err)
	}
	r.ID = id

	return r, nil
}

func (s *Storage) GetReading(ctx context.Context, id int64) (storage.Reading, error) {
	const op = "storage.mysql.GetReading"

	row := s.db.QueryRowContext(ctx, `SELECT `+readingColumns+` FROM apontamentos_injetora WHERE id = ?`, id)

	r, err := scanReading(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Reading{}, fmt.Errorf("%s: id=%d: %w", op, id, storage.ErrReadingNotFound)
		}
		return storage.Reading{}, fmt.Errorf("%s: %w", op, err)
	}

	return r, nil
}

// listReadingsQuery ordena por hora e, no empate, pela ordem de inserção.
func listReadingsQuery(f storage.ReadingFilter) (string, []any) {
	where, args := readingWhere(f)
	return `SELECT ` + readingColumns + ` FROM apontamentos_injetora` + where +
		` ORDER BY hora_apontamento ASC, id ASC`, args
}

func (s *Storage) ListReadings(ctx context.Context, f storage.ReadingFilter) ([]storage.Reading, error) {
	const op = "storage.mysql.ListReadings"

	stmt, args := listReadingsQuery(f)

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: erro ao listar apontamentos: %w", op, err)
	}
	defer rows.Close()

	readings := []storage.Reading{}
	for rows.Next() {
		r, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		readings = append(readings, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return readings, nil
}

// UpdateReading lê a linha com lock, aplica os campos e regrava a quantidade efetiva.
func (s *Storage) UpdateReading(ctx context.Context, id int64, upd storage.ReadingUpdate) (storage.Reading, error) {
	const op = "storage.mysql.UpdateReading"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storage.Reading{}, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT `+readingColumns+` FROM apontamentos_injetora WHERE id = ? FOR UPDATE`, id)
	current, err := scanReading(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Reading{}, fmt.Errorf("%s: id=%d: %w", op, id, storage.ErrReadingNotFound)
		}
		return storage.Reading{}, fmt.Errorf("%s: %w", op, err)
	}

	upd.Apply(&current)

	_, err = tx.ExecContext(ctx, `
		UPDATE apontamentos_injetora
		SET tipo_injetora = ?, data_apontamento = ?, hora_apontamento = ?, turno = ?, maquina = ?,
		    funcionario = ?, codigo_peca = ?, quantidade_injetada = ?, pecas_nc = ?,
		    quantidade_efetiva = ?, observacao = ?, tipo_registro = ?, finalizado = ?
		WHERE id = ?`,
		current.TipoInjetora,
		current.DataApontamento,
		current.HoraApontamento,
		current.Turno,
		current.Maquina,
		current.Funcionario,
		current.CodigoPeca,
		current.QuantidadeInjetada,
		current.PecasNC,
		current.QuantidadeEfetiva,
		current.Observacao,
		current.TipoRegistro,
		current.Finalizado,
		id,
	)
	if err != nil {
		return storage.Reading{}, fmt.Errorf("%s: erro ao atualizar apontamento id=%d: %w", op, id, mapWriteErr(err))
	}

	if err := tx.Commit(); err != nil {
		return storage.Reading{}, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return current, nil
}

// DeleteReading é idempotente: id inexistente não é erro.
func (s *Storage) DeleteReading(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteReading"

	if _, err := s.db.ExecContext(ctx, `DELETE FROM apontamentos_injetora WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%s: erro ao excluir apontamento id=%d: %w", op, id, err)
	}

	return nil
}

func ncTotalsQuery(f storage.ReadingFilter) (string, []any) {
	where, args := readingWhere(f)
	return `SELECT a.codigo_peca, COALESCE(p.descricao, ''),
			COALESCE(SUM(a.quantidade_injetada), 0), COALESCE(SUM(a.pecas_nc), 0)
		FROM (SELECT * FROM apontamentos_injetora` + where + `) a
		LEFT JOIN pecas p ON p.codigo = a.codigo_peca
		GROUP BY a.codigo_peca, p.descricao`, args
}

// NCTotalsByPart soma injetadas e NC por peça; a taxa é calculada por quem chama.
func (s *Storage) NCTotalsByPart(ctx context.Context, f storage.ReadingFilter) ([]storage.PartNCRate, error) {
	const op = "storage.mysql.NCTotalsByPart"

	stmt, args := ncTotalsQuery(f)

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	totals := []storage.PartNCRate{}
	for rows.Next() {
		var t storage.PartNCRate
		if err := rows.Scan(&t.CodigoPeca, &t.Descricao, &t.TotalInjetado, &t.TotalPecasNC); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}
