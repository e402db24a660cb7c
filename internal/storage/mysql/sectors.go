package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"injetora-apontamentos/internal/storage"
)

func (s *Storage) ListSectors(ctx context.Context) ([]storage.Sector, error) {
	const op = "storage.mysql.ListSectors"

	rows, err := s.db.QueryContext(ctx, `SELECT id, nome FROM setores ORDER BY nome ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: erro ao buscar setores: %w", op, err)
	}
	defer rows.Close()

	sectors := []storage.Sector{}
	for rows.Next() {
		var sec storage.Sector
		if err := rows.Scan(&sec.ID, &sec.Nome); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		sectors = append(sectors, sec)
	}

	return sectors, rows.Err()
}

// Comparação binária: "Producao" sem acento não casa com "produção".
const defaultSectorQuery = `SELECT id FROM setores
	WHERE LOWER(nome) COLLATE utf8mb4_bin IN ('produção', 'production')
	ORDER BY id ASC LIMIT 1`

// DefaultSectorID resolve o setor "Produção" (ou "Production"), sem diferenciar maiúsculas.
func (s *Storage) DefaultSectorID(ctx context.Context) (int64, error) {
	const op = "storage.mysql.DefaultSectorID"

	var id int64
	err := s.db.QueryRowContext(ctx, defaultSectorQuery).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrSectorNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) CreateSector(ctx context.Context, sec storage.Sector) (storage.Sector, error) {
	const op = "storage.mysql.CreateSector"

	res, err := s.db.ExecContext(ctx, `INSERT INTO setores (nome) VALUES (?)`, sec.Nome)
	if err != nil {
		return storage.Sector{}, fmt.Errorf("%s: erro ao inserir setor: %w", op, err)
	}

	if sec.ID, err = res.LastInsertId(); err != nil {
		return storage.Sector{}, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return sec, nil
}
