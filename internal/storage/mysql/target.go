package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"injetora-apontamentos/internal/storage"
)

// GetDailyTarget devolve a meta atual; ok=false quando ainda não foi gravada.
func (s *Storage) GetDailyTarget(ctx context.Context) (storage.DailyTarget, bool, error) {
	const op = "storage.mysql.GetDailyTarget"

	t := storage.DailyTarget{Chave: storage.DailyTargetKey}
	err := s.db.QueryRowContext(ctx,
		`SELECT valor, atualizado_por FROM configuracoes WHERE chave = ?`, storage.DailyTargetKey,
	).Scan(&t.Valor, &t.AtualizadoPor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.DailyTarget{}, false, nil
		}
		return storage.DailyTarget{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return t, true, nil
}

func (s *Storage) UpsertDailyTarget(ctx context.Context, valor int, updatedBy string) (storage.DailyTarget, error) {
	const op = "storage.mysql.UpsertDailyTarget"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO configuracoes (chave, valor, atualizado_por)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE
			valor = VALUES(valor),
			atualizado_por = VALUES(atualizado_por)`,
		storage.DailyTargetKey, valor, updatedBy,
	)
	if err != nil {
		return storage.DailyTarget{}, fmt.Errorf("%s: erro ao gravar meta: %w", op, err)
	}

	return storage.DailyTarget{Chave: storage.DailyTargetKey, Valor: valor, AtualizadoPor: updatedBy}, nil
}
