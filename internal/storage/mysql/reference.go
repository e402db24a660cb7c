package mysql

import (
	"context"
	"fmt"

	"injetora-apontamentos/internal/storage"
)

func (s *Storage) ListEmployees(ctx context.Context) ([]storage.Employee, error) {
	const op = "storage.mysql.ListEmployees"

	rows, err := s.db.QueryContext(ctx, `SELECT id, nome_completo FROM funcionarios ORDER BY nome_completo ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: erro ao buscar funcionários: %w", op, err)
	}
	defer rows.Close()

	employees := []storage.Employee{}
	for rows.Next() {
		var e storage.Employee
		if err := rows.Scan(&e.ID, &e.NomeCompleto); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (s *Storage) ListParts(ctx context.Context) ([]storage.Part, error) {
	const op = "storage.mysql.ListParts"

	rows, err := s.db.QueryContext(ctx, `SELECT codigo, descricao FROM pecas ORDER BY codigo ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: erro ao buscar peças: %w", op, err)
	}
	defer rows.Close()

	parts := []storage.Part{}
	for rows.Next() {
		var p storage.Part
		if err := rows.Scan(&p.Codigo, &p.Descricao); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		parts = append(parts, p)
	}

	return parts, rows.Err()
}

// ListMachines devolve todas as máquinas ou só as do tipo de injetora informado.
func (s *Storage) ListMachines(ctx context.Context, tipoInjetora string) ([]storage.Machine, error) {
	const op = "storage.mysql.ListMachines"

	stmt := `SELECT id, nome, tipo_injetora FROM maquinas`
	var args []any
	if tipoInjetora != "" {
		stmt += ` WHERE tipo_injetora = ?`
		args = append(args, tipoInjetora)
	}
	stmt += ` ORDER BY nome ASC`

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: erro ao buscar máquinas: %w", op, err)
	}
	defer rows.Close()

	machines := []storage.Machine{}
	for rows.Next() {
		var m storage.Machine
		if err := rows.Scan(&m.ID, &m.Nome, &m.TipoInjetora); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		machines = append(machines, m)
	}

	return machines, rows.Err()
}

func (s *Storage) CreateEmployee(ctx context.Context, e storage.Employee) (storage.Employee, error) {
	const op = "storage.mysql.CreateEmployee"

	res, err := s.db.ExecContext(ctx, `INSERT INTO funcionarios (nome_completo) VALUES (?)`, e.NomeCompleto)
	if err != nil {
		return storage.Employee{}, fmt.Errorf("%s: erro ao inserir funcionário: %w", op, err)
	}

	if e.ID, err = res.LastInsertId(); err != nil {
		return storage.Employee{}, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return e, nil
}

// SavePart cadastra a peça ou atualiza a descrição se o código já existe.
func (s *Storage) SavePart(ctx context.Context, p storage.Part) (storage.Part, error) {
	const op = "storage.mysql.SavePart"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pecas (codigo, descricao) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE descricao = VALUES(descricao)`,
		p.Codigo, p.Descricao,
	)
	if err != nil {
		return storage.Part{}, fmt.Errorf("%s: erro ao salvar peça: %w", op, err)
	}

	return p, nil
}

func (s *Storage) CreateMachine(ctx context.Context, m storage.Machine) (storage.Machine, error) {
	const op = "storage.mysql.CreateMachine"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO maquinas (nome, tipo_injetora) VALUES (?, ?)`, m.Nome, m.TipoInjetora)
	if err != nil {
		return storage.Machine{}, fmt.Errorf("%s: erro ao inserir máquina: %w", op, err)
	}

	if m.ID, err = res.LastInsertId(); err != nil {
		return storage.Machine{}, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return m, nil
}
