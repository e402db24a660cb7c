package mysql

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS funcionarios (
		id            BIGINT AUTO_INCREMENT PRIMARY KEY,
		nome_completo VARCHAR(255) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS pecas (
		codigo    VARCHAR(64) PRIMARY KEY,
		descricao VARCHAR(255) NOT NULL DEFAULT ''
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS maquinas (
		id            BIGINT AUTO_INCREMENT PRIMARY KEY,
		nome          VARCHAR(128) NOT NULL,
		tipo_injetora VARCHAR(64)  NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS setores (
		id   BIGINT AUTO_INCREMENT PRIMARY KEY,
		nome VARCHAR(128) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	// (data, turno, maquina, hora, peca) único: dois operadores não finalizam o mesmo horário
	`CREATE TABLE IF NOT EXISTS apontamentos_injetora (
		id                  BIGINT AUTO_INCREMENT PRIMARY KEY,
		tipo_injetora       VARCHAR(64)  NOT NULL,
		data_apontamento    DATE         NOT NULL,
		hora_apontamento    CHAR(5)      NOT NULL,
		turno               VARCHAR(16)  NOT NULL,
		maquina             VARCHAR(128) NOT NULL,
		funcionario         VARCHAR(255) NOT NULL,
		codigo_peca         VARCHAR(64)  NOT NULL,
		quantidade_injetada INT          NOT NULL DEFAULT 0,
		pecas_nc            INT          NOT NULL DEFAULT 0,
		quantidade_efetiva  INT          NOT NULL DEFAULT 0,
		observacao          TEXT         NULL,
		tipo_registro       VARCHAR(16)  NOT NULL DEFAULT 'production',
		finalizado          BOOLEAN      NOT NULL DEFAULT FALSE,
		created_at          TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_apontamento_slot (data_apontamento, turno, maquina, hora_apontamento, codigo_peca),
		KEY idx_apontamento_data (data_apontamento)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS improdutividade (
		id              BIGINT AUTO_INCREMENT PRIMARY KEY,
		setor_id        BIGINT       NOT NULL,
		apontamento_id  BIGINT       NOT NULL,
		data            DATE         NOT NULL,
		hora            CHAR(5)      NOT NULL,
		causa           TEXT         NOT NULL,
		pecas_desviadas INT          NOT NULL,
		registrado_por  VARCHAR(128) NOT NULL,
		created_at      TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_improdutividade_setor FOREIGN KEY (setor_id) REFERENCES setores (id),
		CONSTRAINT chk_pecas_desviadas CHECK (pecas_desviadas > 0)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS configuracoes (
		chave          VARCHAR(64) PRIMARY KEY,
		valor          INT         NOT NULL,
		atualizado_por VARCHAR(128) NOT NULL DEFAULT '',
		updated_at     TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.mysql.Migrate"

	for i, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: statement %d: %w", op, i, err)
		}
	}

	return nil
}
