package storage

import "errors"

var (
	ErrReadingNotFound  = errors.New("apontamento não encontrado")
	ErrSectorNotFound   = errors.New("setor não encontrado")
	ErrDuplicateReading = errors.New("apontamento já registrado para este horário")
)
