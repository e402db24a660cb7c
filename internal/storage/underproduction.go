package storage

// UnderproductionEvent: peças desviadas de um apontamento e atribuídas a um setor.
type UnderproductionEvent struct {
	ID             int64  `json:"id"`
	SetorID        int64  `json:"setorId"`
	SetorNome      string `json:"setorNome,omitempty"`
	ApontamentoID  int64  `json:"apontamentoId" validate:"required,gt=0"`
	Data           string `json:"data" validate:"required,datetime=2006-01-02"`
	Hora           string `json:"hora" validate:"required,datetime=15:04"`
	Causa          string `json:"causa" validate:"required"`
	PecasDesviadas int    `json:"pecasDesviadas" validate:"gt=0"`
	RegistradoPor  string `json:"registradoPor"`
}

type UnderproductionFilter struct {
	DataInicio string
	DataFim    string
	SetorID    int64
}
