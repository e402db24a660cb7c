package storage

type Employee struct {
	ID           int64  `json:"id"`
	NomeCompleto string `json:"nomeCompleto" validate:"required,max=255"`
}

type Part struct {
	Codigo    string `json:"codigo" validate:"required,max=64"`
	Descricao string `json:"descricao" validate:"max=255"`
}

type Machine struct {
	ID           int64  `json:"id"`
	Nome         string `json:"nome" validate:"required,max=128"`
	TipoInjetora string `json:"tipoInjetora" validate:"required,max=64"`
}

type ReferenceLists struct {
	Funcionarios []Employee `json:"funcionarios"`
	Pecas        []Part     `json:"pecas"`
	Maquinas     []Machine  `json:"maquinas"`
}

type Sector struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome" validate:"required,max=128"`
}
