package storage

const (
	ShiftMorning = "Morning"
	ShiftNight   = "Night"
)

const (
	KindProduction = "production"
	KindBreak      = "break"
	KindSetup      = "setup"
	KindFinalized  = "finalized"
)

// Reading é um apontamento horário de uma injetora.
type Reading struct {
	ID                 int64  `json:"id"`
	TipoInjetora       string `json:"tipoInjetora" validate:"required"`
	DataApontamento    string `json:"dataApontamento" validate:"required,datetime=2006-01-02"`
	HoraApontamento    string `json:"horaApontamento" validate:"required,datetime=15:04"`
	Turno              string `json:"turno" validate:"required,oneof=Morning Night"`
	Maquina            string `json:"maquina" validate:"required"`
	Funcionario        string `json:"funcionario" validate:"required"`
	CodigoPeca         string `json:"codigoPeca" validate:"required"`
	QuantidadeInjetada int    `json:"quantidadeInjetada" validate:"gte=0"`
	PecasNC            int    `json:"pecasNC" validate:"gte=0"`
	QuantidadeEfetiva  int    `json:"quantidadeEfetiva"`
	Observacao         string `json:"observacao"`
	TipoRegistro       string `json:"tipoRegistro" validate:"omitempty,oneof=production break setup finalized"`
	Finalizado         bool   `json:"finalizado"`
}

// ComputeEffective recalcula a quantidade efetiva a partir de injetada e NC.
func (r *Reading) ComputeEffective() {
	r.QuantidadeEfetiva = r.QuantidadeInjetada - r.PecasNC
}

// ReadingUpdate carrega apenas os campos enviados no PUT.
type ReadingUpdate struct {
	TipoInjetora       *string `json:"tipoInjetora" validate:"omitempty,min=1"`
	DataApontamento    *string `json:"dataApontamento" validate:"omitempty,datetime=2006-01-02"`
	HoraApontamento    *string `json:"horaApontamento" validate:"omitempty,datetime=15:04"`
	Turno              *string `json:"turno" validate:"omitempty,oneof=Morning Night"`
	Maquina            *string `json:"maquina" validate:"omitempty,min=1"`
	Funcionario        *string `json:"funcionario" validate:"omitempty,min=1"`
	CodigoPeca         *string `json:"codigoPeca" validate:"omitempty,min=1"`
	QuantidadeInjetada *int    `json:"quantidadeInjetada" validate:"omitempty,gte=0"`
	PecasNC            *int    `json:"pecasNC" validate:"omitempty,gte=0"`
	Observacao         *string `json:"observacao"`
	TipoRegistro       *string `json:"tipoRegistro" validate:"omitempty,oneof=production break setup finalized"`
	Finalizado         *bool   `json:"finalizado"`
}

func (u ReadingUpdate) Empty() bool {
	return u == ReadingUpdate{}
}

// Apply aplica os campos presentes sobre r e recalcula a quantidade efetiva.
func (u ReadingUpdate) Apply(r *Reading) {
	if u.TipoInjetora != nil {
		r.TipoInjetora = *u.TipoInjetora
	}
	if u.DataApontamento != nil {
		r.DataApontamento = *u.DataApontamento
	}
	if u.HoraApontamento != nil {
		r.HoraApontamento = *u.HoraApontamento
	}
	if u.Turno != nil {
		r.Turno = *u.Turno
	}
	if u.Maquina != nil {
		r.Maquina = *u.Maquina
	}
	if u.Funcionario != nil {
		r.Funcionario = *u.Funcionario
	}
	if u.CodigoPeca != nil {
		r.CodigoPeca = *u.CodigoPeca
	}
	if u.QuantidadeInjetada != nil {
		r.QuantidadeInjetada = *u.QuantidadeInjetada
	}
	if u.PecasNC != nil {
		r.PecasNC = *u.PecasNC
	}
	if u.Observacao != nil {
		r.Observacao = *u.Observacao
	}
	if u.TipoRegistro != nil {
		r.TipoRegistro = *u.TipoRegistro
	}
	if u.Finalizado != nil {
		r.Finalizado = *u.Finalizado
	}

	r.ComputeEffective()
}

// ReadingFilter: filtros de igualdade; campo vazio não restringe.
type ReadingFilter struct {
	DataApontamento string
	DataInicio      string
	DataFim         string
	Turno           string
	Maquina         string
	CodigoPeca      string
	TipoInjetora    string
}

type PartNCRate struct {
	CodigoPeca    string  `json:"codigoPeca"`
	Descricao     string  `json:"descricao"`
	TotalInjetado int     `json:"totalInjetado"`
	TotalPecasNC  int     `json:"totalPecasNC"`
	TaxaNC        float64 `json:"taxaNC"`
}
