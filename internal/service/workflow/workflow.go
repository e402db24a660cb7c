// Package workflow implementa o apontamento horário de um turno: uma lista de horários
// e um cursor que aponta para o único horário editável.
//
// As transições são funções puras: recebem um State e devolvem um novo State, sem
// alterar o original. Os envios ao servidor são sempre sequenciais.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"injetora-apontamentos/internal/service/shift"
	"injetora-apontamentos/internal/storage"
)

var (
	ErrDone              = errors.New("todos os horários já foram finalizados")
	ErrNotCurrent        = errors.New("horário não é o atual")
	ErrFinalized         = errors.New("horário já finalizado")
	ErrMissingQuantities = errors.New("informe quantidade injetada e peças NC")
	ErrInvalidKind       = errors.New("tipo de registro inválido")
	ErrIncompleteContext = errors.New("dados iniciais do turno incompletos")
)

const (
	labelBreak     = "Intervalo (registro automático)"
	labelSetup     = "Setup de máquina (registro automático)"
	labelEndOfWork = "Operação encerrada"
)

type Submitter interface {
	CreateReading(ctx context.Context, r storage.Reading) (storage.Reading, error)
}

// Context são os dados escolhidos no início do turno e repetidos em cada apontamento.
type Context struct {
	TipoInjetora string `json:"tipoInjetora"`
	Maquina      string `json:"maquina"`
	Funcionario  string `json:"funcionario"`
	CodigoPeca   string `json:"codigoPeca"`
	Data         string `json:"dataApontamento"`
	Turno        string `json:"turno"`
}

type Slot struct {
	Hora               string `json:"hora"`
	QuantidadeInjetada *int   `json:"quantidadeInjetada"`
	PecasNC            *int   `json:"pecasNC"`
	Observacao         string `json:"observacao"`
	TipoRegistro       string `json:"tipoRegistro"`
	Finalizado         bool   `json:"finalizado"`
}

func (s Slot) hasData() bool {
	return s.QuantidadeInjetada != nil || s.PecasNC != nil || s.Observacao != ""
}

type State struct {
	Context Context `json:"context"`
	Slots   []Slot  `json:"slots"`
	Cursor  int     `json:"currentIndex"`
}

// Done é o estado terminal: nenhum horário resta para apontar.
func (s State) Done() bool {
	return s.Cursor >= len(s.Slots)
}

func (s State) clone() State {
	next := s
	next.Slots = make([]Slot, len(s.Slots))
	copy(next.Slots, s.Slots)
	return next
}

func (s State) nextOpen(from int) int {
	for i := from; i < len(s.Slots); i++ {
		if !s.Slots[i].Finalizado {
			return i
		}
	}
	return len(s.Slots)
}

// New monta o estado inicial a partir dos horários do turno.
func New(c Context) (State, error) {
	if c.TipoInjetora == "" || c.Maquina == "" || c.Funcionario == "" || c.CodigoPeca == "" {
		return State{}, ErrIncompleteContext
	}

	c.Turno = shift.Normalize(c.Turno)

	hours, err := shift.Hours(c.Data, c.Turno)
	if err != nil {
		return State{}, err
	}

	slots := make([]Slot, len(hours))
	for i, h := range hours {
		slots[i] = Slot{Hora: h, TipoRegistro: storage.KindProduction}
	}

	return State{Context: c, Slots: slots}, nil
}

func (s State) checkCurrent(index int) error {
	if s.Done() {
		return ErrDone
	}
	if index != s.Cursor {
		return fmt.Errorf("%w: %d (atual %d)", ErrNotCurrent, index, s.Cursor)
	}
	if s.Slots[index].Finalizado {
		return ErrFinalized
	}
	return nil
}

type Input struct {
	QuantidadeInjetada *int
	PecasNC            *int
	Observacao         string
}

// SetInput preenche o horário atual. Os demais horários são somente leitura.
func SetInput(s State, index int, in Input) (State, error) {
	if err := s.checkCurrent(index); err != nil {
		return s, err
	}

	next := s.clone()
	slot := &next.Slots[index]
	slot.QuantidadeInjetada = in.QuantidadeInjetada
	slot.PecasNC = in.PecasNC
	slot.Observacao = in.Observacao

	return next, nil
}

func (s State) reading(slot Slot) storage.Reading {
	r := storage.Reading{
		TipoInjetora:    s.Context.TipoInjetora,
		DataApontamento: s.Context.Data,
		HoraApontamento: slot.Hora,
		Turno:           s.Context.Turno,
		Maquina:         s.Context.Maquina,
		Funcionario:     s.Context.Funcionario,
		CodigoPeca:      s.Context.CodigoPeca,
		Observacao:      slot.Observacao,
		TipoRegistro:    slot.TipoRegistro,
		Finalizado:      slot.TipoRegistro == storage.KindFinalized,
	}
	if slot.QuantidadeInjetada != nil {
		r.QuantidadeInjetada = *slot.QuantidadeInjetada
	}
	if slot.PecasNC != nil {
		r.PecasNC = *slot.PecasNC
	}
	r.ComputeEffective()

	return r
}

// Register envia o horário atual. Em caso de erro o estado devolvido é o mesmo recebido.
func Register(ctx context.Context, s State, index int, sub Submitter) (State, error) {
	if err := s.checkCurrent(index); err != nil {
		return s, err
	}

	slot := s.Slots[index]
	if slot.TipoRegistro == "" {
		slot.TipoRegistro = storage.KindProduction
	}
	if slot.TipoRegistro == storage.KindProduction && (slot.QuantidadeInjetada == nil || slot.PecasNC == nil) {
		return s, ErrMissingQuantities
	}

	if _, err := sub.CreateReading(ctx, s.reading(slot)); err != nil {
		return s, fmt.Errorf("erro ao registrar horário %s: %w", slot.Hora, err)
	}

	next := s.clone()
	slot.Finalizado = true
	next.Slots[index] = slot
	next.Cursor = next.nextOpen(index + 1)

	return next, nil
}

// SpecialAction zera o horário atual, marca como intervalo ou setup e registra.
func SpecialAction(ctx context.Context, s State, kind string, sub Submitter) (State, error) {
	var label string
	switch kind {
	case storage.KindBreak:
		label = labelBreak
	case storage.KindSetup:
		label = labelSetup
	default:
		return s, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	if s.Done() {
		return s, ErrDone
	}

	zero := 0
	next := s.clone()
	slot := &next.Slots[next.Cursor]
	slot.QuantidadeInjetada = &zero
	slot.PecasNC = &zero
	slot.Observacao = label
	slot.TipoRegistro = kind

	return Register(ctx, next, next.Cursor, sub)
}

// EndOperationError indica que o encerramento parou no meio. Os horários anteriores a
// Index já foram enviados e continuam finalizados.
type EndOperationError struct {
	Index int
	Hora  string
	Err   error
}

func (e *EndOperationError) Error() string {
	return fmt.Sprintf("encerramento incompleto no horário %s: %v", e.Hora, e.Err)
}

func (e *EndOperationError) Unwrap() error {
	return e.Err
}

// EndOperation finaliza todos os horários a partir do cursor, um por vez.
// O horário atual com dados parciais é enviado como está (vazios viram zero); os outros
// recebem um apontamento zerado do tipo "finalized". O primeiro erro interrompe o laço.
func EndOperation(ctx context.Context, s State, sub Submitter) (State, error) {
	if s.Done() {
		return s, ErrDone
	}

	next := s.clone()
	start := next.Cursor

	for i := start; i < len(next.Slots); i++ {
		slot := next.Slots[i]
		if slot.Finalizado {
			continue
		}

		if i != start || !slot.hasData() {
			slot.Observacao = labelEndOfWork
		}
		zero := 0
		if slot.QuantidadeInjetada == nil || i != start {
			slot.QuantidadeInjetada = &zero
		}
		if slot.PecasNC == nil || i != start {
			slot.PecasNC = &zero
		}
		slot.TipoRegistro = storage.KindFinalized

		if _, err := sub.CreateReading(ctx, next.reading(slot)); err != nil {
			next.Cursor = i
			return next, &EndOperationError{Index: i, Hora: slot.Hora, Err: err}
		}

		slot.Finalizado = true
		next.Slots[i] = slot
	}

	next.Cursor = len(next.Slots)

	return next, nil
}
