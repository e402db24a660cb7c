package reference

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"injetora-apontamentos/internal/storage"
)

type MockReferenceStorage struct {
	mock.Mock
}

func (m *MockReferenceStorage) ListEmployees(ctx context.Context) ([]storage.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Employee), args.Error(1)
}

func (m *MockReferenceStorage) ListParts(ctx context.Context) ([]storage.Part, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Part), args.Error(1)
}

func (m *MockReferenceStorage) ListMachines(ctx context.Context, tipoInjetora string) ([]storage.Machine, error) {
	args := m.Called(ctx, tipoInjetora)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Machine), args.Error(1)
}

func TestLists_Success(t *testing.T) {
	st := new(MockReferenceStorage)
	st.On("ListEmployees", mock.Anything).Return([]storage.Employee{{ID: 1, NomeCompleto: "Maria Souza"}}, nil)
	st.On("ListParts", mock.Anything).Return([]storage.Part{{Codigo: "P1", Descricao: "Tampa"}}, nil)
	st.On("ListMachines", mock.Anything, "Vertical").Return([]storage.Machine{{ID: 2, Nome: "INJ-02", TipoInjetora: "Vertical"}}, nil)

	lists, err := NewService(st).Lists(context.Background(), "Vertical")
	require.NoError(t, err)

	assert.Len(t, lists.Funcionarios, 1)
	assert.Equal(t, "P1", lists.Pecas[0].Codigo)
	assert.Equal(t, "INJ-02", lists.Maquinas[0].Nome)
	st.AssertExpectations(t)
}

func TestLists_OneFails(t *testing.T) {
	st := new(MockReferenceStorage)
	st.On("ListEmployees", mock.Anything).Return([]storage.Employee{}, nil)
	st.On("ListParts", mock.Anything).Return(nil, errors.New("table pecas doesn't exist"))
	st.On("ListMachines", mock.Anything, "").Return([]storage.Machine{}, nil)

	_, err := NewService(st).Lists(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pecas")
}
