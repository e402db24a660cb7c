package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"injetora-apontamentos/internal/storage"
)

type MockListsProvider struct {
	mock.Mock
}

func (m *MockListsProvider) Lists(ctx context.Context, tipoInjetora string) (storage.ReferenceLists, error) {
	args := m.Called(ctx, tipoInjetora)
	return args.Get(0).(storage.ReferenceLists), args.Error(1)
}

func TestGetLists(t *testing.T) {
	provider := new(MockListsProvider)
	provider.On("Lists", mock.Anything, "Vertical").Return(storage.ReferenceLists{
		Funcionarios: []storage.Employee{{ID: 1, NomeCompleto: "Ana Souza"}},
		Pecas:        []storage.Part{{Codigo: "P1", Descricao: "Tampa"}},
		Maquinas:     []storage.Machine{{ID: 4, Nome: "INJ-04", TipoInjetora: "Vertical"}},
	}, nil)
	provider.On("Lists", mock.Anything, "").Return(storage.ReferenceLists{}, errors.New("too many connections"))

	h := GetLists(slog.Default(), provider)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/data/lists?tipoInjetora=Vertical", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"funcionarios"`)
	assert.Contains(t, rr.Body.String(), "INJ-04")

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/data/lists", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "too many connections")

	provider.AssertExpectations(t)
}
