package get

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"injetora-apontamentos/internal/storage"
)

type MockReadingsProvider struct {
	mock.Mock
}

func (m *MockReadingsProvider) ListReadings(ctx context.Context, f storage.ReadingFilter) ([]storage.Reading, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]storage.Reading), args.Error(1)
}

func TestGetReadings_Filters(t *testing.T) {
	provider := new(MockReadingsProvider)
	provider.On("ListReadings", mock.Anything, storage.ReadingFilter{
		DataApontamento: "2024-05-10",
		Turno:           storage.ShiftNight,
		Maquina:         "INJ-01",
	}).Return([]storage.Reading{
		{ID: 1, HoraApontamento: "18:00"},
		{ID: 2, HoraApontamento: "19:00"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/apontamentos/injetora?dataApontamento=2024-05-10&turno=Noite&maquina=INJ-01", nil)
	rr := httptest.NewRecorder()
	GetReadings(slog.Default(), provider).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got []storage.Reading
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	provider.AssertExpectations(t)
}

func TestGetReadings_BadQuery(t *testing.T) {
	provider := new(MockReadingsProvider)

	for _, q := range []string{"turno=Tarde", "dataApontamento=ontem"} {
		req := httptest.NewRequest(http.MethodGet, "/api/apontamentos/injetora?"+q, nil)
		rr := httptest.NewRecorder()
		GetReadings(slog.Default(), provider).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, q)
	}

	provider.AssertNotCalled(t, "ListReadings", mock.Anything, mock.Anything)
}
