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

	"injetora-apontamentos/internal/service/dashboard"
	"injetora-apontamentos/internal/storage"
)

type MockDashboardStorage struct {
	mock.Mock
}

func (m *MockDashboardStorage) ListReadings(ctx context.Context, f storage.ReadingFilter) ([]storage.Reading, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]storage.Reading), args.Error(1)
}

func (m *MockDashboardStorage) GetDailyTarget(ctx context.Context) (storage.DailyTarget, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(storage.DailyTarget), args.Bool(1), args.Error(2)
}

func TestGetDashboard(t *testing.T) {
	st := new(MockDashboardStorage)
	st.On("GetDailyTarget", mock.Anything).Return(storage.DailyTarget{}, false, nil)
	st.On("ListReadings", mock.Anything, storage.ReadingFilter{DataInicio: "2024-05-10", DataFim: "2024-05-10"}).
		Return([]storage.Reading{
			{DataApontamento: "2024-05-10", CodigoPeca: "P1", QuantidadeInjetada: 100, PecasNC: 5, QuantidadeEfetiva: 95},
			{DataApontamento: "2024-05-10", CodigoPeca: "P1", QuantidadeInjetada: 50, PecasNC: 0, QuantidadeEfetiva: 50},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?dataInicio=2024-05-10&dataFim=2024-05-10", nil)
	rr := httptest.NewRecorder()
	GetDashboard(slog.Default(), st).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got dashboard.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 1000, got.Meta)
	require.Len(t, got.PorPecaDia, 1)
	assert.Equal(t, 3.33, got.PorPecaDia[0].TaxaNC)
	assert.Equal(t, 14.5, got.Percentuais.PercentualMeta)
	st.AssertExpectations(t)
}

func TestGetDashboard_InvertedRange(t *testing.T) {
	st := new(MockDashboardStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?dataInicio=2024-05-10&dataFim=2024-05-01", nil)
	rr := httptest.NewRecorder()
	GetDashboard(slog.Default(), st).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	st.AssertNotCalled(t, "ListReadings", mock.Anything, mock.Anything)
}
