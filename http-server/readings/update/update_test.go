package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"injetora-apontamentos/internal/storage"
)

type MockReadingUpdater struct {
	mock.Mock
}

func (m *MockReadingUpdater) UpdateReading(ctx context.Context, id int64, upd storage.ReadingUpdate) (storage.Reading, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(storage.Reading), args.Error(1)
}

func put(updater ReadingUpdater, id, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Put("/api/apontamentos/injetora/{id}", UpdateReading(slog.Default(), updater))

	req := httptest.NewRequest(http.MethodPut, "/api/apontamentos/injetora/"+id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestUpdateReading_Success(t *testing.T) {
	updater := new(MockReadingUpdater)
	updater.On("UpdateReading", mock.Anything, int64(7), mock.MatchedBy(func(u storage.ReadingUpdate) bool {
		return u.PecasNC != nil && *u.PecasNC == 10 && u.Turno != nil && *u.Turno == storage.ShiftMorning
	})).Return(storage.Reading{ID: 7, QuantidadeInjetada: 100, PecasNC: 10, QuantidadeEfetiva: 90}, nil)

	rr := put(updater, "7", `{"pecasNC": 10, "turno": "manha"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"quantidadeEfetiva":90`)
	updater.AssertExpectations(t)
}

func TestUpdateReading_Errors(t *testing.T) {
	cases := []struct {
		name    string
		id      string
		body    string
		mockErr error
		code    int
	}{
		{"bad id", "abc", `{"pecasNC": 1}`, nil, http.StatusBadRequest},
		{"zero id", "0", `{"pecasNC": 1}`, nil, http.StatusBadRequest},
		{"empty body", "7", `{}`, nil, http.StatusBadRequest},
		{"negative", "7", `{"quantidadeInjetada": -3}`, nil, http.StatusBadRequest},
		{"not found", "7", `{"pecasNC": 1}`, storage.ErrReadingNotFound, http.StatusNotFound},
		{"duplicate", "7", `{"horaApontamento": "09:00"}`, storage.ErrDuplicateReading, http.StatusConflict},
		{"db down", "7", `{"pecasNC": 1}`, errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			updater := new(MockReadingUpdater)
			if tc.mockErr != nil {
				updater.On("UpdateReading", mock.Anything, int64(7), mock.Anything).
					Return(storage.Reading{}, tc.mockErr)
			}

			rr := put(updater, tc.id, tc.body)

			assert.Equal(t, tc.code, rr.Code)
			updater.AssertExpectations(t)
		})
	}
}

func TestUpdateReading_SingleDigitHour(t *testing.T) {
	updater := new(MockReadingUpdater)
	updater.On("UpdateReading", mock.Anything, int64(7), mock.MatchedBy(func(u storage.ReadingUpdate) bool {
		return u.HoraApontamento != nil && *u.HoraApontamento == "09:00"
	})).Return(storage.Reading{ID: 7, HoraApontamento: "09:00"}, nil)

	rr := put(updater, "7", `{"horaApontamento": "9:00"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	updater.AssertExpectations(t)
}
