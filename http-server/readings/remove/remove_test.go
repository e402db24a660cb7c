package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReadingDeleter struct {
	mock.Mock
}

func (m *MockReadingDeleter) DeleteReading(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func del(deleter ReadingDeleter, id string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Delete("/api/apontamentos/injetora/{id}", DeleteReading(slog.Default(), deleter))

	req := httptest.NewRequest(http.MethodDelete, "/api/apontamentos/injetora/"+id, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestDeleteReading(t *testing.T) {
	deleter := new(MockReadingDeleter)
	deleter.On("DeleteReading", mock.Anything, int64(3)).Return(nil)
	deleter.On("DeleteReading", mock.Anything, int64(4)).Return(errors.New("lock wait timeout"))

	assert.Equal(t, http.StatusNoContent, del(deleter, "3").Code)
	assert.Equal(t, http.StatusInternalServerError, del(deleter, "4").Code)
	assert.Equal(t, http.StatusBadRequest, del(deleter, "x").Code)

	deleter.AssertExpectations(t)
}
