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

type MockTargetProvider struct {
	mock.Mock
}

func (m *MockTargetProvider) GetDailyTarget(ctx context.Context) (storage.DailyTarget, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(storage.DailyTarget), args.Bool(1), args.Error(2)
}

func TestGetDailyTarget(t *testing.T) {
	cases := []struct {
		name   string
		target storage.DailyTarget
		found  bool
		err    error
		code   int
		body   string
	}{
		{"default", storage.DailyTarget{}, false, nil, http.StatusOK, `"valor":1000`},
		{"stored", storage.DailyTarget{Chave: storage.DailyTargetKey, Valor: 750}, true, nil, http.StatusOK, `"valor":750`},
		{"db error", storage.DailyTarget{}, false, errors.New("timeout"), http.StatusInternalServerError, `"details":"timeout"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := new(MockTargetProvider)
			provider.On("GetDailyTarget", mock.Anything).Return(tc.target, tc.found, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/api/meta-producao", nil)
			rr := httptest.NewRecorder()
			GetDailyTarget(slog.Default(), provider).ServeHTTP(rr, req)

			assert.Equal(t, tc.code, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.body)
		})
	}
}
