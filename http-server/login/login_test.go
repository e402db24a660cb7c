package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"injetora-apontamentos/internal/credentials"
	"injetora-apontamentos/internal/token"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, username, password string) (credentials.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(credentials.User), args.Error(1)
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestLogin_Success(t *testing.T) {
	authn := new(MockAuthenticator)
	authn.On("Authenticate", mock.Anything, "carlos", "456").
		Return(credentials.User{Username: "carlos", Level: token.LevelSupervisor}, nil)

	issuer := token.NewIssuer("segredo")
	rr := post(Login(slog.Default(), authn, issuer), `{"username":"carlos","password":"456"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "carlos", resp.Username)
	assert.Equal(t, token.LevelSupervisor, resp.Level)

	claims, err := issuer.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, token.IdentityFor("carlos"), claims.Identity)
}

func TestLogin_Failures(t *testing.T) {
	authn := new(MockAuthenticator)
	authn.On("Authenticate", mock.Anything, "ana", "errada").
		Return(credentials.User{}, credentials.ErrInvalidCredentials)
	authn.On("Authenticate", mock.Anything, "ana", "123").
		Return(credentials.User{}, errors.New("sheets: 503"))

	h := Login(slog.Default(), authn, token.NewIssuer("segredo"))

	assert.Equal(t, http.StatusUnauthorized, post(h, `{"username":"ana","password":"errada"}`).Code)
	assert.Equal(t, http.StatusInternalServerError, post(h, `{"username":"ana","password":"123"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, `{"username":"ana"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, `not json`).Code)
}
