package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer("segredo")

	raw, issued, err := issuer.Issue("joao", LevelSupervisor)
	require.NoError(t, err)

	claims, err := issuer.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "joao", claims.Username)
	assert.Equal(t, LevelSupervisor, claims.Level)
	assert.Equal(t, IdentityFor("joao"), claims.Identity)
	assert.Equal(t, issued.Id, claims.Id)
	assert.Equal(t, int64(TTL.Seconds()), claims.ExpiresAt-claims.IssuedAt)
}

func TestParse_WrongSecret(t *testing.T) {
	raw, _, err := NewIssuer("a").Issue("joao", LevelOperator)
	require.NoError(t, err)

	_, err = NewIssuer("b").Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	issuer := NewIssuer("segredo")
	issuer.now = func() time.Time { return time.Now().Add(-9 * time.Hour) }

	raw, _, err := issuer.Issue("joao", LevelOperator)
	require.NoError(t, err)

	_, err = NewIssuer("segredo").Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	_, err := NewIssuer("segredo").Parse("nao-e-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIdentityFor_Stable(t *testing.T) {
	assert.Equal(t, IdentityFor("maria"), IdentityFor("maria"))
	assert.NotEqual(t, IdentityFor("maria"), IdentityFor("joao"))
}
