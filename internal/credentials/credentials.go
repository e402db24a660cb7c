// Package credentials confere login e senha contra a planilha de usuários.
//
// A planilha tem três colunas: usuário, senha, nível (1 operador, 2 supervisor).
// Senhas que começam com "$2" são hashes bcrypt; as demais são comparadas em tempo constante.
package credentials

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("credenciais inválidas")

type User struct {
	Username string
	Password string
	Level    int
}

type Source interface {
	Users(ctx context.Context) ([]User, error)
}

type Authenticator struct {
	source Source
}

func NewAuthenticator(source Source) *Authenticator {
	return &Authenticator{source: source}
}

func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (User, error) {
	const op = "credentials.Authenticate"

	users, err := a.source.Users(ctx)
	if err != nil {
		return User{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, u := range users {
		if u.Username != username {
			continue
		}
		if !passwordMatches(u.Password, password) {
			return User{}, ErrInvalidCredentials
		}
		return User{Username: u.Username, Level: u.Level}, nil
	}

	return User{}, ErrInvalidCredentials
}

func passwordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

// parseRows converte linhas da planilha. Linhas sem usuário são ignoradas; nível vazio ou
// inválido vira operador.
func parseRows(rows [][]string) []User {
	users := make([]User, 0, len(rows))

	for _, row := range rows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		u := User{Username: strings.TrimSpace(row[0]), Level: 1}
		if len(row) > 1 {
			u.Password = row[1]
		}
		if len(row) > 2 {
			if lvl, err := strconv.Atoi(strings.TrimSpace(row[2])); err == nil && (lvl == 1 || lvl == 2) {
				u.Level = lvl
			}
		}

		users = append(users, u)
	}

	return users
}
