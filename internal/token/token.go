package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

const (
	LevelOperator   = 1
	LevelSupervisor = 2

	TTL = 8 * time.Hour
)

var ErrInvalidToken = errors.New("token inválido")

// identityNamespace gera identidades estáveis (UUID v5) a partir do nome de usuário.
var identityNamespace = uuid.MustParse("7d0c4f5e-2f0a-4c1d-9b3e-5b7f3f4c2a10")

type Claims struct {
	Identity string `json:"id"`
	Username string `json:"username"`
	Level    int    `json:"level"`
	jwt.StandardClaims
}

type Issuer struct {
	secret []byte
	now    func() time.Time
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret), now: time.Now}
}

func IdentityFor(username string) string {
	return uuid.NewSHA1(identityNamespace, []byte(username)).String()
}

func (i *Issuer) Issue(username string, level int) (string, *Claims, error) {
	now := i.now()
	claims := &Claims{
		Identity: IdentityFor(username),
		Username: username,
		Level:    level,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(TTL).Unix(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return signed, claims, nil
}

func (i *Issuer) Parse(raw string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Level != LevelOperator && claims.Level != LevelSupervisor {
		return nil, fmt.Errorf("%w: nível %d", ErrInvalidToken, claims.Level)
	}

	return claims, nil
}
