// Package auth holds the token machinery of the owner accounts. The
// pipeline itself never verifies identity - it receives the uploader id
// from the middleware and records it as-is.
package auth

import (
	"crypto"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type JwtClaims struct {
	jwt.RegisteredClaims
}

// Jwt is a signed access token together with its expiry moment
type Jwt struct {
	Signed    string
	ExpiresAt int64
}

type JwtIssuer struct {
	issuer     string
	method     jwt.SigningMethod
	timeToLive time.Duration
	privateKey crypto.PrivateKey
}

func NewJwtIssuer(issuer string, method jwt.SigningMethod, ttl time.Duration, key crypto.PrivateKey) *JwtIssuer {
	return &JwtIssuer{
		issuer:     issuer,
		method:     method,
		timeToLive: ttl,
		privateKey: key,
	}
}

// Sign issues a token whose subject is the admin id
func (j *JwtIssuer) Sign(adminID string, issuedAt time.Time) (*Jwt, error) {
	expiresAt := issuedAt.Add(j.timeToLive)

	claims := JwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    j.issuer,
			Subject:   adminID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	signed, err := jwt.NewWithClaims(j.method, claims).SignedString(j.privateKey)
	if err != nil {
		return nil, err
	}
	return &Jwt{Signed: signed, ExpiresAt: expiresAt.Unix()}, nil
}

type JwtValidator struct {
	method    jwt.SigningMethod
	publicKey crypto.PublicKey
}

func NewJwtValidator(method jwt.SigningMethod, key crypto.PublicKey) *JwtValidator {
	return &JwtValidator{method: method, publicKey: key}
}

func (j *JwtValidator) Verify(rawToken string) (JwtClaims, error) {
	var claims JwtClaims
	if _, err := jwt.ParseWithClaims(rawToken, &claims, j.keyFunc); err != nil {
		return JwtClaims{}, err
	}
	return claims, nil
}

func (j *JwtValidator) keyFunc(token *jwt.Token) (any, error) {
	if token.Method.Alg() != j.method.Alg() {
		return nil, errors.New("failed to verify signing algorithm")
	}
	return j.publicKey, nil
}
