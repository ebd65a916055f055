package rest

import (
	"time"

	"github.com/golang-jwt/jwt"
)

type TokenClaims struct {
	Email string `json:"sub"`
	Type  string `json:"typ"`
	Exp   int64  `json:"exp"`
}

// Simplified token creation. The subject is the admin's email, which
// is re-checked against the allowlist on every request.
func (api *API) createToken(email string) (string, time.Time, error) {
	exp_time, err := time.ParseDuration(api.Config.JwtExpires)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(exp_time)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
		"typ": "access",
	})

	tokenString, err := token.SignedString([]byte(api.Config.JwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}
