package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers undecodable, tampered and expired session tokens.
var ErrInvalidToken = errors.New("could not get data from the token")

// TokenData is the session token payload. The token is bound to the client
// IP observed at login.
type TokenData struct {
	OrchestratorName string `json:"orchestrator_name"`
	OrchestratorIP   string `json:"orchestrator_ip"`
	Expiration       int64  `json:"expiration"`
	jwt.RegisteredClaims
}

// CreateToken mints an HS256 session token valid for validity seconds.
func CreateToken(orchestratorName, orchestratorIP string, validity int, key string) (string, error) {
	data := TokenData{
		OrchestratorName: orchestratorName,
		OrchestratorIP:   orchestratorIP,
		Expiration:       time.Now().Unix() + int64(validity),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, data)
	signed, err := token.SignedString([]byte(key))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates the signature and the expiration and returns the
// payload.
func ParseToken(tokenString, key string) (*TokenData, error) {
	data := &TokenData{}
	token, err := jwt.ParseWithClaims(tokenString, data, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(key), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if data.Expiration < time.Now().Unix() {
		return nil, ErrInvalidToken
	}
	return data, nil
}

// VerifyLogin checks a login proof: the password the client sends is
// SHA256(username || shared authentication password).
func VerifyLogin(username, password, expectedPassword string) bool {
	return CalculateHash(username+expectedPassword) == password
}
