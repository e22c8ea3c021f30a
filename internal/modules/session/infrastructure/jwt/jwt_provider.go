package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type CustomClaims struct {
	OperatorID uuid.UUID `json:"operator_id"`
	Username   string    `json:"usuario"`
	Role       string    `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates an HS256 token for the operator that expires after
// duration.
func GenerateToken(secret string, duration time.Duration, operatorID uuid.UUID, username, role string) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		OperatorID: operatorID,
		Username:   username,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses tokenStr and verifies its HMAC signature and time
// claims.
func ValidateToken(tokenStr string, secret string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenMalformed
}
