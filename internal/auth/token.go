package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
)

const accessTokenTTL = 24 * time.Hour
const refreshTokenTTL = 30 * 24 * time.Hour

type TokenManager struct {
	secretKey []byte
}

func NewTokenManager(secretKey string) *TokenManager {
	return &TokenManager{[]byte(secretKey)}
}

func (tm *TokenManager) GenerateToken(userID int) (string, error) {
	return tm.generate(userID, "access", accessTokenTTL)
}

func (tm *TokenManager) GenerateRefreshToken(userID int) (string, error) {
	return tm.generate(userID, "refresh", refreshTokenTTL)
}

func (tm *TokenManager) generate(userID int, typ string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"typ":     typ,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secretKey)
}

func (tm *TokenManager) ParseToken(tokenStr string) (int, error) {
	return tm.parse(tokenStr, "access")
}

func (tm *TokenManager) ParseRefreshToken(tokenStr string) (int, error) {
	return tm.parse(tokenStr, "refresh")
}

func (tm *TokenManager) parse(tokenStr string, typ string) (int, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errs.ErrInvalidToken
		}
		return tm.secretKey, nil
	})

	if err != nil || !token.Valid {
		return 0, errs.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errs.ErrInvalidToken
	}

	if tokenTyp, _ := claims["typ"].(string); tokenTyp != typ {
		return 0, errs.ErrInvalidToken
	}

	idFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errs.ErrInvalidToken
	}

	return int(idFloat), nil
}
