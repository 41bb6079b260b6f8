package jwt

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType различает access и refresh токены.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// ErrWrongTokenType - токен валиден, но другого типа.
var ErrWrongTokenType = errors.New("wrong token type")

// CustomClaims описывает пользовательские данные, хранящиеся в JWT.
type CustomClaims struct {
	UserID               int64     `json:"user_id"`
	Username             string    `json:"username"`
	TokenType            TokenType `json:"token_type"`
	jwt.RegisteredClaims           // ExpiresAt, IssuedAt, Subject
}

// GenerateTokenPair создает access и refresh токены пользователя.
func (j *MakerImpl) GenerateTokenPair(userID int64, username string) (string, string, error) {
	const op = "jwt.GenerateTokenPair"
	access, err := j.generate(userID, username, AccessToken)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	refresh, err := j.generate(userID, username, RefreshToken)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	return access, refresh, nil
}

// GenerateAccessToken создает access токен пользователя.
func (j *MakerImpl) GenerateAccessToken(userID int64, username string) (string, error) {
	return j.generate(userID, username, AccessToken)
}

func (j *MakerImpl) generate(userID int64, username string, tokenType TokenType) (string, error) {
	ttl := j.accessTTL
	if tokenType == RefreshToken {
		ttl = j.refreshTTL
	}
	now := j.now()
	claims := CustomClaims{
		UserID:    userID,
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken парсит JWT токен, проверяет подпись, срок действия и тип,
// возвращает CustomClaims, если токен корректен.
func (j *MakerImpl) ParseToken(tokenStr string, want TokenType) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(j.now))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	if claims.TokenType != want {
		return nil, fmt.Errorf("%s: %w", op, ErrWrongTokenType)
	}
	return claims, nil
}
