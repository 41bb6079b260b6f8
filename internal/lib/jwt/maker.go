// Package jwt реализует выпуск и разбор пары JWT токенов (access и refresh).
package jwt

import (
	"time"
)

// Maker описывает выпуск и проверку JWT токенов пользователя.
type Maker interface {
	// GenerateTokenPair выпускает access и refresh токены для пользователя.
	GenerateTokenPair(userID int64, username string) (access, refresh string, err error)
	// GenerateAccessToken выпускает только access токен.
	GenerateAccessToken(userID int64, username string) (string, error)
	// ParseToken проверяет подпись, срок действия и тип токена.
	ParseToken(tokenStr string, want TokenType) (*CustomClaims, error)
}

// MakerImpl реализует Maker с секретным ключом HS256 и временем жизни токенов.
type MakerImpl struct {
	secretKey  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewJWTMaker создаёт MakerImpl на основе секретного ключа и времени жизни токенов.
func NewJWTMaker(secretKey string, accessTTL, refreshTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}
