// Package session извлекает текущего пользователя из bearer-токена фронтенда.
//
// Шлюз токены не выпускает — только проверяет подпись auth-слоя (HS256) и
// читает клеймы. «Глобальное» состояние браузерного клиента (текущий
// пользователь) становится явным значением, передаваемым в фасад.
package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pribylovaa/go-classifieds-discussion/internal/config"
	"github.com/pribylovaa/go-classifieds-discussion/internal/models"
)

var (
	// ErrInvalidToken — токен отсутствует, битый или с неверной подписью/клеймами.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired — токен просрочен.
	ErrTokenExpired = errors.New("token expired")
)

type accessClaims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// FromToken валидирует access-токен и возвращает текущего пользователя.
func FromToken(tokenStr string, cfg config.AuthConfig) (models.User, error) {
	const op = "session.FromToken"

	if tokenStr == "" {
		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(cfg.Leeway),
		jwt.WithIssuer(cfg.Issuer),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.UserID == 0 || claims.Username == "" {
		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return models.User{ID: claims.UserID, Username: claims.Username}, nil
}
