package session

// Тесты извлечения пользователя из access-токена (internal/session).
//
//  Проверяем:
//  - валидный HS256-токен -> models.User;
//  - просрочку (с учётом leeway) -> ErrTokenExpired;
//  - чужую подпись, чужой алгоритм, чужого issuer, битые клеймы -> ErrInvalidToken.

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-classifieds-discussion/internal/config"
)

const testSecret = "test-secret"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret: testSecret,
		Issuer:    "auth-service",
		Leeway:    5 * time.Second,
	}
}

// signToken — токен в формате auth-слоя: клеймы uid/username + registered.
func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func validClaims() jwt.MapClaims {
	now := time.Now()

	return jwt.MapClaims{
		"uid":      int64(42),
		"username": "ivan",
		"iss":      "auth-service",
		"iat":      now.Unix(),
		"exp":      now.Add(time.Hour).Unix(),
	}
}

func TestFromToken_OK(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims())

	user, err := FromToken(token, testAuthConfig())
	require.NoError(t, err)
	require.Equal(t, int64(42), user.ID)
	require.Equal(t, "ivan", user.Username)
}

func TestFromToken_Empty(t *testing.T) {
	_, err := FromToken("", testAuthConfig())
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestFromToken_Garbage(t *testing.T) {
	_, err := FromToken("not.a.jwt", testAuthConfig())
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestFromToken_Expired(t *testing.T) {
	claims := validClaims()
	claims["iat"] = time.Now().Add(-2 * time.Hour).Unix()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)

	_, err := FromToken(token, testAuthConfig())
	require.ErrorIs(t, err, ErrTokenExpired)
}

// Просрочка в пределах leeway допустима.
func TestFromToken_ExpiredWithinLeeway(t *testing.T) {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Second).Unix()

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)

	_, err := FromToken(token, testAuthConfig())
	require.NoError(t, err)
}

func TestFromToken_WrongSecret(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), validClaims())

	_, err := FromToken(token, testAuthConfig())
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestFromToken_WrongAlgorithm(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims())

	_, err := FromToken(token, testAuthConfig())
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestFromToken_WrongIssuer(t *testing.T) {
	claims := validClaims()
	claims["iss"] = "someone-else"

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)

	_, err := FromToken(token, testAuthConfig())
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestFromToken_MissingClaims(t *testing.T) {
	tests := []struct {
		name  string
		strip string
	}{
		{"no_uid", "uid"},
		{"no_username", "username"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			claims := validClaims()
			delete(claims, tc.strip)

			token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)

			_, err := FromToken(token, testAuthConfig())
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
