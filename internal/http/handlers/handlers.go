package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pribylovaa/go-classifieds-discussion/internal/config"
	"github.com/pribylovaa/go-classifieds-discussion/internal/remote/transport"
	"github.com/pribylovaa/go-classifieds-discussion/internal/service"
	"github.com/pribylovaa/go-classifieds-discussion/internal/session"
)

// Handlers агрегирует зависимости (discussion-фасад и параметры проверки токена).
type Handlers struct {
	Service *service.Service
	Auth    config.AuthConfig
}

func New(svc *service.Service, auth config.AuthConfig) *Handlers {
	return &Handlers{Service: svc, Auth: auth}
}

// currentSession — сессия пользователя по bearer-токену запроса.
// Отсутствующий/битый/просроченный токен -> service.ErrUnauthenticated.
func (h *Handlers) currentSession(r *http.Request) (*service.Session, error) {
	const op = "http/handlers/currentSession"

	token, _ := r.Context().Value(transport.CtxAuthToken).(string)
	if token == "" {
		return nil, fmt.Errorf("%s: %w", op, service.ErrUnauthenticated)
	}

	user, err := session.FromToken(token, h.Auth)
	if err != nil {
		if errors.Is(err, session.ErrTokenExpired) || errors.Is(err, session.ErrInvalidToken) {
			return nil, fmt.Errorf("%s: %w", op, service.ErrUnauthenticated)
		}

		return nil, fmt.Errorf("%s: %w", op, service.ErrInternal)
	}

	return h.Service.Session(user), nil
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — вспомогалка: локальная ошибка парсинга -> ErrInvalidArgument.
func errInvalidArgument() error {
	return service.ErrInvalidArgument
}
