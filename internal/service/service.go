// service содержит Discussion-фасад: единственный координатор поверх
// дерева комментариев, реестра бесед и маршрутизатора уведомлений.
// Сторы друг друга не вызывают и остаются независимо тестируемыми значениями.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pribylovaa/go-classifieds-discussion/internal/models"
	"github.com/pribylovaa/go-classifieds-discussion/internal/remote"
	"github.com/pribylovaa/go-classifieds-discussion/internal/store/commenttree"
	"github.com/pribylovaa/go-classifieds-discussion/internal/store/conversations"
	"github.com/pribylovaa/go-classifieds-discussion/internal/store/notifications"
)

var (
	// ErrInvalidArgument — пустой после TrimSpace текст и прочие битые входы.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSelfChat — попытка открыть беседу/написать самому себе.
	// Проверяется до любого сетевого вызова.
	ErrSelfChat = errors.New("self chat is forbidden")
	// ErrNotFound — объявление/беседа/уведомление отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated — вызов без действующего bearer-токена.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUnavailable — discussion-service недоступен.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrInternal — прочие ошибки.
	ErrInternal = errors.New("internal")
)

// Service — владелец пользовательских сессий discussion-слоя.
type Service struct {
	remote remote.Discussion

	mu       sync.Mutex
	sessions map[int64]*Session
}

// New создает новый экземпляр Service.
func New(rem remote.Discussion) *Service {
	return &Service{
		remote:   rem,
		sessions: make(map[int64]*Session),
	}
}

// Session возвращает сессию пользователя, создавая её при первом обращении.
// Сессия владеет in-memory моделью: лесами комментариев по объявлениям,
// журналами бесед и списком уведомлений.
func (s *Service) Session(user models.User) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[user.ID]; ok {
		return sess
	}

	sess := &Session{
		user:    user,
		remote:  s.remote,
		forests: make(map[int64]commenttree.Forest),
		convs:   conversations.NewRegistry(),
		notifs:  notifications.NewRouter(),
	}
	s.sessions[user.ID] = sess

	return sess
}

// mapRemote — маппинг ошибок remote -> service c логированием.
// Уровень Warn для ожидаемых отказов, Error — для недоступности/прочего.
func mapRemote(lg *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, remote.ErrNotFound):
		lg.Warn("remote not found")
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, remote.ErrUnauthenticated):
		lg.Warn("remote unauthenticated")
		return fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	case errors.Is(err, remote.ErrInvalidArgument):
		lg.Warn("remote rejected request")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	case errors.Is(err, remote.ErrUnavailable):
		lg.Error("remote unavailable", "err", err)
		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	default:
		lg.Error("remote error", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}
}
