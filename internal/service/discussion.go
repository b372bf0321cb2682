package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pribylovaa/go-classifieds-discussion/internal/models"
	"github.com/pribylovaa/go-classifieds-discussion/internal/remote"
	"github.com/pribylovaa/go-classifieds-discussion/internal/store/commenttree"
	"github.com/pribylovaa/go-classifieds-discussion/internal/store/conversations"
	"github.com/pribylovaa/go-classifieds-discussion/internal/store/notifications"
	"github.com/pribylovaa/go-classifieds-discussion/pkg/log"
)

// Session — discussion-модель одного пользователя.
//
// Мьютекс сериализует операции: никакие две вставки не гонятся за один
// снапшот леса/журнала. Дедупликации и отмены перекрывающихся действий нет —
// последний ответ перезаписывает состояние (last-write-wins).
type Session struct {
	user   models.User
	remote remote.Discussion

	mu      sync.Mutex
	forests map[int64]commenttree.Forest
	convs   *conversations.Registry
	notifs  *notifications.Router
}

// User — владелец сессии.
func (s *Session) User() models.User { return s.user }

// Comments загружает лес комментариев объявления, устанавливает его
// снапшотом сессии и возвращает в серверном порядке.
func (s *Session) Comments(ctx context.Context, adID int64) ([]models.Comment, error) {
	const op = "service/discussion/Comments"

	lg := log.From(ctx).With("op", op, "ad_id", adID)

	forest, err := s.remote.Comments(ctx, adID)
	if err != nil {
		return nil, mapRemote(lg, op, err)
	}

	s.mu.Lock()
	s.forests[adID] = commenttree.Forest(forest)
	snapshot := s.forests[adID]
	s.mu.Unlock()

	return snapshot, nil
}

// PostComment — корневой комментарий: валидация -> удалённое создание ->
// дозапись корня. При ошибке удалённого вызова локальная модель не меняется.
func (s *Session) PostComment(ctx context.Context, adID int64, text string) (*models.Comment, error) {
	const op = "service/discussion/PostComment"

	lg := log.From(ctx).With("op", op, "ad_id", adID, "user_id", s.user.ID)

	text = strings.TrimSpace(text)
	if text == "" {
		lg.Warn("invalid argument: empty text")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	created, err := s.remote.CreateComment(ctx, adID, text, nil)
	if err != nil {
		return nil, mapRemote(lg, op, err)
	}

	s.mu.Lock()
	s.forests[adID] = commenttree.AppendRoot(s.forests[adID], *created)
	s.mu.Unlock()

	return created, nil
}

// PostReply — ответ на существующий комментарий: валидация -> удалённое
// создание с parentCommentId -> графт в лес. Отсутствующий в снапшоте
// родитель — тихий no-op вставки (сервер комментарий уже принял).
func (s *Session) PostReply(ctx context.Context, adID, parentID int64, text string) (*models.Comment, error) {
	const op = "service/discussion/PostReply"

	lg := log.From(ctx).With("op", op, "ad_id", adID, "parent_id", parentID, "user_id", s.user.ID)

	text = strings.TrimSpace(text)
	if text == "" {
		lg.Warn("invalid argument: empty text")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	created, err := s.remote.CreateComment(ctx, adID, text, &parentID)
	if err != nil {
		return nil, mapRemote(lg, op, err)
	}

	s.mu.Lock()
	s.forests[adID] = commenttree.InsertReply(s.forests[adID], parentID, *created)
	s.mu.Unlock()

	return created, nil
}

// Forest — текущий снапшот леса объявления (без сетевого вызова).
func (s *Session) Forest(adID int64) []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.forests[adID]
}

// OpenConversation загружает историю беседы с собеседником по объявлению.
// Гард самочата срабатывает до любого сетевого вызова.
func (s *Session) OpenConversation(ctx context.Context, adID, participantID int64) ([]models.Message, error) {
	const op = "service/discussion/OpenConversation"

	lg := log.From(ctx).With("op", op, "ad_id", adID, "participant_id", participantID, "user_id", s.user.ID)

	if participantID == s.user.ID {
		lg.Warn("self chat rejected")
		return nil, fmt.Errorf("%s: %w", op, ErrSelfChat)
	}

	msgs, err := s.remote.Messages(ctx, adID, participantID)
	if err != nil {
		return nil, mapRemote(lg, op, err)
	}

	key := conversations.Key{AdID: adID, ParticipantID: participantID}

	s.mu.Lock()
	s.convs.Replace(key, msgs)
	out := s.convs.Messages(key)
	s.mu.Unlock()

	return out, nil
}

// SendMessage отправляет сообщение и дописывает серверную копию в журнал.
// Побочный эффект — уведомление получателю; оно best-effort: отказ
// логируется и никогда не откатывает и не блокирует отправку сообщения.
func (s *Session) SendMessage(ctx context.Context, adID, participantID int64, text string) (*models.Message, error) {
	const op = "service/discussion/SendMessage"

	lg := log.From(ctx).With("op", op, "ad_id", adID, "participant_id", participantID, "user_id", s.user.ID)

	text = strings.TrimSpace(text)
	if text == "" {
		lg.Warn("invalid argument: empty text")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if participantID == s.user.ID {
		lg.Warn("self chat rejected")
		return nil, fmt.Errorf("%s: %w", op, ErrSelfChat)
	}

	sent, err := s.remote.SendMessage(ctx, adID, participantID, text)
	if err != nil {
		return nil, mapRemote(lg, op, err)
	}

	s.mu.Lock()
	s.convs.Append(conversations.Key{AdID: adID, ParticipantID: participantID}, *sent)
	s.mu.Unlock()

	// Уведомление — at-most-once, best-effort: результат сообщения от него
	// не зависит.
	notifyErr := s.remote.CreateNotification(ctx, remote.CreateNotificationInput{
		RecipientID:    participantID,
		Message:        fmt.Sprintf("Новое сообщение от %s", s.user.Username),
		RelatedAdID:    adID,
		SenderUsername: s.user.Username,
	})
	if notifyErr != nil {
		lg.Warn("notification dispatch failed", "err", notifyErr)
	}

	return sent, nil
}

// Conversation — текущий журнал беседы (без сетевого вызова).
func (s *Session) Conversation(adID, participantID int64) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.convs.Messages(conversations.Key{AdID: adID, ParticipantID: participantID})
}

// Conversations — сводки всех бесед пользователя (серверный порядок).
func (s *Session) Conversations(ctx context.Context) ([]models.Conversation, error) {
	const op = "service/discussion/Conversations"

	lg := log.From(ctx).With("op", op, "user_id", s.user.ID)

	out, err := s.remote.Conversations(ctx)
	if err != nil {
		return nil, mapRemote(lg, op, err)
	}

	return out, nil
}

// Notifications перезагружает список уведомлений и возвращает его вместе со
// счётчиком непрочитанных. Счётчик всегда пересчитывается по списку.
func (s *Session) Notifications(ctx context.Context) ([]models.Notification, int, error) {
	const op = "service/discussion/Notifications"

	lg := log.From(ctx).With("op", op, "user_id", s.user.ID)

	items, err := s.remote.Notifications(ctx)
	if err != nil {
		return nil, 0, mapRemote(lg, op, err)
	}

	s.mu.Lock()
	s.notifs.Reset(items)
	out := s.notifs.All()
	unread := s.notifs.Unread()
	s.mu.Unlock()

	return out, unread, nil
}

// OpenFromNotification потребляет уведомление: best-effort отметка
// «прочитано» и разрешение в цель навигации. Отказ отметки логируется и не
// блокирует навигацию; локальный флаг ставится только после успеха сервера.
func (s *Session) OpenFromNotification(ctx context.Context, id int64) (notifications.Target, error) {
	const op = "service/discussion/OpenFromNotification"

	lg := log.From(ctx).With("op", op, "notification_id", id, "user_id", s.user.ID)

	s.mu.Lock()
	n, ok := s.notifs.ByID(id)
	s.mu.Unlock()

	if !ok {
		// Список ещё не загружался в этой сессии (или устарел) — перечитываем.
		items, err := s.remote.Notifications(ctx)
		if err != nil {
			return notifications.Target{}, mapRemote(lg, op, err)
		}

		s.mu.Lock()
		s.notifs.Reset(items)
		n, ok = s.notifs.ByID(id)
		s.mu.Unlock()

		if !ok {
			lg.Warn("notification not found")
			return notifications.Target{}, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
	}

	if err := s.remote.MarkNotificationRead(ctx, id); err != nil {
		lg.Warn("mark read failed", "err", err)
	} else {
		s.mu.Lock()
		s.notifs.MarkRead(id)
		s.mu.Unlock()
	}

	return notifications.Resolve(n), nil
}
