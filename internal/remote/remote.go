// Package remote — клиент удалённого discussion-service.
//
// Интерфейс Discussion описывает весь потребляемый REST-контракт; единственная
// реализация — HTTPClient. Ошибки уровня транспорта/статусов нормализуются
// в сентинелы этого пакета, сервисный слой маппит их дальше.
package remote

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-classifieds-discussion/internal/models"
)

var (
	// ErrNotFound — объявление/беседа/уведомление отсутствует на сервере.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated — нет/просрочен bearer-токен (401/403 апстрима).
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidArgument — апстрим отверг запрос как некорректный (400).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnavailable — транспортная ошибка или 5xx апстрима.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrInternal — неожиданный ответ апстрима.
	ErrInternal = errors.New("internal")
)

// CreateNotificationInput — тело POST /discussion-service/notifications.
type CreateNotificationInput struct {
	RecipientID    int64  `json:"recipientId"`
	Message        string `json:"message"`
	RelatedAdID    int64  `json:"relatedAdId"`
	SenderUsername string `json:"senderUsername"`
}

// Discussion — потребляемый REST-контракт discussion-service.
// Все вызовы уважают deadline контекста; bearer/request id передаются
// через контекст (internal/remote/transport).
type Discussion interface {
	// Comments — упорядоченный лес комментариев объявления.
	Comments(ctx context.Context, adID int64) ([]models.Comment, error)
	// CreateComment — создание корневого комментария (parentID == nil) или ответа.
	CreateComment(ctx context.Context, adID int64, text string, parentID *int64) (*models.Comment, error)

	// Messages — упорядоченная история беседы (adID + собеседник).
	Messages(ctx context.Context, adID, participantID int64) ([]models.Message, error)
	// SendMessage — отправка сообщения собеседнику в рамках объявления.
	SendMessage(ctx context.Context, adID, participantID int64, text string) (*models.Message, error)
	// Conversations — сводки всех бесед текущего пользователя.
	Conversations(ctx context.Context) ([]models.Conversation, error)

	// Notifications — упорядоченный список уведомлений текущего пользователя.
	Notifications(ctx context.Context) ([]models.Notification, error)
	// MarkNotificationRead — идемпотентная отметка «прочитано».
	MarkNotificationRead(ctx context.Context, id int64) error
	// CreateNotification — создание уведомления получателю (best-effort у вызывающего).
	CreateNotification(ctx context.Context, in CreateNotificationInput) error
}
