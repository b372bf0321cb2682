// Package models содержит доменные сущности discussion-слоя.
//
// Формат JSON — camelCase: он зафиксирован wire-форматом discussion-service
// и ожиданиями фронтенда, которые этот шлюз обслуживает.
package models

import "time"

// User — ссылка на пользователя (автор комментария, участник чата).
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Comment — узел дерева комментариев объявления.
// Важно:
//   - ID — серверный, непрозрачный для клиента;
//   - ParentCommentID == nil — корень леса;
//   - Replies — прямые дети в порядке прихода (порядок сервера не пересортировывается);
//   - после вставки узел не мутируется, кроме дописывания новых Replies.
type Comment struct {
	ID              int64     `json:"id"`
	Text            string    `json:"text"`
	Author          User      `json:"author"`
	ParentCommentID *int64    `json:"parentCommentId,omitempty"`
	Replies         []Comment `json:"replies"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Message — одно сообщение внутри беседы (adID + собеседник).
type Message struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	SenderID  int64     `json:"senderId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Conversation — сводка беседы для списка чатов пользователя.
type Conversation struct {
	AdID        int64     `json:"adId"`
	Participant User      `json:"participant"`
	LastMessage *Message  `json:"lastMessage,omitempty"`
	UnreadCount int       `json:"unreadCount"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Notification — одностороннее событие «есть новая активность».
// RelatedAdID + SenderID детерминированно задают беседу, которую оно открывает.
type Notification struct {
	ID             int64     `json:"id"`
	Message        string    `json:"message"`
	RelatedAdID    int64     `json:"relatedAdId"`
	SenderID       int64     `json:"senderId"`
	SenderUsername string    `json:"senderUsername"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}
