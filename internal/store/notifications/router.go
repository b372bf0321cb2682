// Package notifications — маршрутизатор уведомлений.
//
// Хранит упорядоченный список входящих уведомлений с состоянием
// прочитано/непрочитано и проецирует уведомление в цель навигации
// (объявление + собеседник). Беседу маршрутизатор не материализует —
// только сообщает ключи фасаду. Пакет не синхронизирован: сериализацию
// обеспечивает владелец.
package notifications

import "github.com/pribylovaa/go-classifieds-discussion/internal/models"

// Target — цель навигации, в которую разрешается уведомление.
type Target struct {
	AdID          int64
	ParticipantID int64
}

// Router — список уведомлений текущего пользователя.
type Router struct {
	items []models.Notification
}

// NewRouter создаёт пустой маршрутизатор.
func NewRouter() *Router {
	return &Router{}
}

// Reset заменяет список серверной копией (полная перезагрузка).
// Инкрементальных патчей нет: счётчик непрочитанных пересчитывается
// на каждой загрузке, а не корректируется по событиям.
func (r *Router) Reset(items []models.Notification) {
	out := make([]models.Notification, len(items))
	copy(out, items)
	r.items = out
}

// All возвращает копию списка в порядке прихода.
func (r *Router) All() []models.Notification {
	out := make([]models.Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Unread — количество непрочитанных; всегда полный пересчёт.
func (r *Router) Unread() int {
	n := 0
	for i := range r.items {
		if !r.items[i].IsRead {
			n++
		}
	}
	return n
}

// ByID возвращает уведомление по id.
func (r *Router) ByID(id int64) (models.Notification, bool) {
	for i := range r.items {
		if r.items[i].ID == id {
			return r.items[i], true
		}
	}
	return models.Notification{}, false
}

// MarkRead переводит уведомление в терминальное состояние «прочитано».
// Вызывается только после успешной серверной отметки; повторный вызов —
// безвредный no-op.
func (r *Router) MarkRead(id int64) {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].IsRead = true
			return
		}
	}
}

// Resolve — чистая проекция уведомления в цель навигации.
func Resolve(n models.Notification) Target {
	return Target{AdID: n.RelatedAdID, ParticipantID: n.SenderID}
}
