// Package conversations — реестр бесед пользователя.
//
// Беседа идентифицируется парой (adID, собеседник); реестр единолично владеет
// упорядоченным журналом сообщений каждой беседы. Журнал append-only: порядок
// сервера — источник истины, клиентская пересортировка по времени не
// выполняется. Пакет не синхронизирован: сериализацию обеспечивает владелец.
package conversations

import "github.com/pribylovaa/go-classifieds-discussion/internal/models"

// Key — идентификатор беседы: объявление + собеседник.
type Key struct {
	AdID          int64
	ParticipantID int64
}

// Registry — журналы сообщений по ключу беседы.
type Registry struct {
	logs map[Key][]models.Message
}

// NewRegistry создаёт пустой реестр.
func NewRegistry() *Registry {
	return &Registry{logs: make(map[Key][]models.Message)}
}

// Replace устанавливает журнал беседы в серверную копию (загрузка истории).
// Порядок msgs сохраняется как есть.
func (r *Registry) Replace(k Key, msgs []models.Message) {
	log := make([]models.Message, len(msgs))
	copy(log, msgs)
	r.logs[k] = log
}

// Append дописывает подтверждённое сервером сообщение в конец журнала.
// Вызывается только после успешного удалённого создания: локальный журнал
// никогда не содержит неподтверждённых сообщений.
func (r *Registry) Append(k Key, msg models.Message) {
	r.logs[k] = append(r.logs[k], msg)
}

// Messages возвращает копию журнала беседы в порядке прихода.
func (r *Registry) Messages(k Key) []models.Message {
	log := r.logs[k]
	out := make([]models.Message, len(log))
	copy(out, log)
	return out
}

// Len — длина журнала беседы.
func (r *Registry) Len(k Key) int {
	return len(r.logs[k])
}

// Known сообщает, загружалась ли беседа в этой сессии.
func (r *Registry) Known(k Key) bool {
	_, ok := r.logs[k]
	return ok
}
