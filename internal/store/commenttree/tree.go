// Package commenttree — иммутабельный лес комментариев одного объявления.
//
// Лес — значение: операции возвращают новый лес, перестраивая только путь от
// корня к изменённому узлу; остальные узлы разделяются со старым значением.
// Узлы никогда не удаляются и не редактируются — только дописываются Replies.
// Пакет не синхронизирован: сериализацию вызовов обеспечивает владелец
// (сессия фасада).
package commenttree

import "github.com/pribylovaa/go-classifieds-discussion/internal/models"

// Forest — упорядоченный набор корневых комментариев.
type Forest []models.Comment

// AppendRoot возвращает лес с новым корневым комментарием в конце.
// Исходный лес не модифицируется.
func AppendRoot(f Forest, c models.Comment) Forest {
	out := make(Forest, 0, len(f)+1)
	out = append(out, f...)
	out = append(out, c)
	return out
}

// InsertReply возвращает лес, в котором reply дописан последним в Replies
// узла с id == parentID, где бы тот ни находился. Если такого узла нет,
// возвращается исходный лес без изменений (тихий no-op: валидность id —
// ответственность вызывающего, получившего его из прежней загрузки).
func InsertReply(f Forest, parentID int64, reply models.Comment) Forest {
	out, ok := insertReply(f, parentID, reply)
	if !ok {
		return f
	}
	return Forest(out)
}

// insertReply — рекурсивный обход в глубину с сохранением порядка братьев.
// Перестраивает срез только на пути к найденному родителю.
func insertReply(nodes []models.Comment, parentID int64, reply models.Comment) ([]models.Comment, bool) {
	for i := range nodes {
		if nodes[i].ID == parentID {
			out := make([]models.Comment, len(nodes))
			copy(out, nodes)

			replies := make([]models.Comment, 0, len(nodes[i].Replies)+1)
			replies = append(replies, nodes[i].Replies...)
			replies = append(replies, reply)
			out[i].Replies = replies

			return out, true
		}

		if len(nodes[i].Replies) == 0 {
			continue
		}

		if updated, ok := insertReply(nodes[i].Replies, parentID, reply); ok {
			out := make([]models.Comment, len(nodes))
			copy(out, nodes)
			out[i].Replies = updated

			return out, true
		}
	}

	return nil, false
}

// Find возвращает узел с данным id (обход в глубину, родитель раньше детей).
func Find(f Forest, id int64) (models.Comment, bool) {
	return find(f, id)
}

func find(nodes []models.Comment, id int64) (models.Comment, bool) {
	for i := range nodes {
		if nodes[i].ID == id {
			return nodes[i], true
		}
		if c, ok := find(nodes[i].Replies, id); ok {
			return c, true
		}
	}

	return models.Comment{}, false
}

// Contains сообщает, есть ли узел с данным id где-либо в лесу.
func Contains(f Forest, id int64) bool {
	_, ok := find(f, id)
	return ok
}

// Size — общее количество узлов леса.
func Size(f Forest) int {
	return size(f)
}

func size(nodes []models.Comment) int {
	n := len(nodes)
	for i := range nodes {
		n += size(nodes[i].Replies)
	}
	return n
}
