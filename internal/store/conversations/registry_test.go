package conversations

// Тесты реестра бесед (internal/store/conversations/registry.go).
//
//  Проверяем:
//  - Replace устанавливает серверную копию, сохраняя порядок;
//  - Append дописывает строго в конец (порядок прихода = порядок показа);
//  - журналы разных бесед независимы;
//  - Messages возвращает копию, не подверженную мутациям вызывающего.

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-classifieds-discussion/internal/models"
)

func msg(id, senderID int64, text string) models.Message {
	return models.Message{
		ID:        id,
		Text:      text,
		SenderID:  senderID,
		CreatedAt: time.Now().UTC(),
	}
}

func TestRegistry_ReplaceAndMessages(t *testing.T) {
	r := NewRegistry()
	k := Key{AdID: 5, ParticipantID: 9}

	r.Replace(k, []models.Message{msg(1, 9, "a"), msg(2, 7, "b")})

	out := r.Messages(k)
	require.Len(t, out, 2)
	require.Equal(t, int64(1), out[0].ID)
	require.Equal(t, int64(2), out[1].ID)
	require.True(t, r.Known(k))
}

func TestRegistry_AppendKeepsServerOrder(t *testing.T) {
	r := NewRegistry()
	k := Key{AdID: 5, ParticipantID: 9}

	r.Replace(k, []models.Message{msg(1, 9, "hello")})
	r.Append(k, msg(2, 7, "hi"))
	r.Append(k, msg(3, 9, "how are you"))

	out := r.Messages(k)
	require.Len(t, out, 3)
	// новое сообщение всегда строго после всех ранее загруженных
	require.Equal(t, int64(1), out[0].ID)
	require.Equal(t, int64(2), out[1].ID)
	require.Equal(t, int64(3), out[2].ID)
}

func TestRegistry_AppendToUnknownConversation(t *testing.T) {
	r := NewRegistry()
	k := Key{AdID: 5, ParticipantID: 9}

	require.False(t, r.Known(k))

	r.Append(k, msg(1, 7, "hi"))

	require.Equal(t, 1, r.Len(k))
	require.Equal(t, "hi", r.Messages(k)[0].Text)
}

func TestRegistry_KeysAreIndependent(t *testing.T) {
	r := NewRegistry()
	k1 := Key{AdID: 5, ParticipantID: 9}
	k2 := Key{AdID: 5, ParticipantID: 7} // то же объявление, другой собеседник
	k3 := Key{AdID: 6, ParticipantID: 9} // тот же собеседник, другое объявление

	r.Append(k1, msg(1, 9, "a"))
	r.Append(k2, msg(2, 7, "b"))

	require.Equal(t, 1, r.Len(k1))
	require.Equal(t, 1, r.Len(k2))
	require.Equal(t, 0, r.Len(k3))
}

func TestRegistry_MessagesReturnsCopy(t *testing.T) {
	r := NewRegistry()
	k := Key{AdID: 1, ParticipantID: 2}

	r.Replace(k, []models.Message{msg(1, 2, "a")})

	out := r.Messages(k)
	out[0].Text = "mutated"

	require.Equal(t, "a", r.Messages(k)[0].Text)
}
