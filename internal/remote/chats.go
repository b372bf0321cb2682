package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pribylovaa/go-classifieds-discussion/internal/models"
)

// sendMessageRequest — тело POST /discussion-service/chats/{adId}.
// Поле называется buyerId по историческому контракту discussion-service:
// это id собеседника, не обязательно покупателя.
type sendMessageRequest struct {
	BuyerID int64  `json:"buyerId"`
	Text    string `json:"text"`
}

// Messages — GET /discussion-service/chats/{adId}?participantId=.
func (c *HTTPClient) Messages(ctx context.Context, adID, participantID int64) ([]models.Message, error) {
	const op = "remote/chats/Messages"

	q := url.Values{}
	q.Set("participantId", strconv.FormatInt(participantID, 10))

	var out []models.Message
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/discussion-service/chats/%d", adID), q, nil, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// SendMessage — POST /discussion-service/chats/{adId}.
func (c *HTTPClient) SendMessage(ctx context.Context, adID, participantID int64, text string) (*models.Message, error) {
	const op = "remote/chats/SendMessage"

	var out models.Message
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/discussion-service/chats/%d", adID), nil, sendMessageRequest{BuyerID: participantID, Text: text}, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// Conversations — GET /discussion-service/chats.
func (c *HTTPClient) Conversations(ctx context.Context) ([]models.Conversation, error) {
	const op = "remote/chats/Conversations"

	var out []models.Conversation
	if err := c.do(ctx, http.MethodGet, "/discussion-service/chats", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
