package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pribylovaa/go-classifieds-discussion/internal/models"
)

// createCommentRequest — тело POST /discussion-service/api/ads/{adId}/comments.
type createCommentRequest struct {
	Text            string `json:"text"`
	ParentCommentID *int64 `json:"parentCommentId,omitempty"`
}

// Comments — GET /discussion-service/api/ads/{adId}/comments.
// Порядок корней и ответов — серверный, клиент его не пересортировывает.
func (c *HTTPClient) Comments(ctx context.Context, adID int64) ([]models.Comment, error) {
	const op = "remote/comments/Comments"

	var out []models.Comment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/discussion-service/api/ads/%d/comments", adID), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// CreateComment — POST /discussion-service/api/ads/{adId}/comments.
// parentID == nil — корневой комментарий, иначе ответ на parentID.
func (c *HTTPClient) CreateComment(ctx context.Context, adID int64, text string, parentID *int64) (*models.Comment, error) {
	const op = "remote/comments/CreateComment"

	body := createCommentRequest{Text: text, ParentCommentID: parentID}

	var out models.Comment
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/discussion-service/api/ads/%d/comments", adID), nil, body, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}
