package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pribylovaa/go-classifieds-discussion/internal/models"
)

// Notifications — GET /discussion-service/notifications.
func (c *HTTPClient) Notifications(ctx context.Context) ([]models.Notification, error) {
	const op = "remote/notifications/Notifications"

	var out []models.Notification
	if err := c.do(ctx, http.MethodGet, "/discussion-service/notifications", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// MarkNotificationRead — PUT /discussion-service/notifications/{id}/read.
// Контракт сервера идемпотентный: повторная отметка уже прочитанного — no-op.
func (c *HTTPClient) MarkNotificationRead(ctx context.Context, id int64) error {
	const op = "remote/notifications/MarkNotificationRead"

	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/discussion-service/notifications/%d/read", id), nil, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CreateNotification — POST /discussion-service/notifications.
func (c *HTTPClient) CreateNotification(ctx context.Context, in CreateNotificationInput) error {
	const op = "remote/notifications/CreateNotification"

	if err := c.do(ctx, http.MethodPost, "/discussion-service/notifications", nil, in, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
