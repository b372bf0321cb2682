package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-classifieds-discussion/internal/errors"
	"github.com/pribylovaa/go-classifieds-discussion/internal/models"
)

// notificationsResponse — список + счётчик непрочитанных одной загрузкой.
type notificationsResponse struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

// openNotificationResponse — цель навигации, в которую разрешилось уведомление.
type openNotificationResponse struct {
	AdID          int64 `json:"adId"`
	ParticipantID int64 `json:"participantId"`
}

func (h *Handlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	sess, err := h.currentSession(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, unread, err := sess.Notifications(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, notificationsResponse{
		Notifications: items,
		UnreadCount:   unread,
	})
}

func (h *Handlers) OpenNotification(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	sess, err := h.currentSession(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	target, err := sess.OpenFromNotification(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, openNotificationResponse{
		AdID:          target.AdID,
		ParticipantID: target.ParticipantID,
	})
}
