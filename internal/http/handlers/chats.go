package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-classifieds-discussion/internal/errors"
)

// sendMessageRequest — тело POST /chats/{ad_id}.
type sendMessageRequest struct {
	ParticipantID int64  `json:"participantId"`
	Text          string `json:"text"`
}

func (h *Handlers) ListConversations(w http.ResponseWriter, r *http.Request) {
	sess, err := h.currentSession(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out, err := sess.Conversations(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) OpenConversation(w http.ResponseWriter, r *http.Request) {
	adID, err := strconv.ParseInt(chi.URLParam(r, "ad_id"), 10, 64)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	participantID, err := strconv.ParseInt(r.URL.Query().Get("participant_id"), 10, 64)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	sess, err := h.currentSession(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	msgs, err := sess.OpenConversation(r.Context(), adID, participantID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, msgs)
}

func (h *Handlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	adID, err := strconv.ParseInt(chi.URLParam(r, "ad_id"), 10, 64)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var in sendMessageRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	sess, err := h.currentSession(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	sent, err := sess.SendMessage(r.Context(), adID, in.ParticipantID, in.Text)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, sent)
}
