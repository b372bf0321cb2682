package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-classifieds-discussion/internal/errors"
)

// postCommentRequest — тело POST /ads/{ad_id}/comments.
// parentCommentId задан — ответ, пуст — корневой комментарий.
type postCommentRequest struct {
	Text            string `json:"text"`
	ParentCommentID *int64 `json:"parentCommentId,omitempty"`
}

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	adID, err := strconv.ParseInt(chi.URLParam(r, "ad_id"), 10, 64)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	sess, err := h.currentSession(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	forest, err := sess.Comments(r.Context(), adID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, forest)
}

func (h *Handlers) PostComment(w http.ResponseWriter, r *http.Request) {
	adID, err := strconv.ParseInt(chi.URLParam(r, "ad_id"), 10, 64)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var in postCommentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	sess, err := h.currentSession(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if in.ParentCommentID != nil {
		created, err := sess.PostReply(r.Context(), adID, *in.ParentCommentID, in.Text)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
		return
	}

	created, err := sess.PostComment(r.Context(), adID, in.Text)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
