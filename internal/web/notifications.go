package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

type notificationResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	Kind       string    `json:"kind"`
	SubjectRef string    `json:"subject_ref"`
	IsRead     bool      `json:"is_read"`
	Created    time.Time `json:"created_at"`
}

func Notifications(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		list, err := handler.service.Notifications(r.Context(), s.ProfileID, limitParam(r))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]notificationResponse, 0, len(list))
		for _, n := range list {
			out = append(out, toNotificationResponse(n))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toNotificationResponse(n domain.Notification) notificationResponse {
	return notificationResponse{
		ID:         n.ID,
		SenderID:   n.SenderID,
		Kind:       n.Kind,
		SubjectRef: n.SubjectRef,
		IsRead:     n.IsRead,
		Created:    n.Created,
	}
}

func MarkNotificationRead(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())
		id := chi.URLParam(r, "id")

		if err := handler.service.MarkNotificationRead(r.Context(), s.ProfileID, id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}

func MarkAllNotificationsRead(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		if err := handler.service.MarkAllNotificationsRead(r.Context(), s.ProfileID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}

func UnreadCount(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		count, err := handler.service.UnreadCount(r.Context(), s.ProfileID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"unread": count})
	}
}
