package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

type postThoughtRequest struct {
	Content string `json:"content"`
}

type thoughtResponse struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"author_id"`
	Content      string    `json:"content"`
	Created      time.Time `json:"created_at"`
	AuthorName   string    `json:"author_name,omitempty"`
	AuthorHandle string    `json:"author_username,omitempty"`
	AuthorAvatar string    `json:"author_avatar,omitempty"`
}

func toThoughtResponse(t domain.Thought) thoughtResponse {
	return thoughtResponse{
		ID:       t.ID,
		AuthorID: t.AuthorID,
		Content:  t.Content,
		Created:  t.Created,
	}
}

func toFeedResponse(thoughts []domain.ThoughtWithAuthor) []thoughtResponse {
	out := make([]thoughtResponse, 0, len(thoughts))
	for _, t := range thoughts {
		resp := toThoughtResponse(t.Thought)
		resp.AuthorName = t.AuthorName
		resp.AuthorHandle = t.AuthorHandle
		resp.AuthorAvatar = t.AuthorAvatar
		out = append(out, resp)
	}
	return out
}

// limitParam reads ?limit= and leaves bounds checking to the service.
func limitParam(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return limit
}

func PostThought(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		var req postThoughtRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed body"})
			return
		}

		thought, err := handler.service.PostThought(r.Context(), s.ProfileID, req.Content)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toThoughtResponse(thought))
	}
}

func DeleteThought(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())
		id := chi.URLParam(r, "id")

		if err := handler.service.DeleteThought(r.Context(), id, s.ProfileID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}

func Feed(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		thoughts, err := handler.service.Feed(r.Context(), limitParam(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toFeedResponse(thoughts))
	}
}
