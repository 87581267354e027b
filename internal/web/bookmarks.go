package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func AddBookmark(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toggleBookmark(handler, w, r, true)
	}
}

func RemoveBookmark(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toggleBookmark(handler, w, r, false)
	}
}

// toggleBookmark drives the bookmark toward the requested state. The
// service toggles, so a no-op request (bookmarking twice) is answered
// with the state already in place.
func toggleBookmark(handler *Handler, w http.ResponseWriter, r *http.Request, want bool) {
	s, _ := GetSession(r.Context())
	thoughtID := chi.URLParam(r, "id")

	bookmarked, err := handler.service.ToggleBookmark(r.Context(), s.ProfileID, thoughtID)
	if err != nil {
		writeError(w, err)
		return
	}
	if bookmarked != want {
		// Toggled past the requested state: toggle back.
		bookmarked, err = handler.service.ToggleBookmark(r.Context(), s.ProfileID, thoughtID)
		if err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]bool{"bookmarked": bookmarked})
}

func Bookmarks(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		thoughts, err := handler.service.Bookmarks(r.Context(), s.ProfileID, limitParam(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toFeedResponse(thoughts))
	}
}
