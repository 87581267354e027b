package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Follow(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())
		handle := chi.URLParam(r, "handle")

		if err := handler.service.Follow(r.Context(), s.ProfileID, handle); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}

func Unfollow(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())
		handle := chi.URLParam(r, "handle")

		if err := handler.service.Unfollow(r.Context(), s.ProfileID, handle); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}

func Followers(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := handler.service.Followers(r.Context(), chi.URLParam(r, "handle"), limitParam(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileListResponse(profiles))
	}
}

func Following(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := handler.service.Following(r.Context(), chi.URLParam(r, "handle"), limitParam(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileListResponse(profiles))
	}
}
