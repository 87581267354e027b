package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountAvatarRoutes(r chi.Router) {
	r.Get("/avatars/{ref}", GetAvatar(h))
}

func GetAvatar(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := chi.URLParam(r, "ref")
		content, err := handler.service.Avatar(r.Context(), ref)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", http.DetectContentType(content))
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		w.Write(content)
	}
}
