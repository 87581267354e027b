package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// MaxAvatarMemory bounds the multipart form buffer for avatar uploads.
const MaxAvatarMemory = 4 << 20

type profileViewResponse struct {
	profileResponse
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
}

type updateProfileRequest struct {
	Name   string `json:"name"`
	Handle string `json:"username"`
	Bio    string `json:"bio"`
}

func GetProfile(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := handler.service.GetProfile(r.Context(), chi.URLParam(r, "handle"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, profileViewResponse{
			profileResponse: toProfileResponse(view.Profile),
			FollowerCount:   view.FollowerCount,
			FollowingCount:  view.FollowingCount,
		})
	}
}

func ProfileThoughts(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handle := chi.URLParam(r, "handle")
		thoughts, err := handler.service.ProfileThoughts(r.Context(), handle, limitParam(r))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]thoughtResponse, 0, len(thoughts))
		for _, t := range thoughts {
			out = append(out, toThoughtResponse(t))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func UpdateProfile(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed body"})
			return
		}

		profile, err := handler.service.UpdateProfile(r.Context(), s.ProfileID, req.Name, req.Handle, req.Bio)
		if err != nil {
			writeError(w, err)
			return
		}

		// The handle may have changed; refresh the session so later
		// requests see it.
		session := handler.SessionManager.Load(r)
		err = session.PutObject(w, SessionKey, Session{
			ProfileID: profile.ID,
			Handle:    profile.Handle,
			Name:      profile.DisplayName,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to refresh session after profile update")
		}
		writeJSON(w, http.StatusOK, toProfileResponse(profile))
	}
}

func UploadAvatar(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		if err := r.ParseMultipartForm(MaxAvatarMemory); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed multipart body"})
			return
		}

		file, _, err := r.FormFile("avatar")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing avatar file"})
			return
		}
		defer file.Close()

		ref, err := handler.service.SaveAvatar(r.Context(), s.ProfileID, file)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"profile_image": ref})
	}
}
