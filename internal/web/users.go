package web

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
	"github.com/iamanderson-dev/thoughts-app/internal/validate"
)

type createUserRequest struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"email_confirmed"`
	Name           string `json:"name"`
	Username       string `json:"username"`
}

type profileResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Handle    string `json:"username"`
	Email     string `json:"email"`
	Bio       string `json:"bio,omitempty"`
	AvatarRef string `json:"profile_image,omitempty"`
}

func toProfileListResponse(profiles []domain.Profile) []profileResponse {
	out := make([]profileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toProfileResponse(p))
	}
	return out
}

func toProfileResponse(p domain.Profile) profileResponse {
	return profileResponse{
		ID:        p.ID,
		Name:      p.DisplayName,
		Handle:    p.Handle,
		Email:     p.Email,
		Bio:       p.Bio,
		AvatarRef: p.AvatarRef,
	}
}

// CreateUser is the provider-facing endpoint: the auth provider calls it
// with its service credential whenever an account is created or confirmed.
// It is idempotent; replays return the existing profile with 200.
func CreateUser(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !handler.serviceAuthorized(r) {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid service credential"})
			return
		}

		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed body"})
			return
		}
		if req.ID == "" || req.Email == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id and email are required"})
			return
		}
		if err := validate.Email(req.Email); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed email"})
			return
		}

		profile, created, err := handler.service.EnsureProfile(r.Context(), &domain.Principal{
			ID:             req.ID,
			Email:          req.Email,
			EmailConfirmed: req.EmailConfirmed,
			Name:           req.Name,
			Handle:         req.Username,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, toProfileResponse(profile))
	}
}

func (h *Handler) serviceAuthorized(r *http.Request) bool {
	token, ok := cutBearer(r)
	if !ok || h.Config.ServiceToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.Config.ServiceToken)) == 1
}

func cutBearer(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return "", false
	}
	return header[len(prefix):], true
}
