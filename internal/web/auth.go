package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	SessionKey = "profile"
	stateKey   = "oauth_state"
)

type Session struct {
	ProfileID string
	Handle    string
	Name      string
}

type key struct{}

func GetSession(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}

func AuthenticatedMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := GetSession(r.Context())
			if ok {
				h.ServeHTTP(w, r)
				return
			}
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		})
	}
}

// SessionMiddleware resolves the caller to a profile and puts it on the
// request context. Cookie sessions are checked first; a bearer token from
// the auth provider works too, in which case the principal is reconciled
// on every request and no cookie is set.
func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			zero := Session{}
			session := handler.SessionManager.Load(r)
			var s Session
			err := session.GetObject(SessionKey, &s)
			if s != zero && err == nil {
				r = r.WithContext(context.WithValue(r.Context(), key{}, s))
				h.ServeHTTP(w, r)
				return
			}

			if s, ok := handler.bearerSession(r); ok {
				r = r.WithContext(context.WithValue(r.Context(), key{}, s))
			}
			h.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) bearerSession(r *http.Request) (Session, bool) {
	token, ok := cutBearer(r)
	if !ok {
		return Session{}, false
	}

	principal, err := h.verifier.Verify(token)
	if err != nil {
		log.Debug().Err(err).Msg("rejected bearer token")
		return Session{}, false
	}

	profile, _, err := h.service.EnsureProfile(r.Context(), principal)
	if err != nil {
		log.Error().Err(err).Str("principal", principal.ID).Msg("failed to reconcile bearer principal")
		return Session{}, false
	}

	return Session{
		ProfileID: profile.ID,
		Handle:    profile.Handle,
		Name:      profile.DisplayName,
	}, true
}

// OAuthLogin redirects to the provider's authorization endpoint. The state
// nonce goes into the session and is checked on callback.
func OAuthLogin(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 16)
		if _, err := rand.Read(buf); err != nil {
			writeError(w, err)
			return
		}
		state := hex.EncodeToString(buf)

		session := handler.SessionManager.Load(r)
		if err := session.PutString(w, stateKey, state); err != nil {
			writeError(w, err)
			return
		}

		http.Redirect(w, r, handler.provider.AuthURL(state), http.StatusSeeOther)
	}
}

// OAuthCallback finishes the login: code exchange, then reconciliation of
// the returned principal into a profile, then a cookie session.
func OAuthCallback(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := handler.SessionManager.Load(r)

		want, err := session.GetString(stateKey)
		if err != nil || want == "" || want != r.URL.Query().Get("state") {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid oauth state"})
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing code"})
			return
		}

		principal, err := handler.provider.Exchange(ctx, code)
		if err != nil {
			log.Error().Err(err).Msg("oauth exchange failed")
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "login failed"})
			return
		}

		profile, _, err := handler.service.EnsureProfile(ctx, principal)
		if err != nil {
			writeError(w, err)
			return
		}

		err = session.PutObject(w, SessionKey, Session{
			ProfileID: profile.ID,
			Handle:    profile.Handle,
			Name:      profile.DisplayName,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		http.Redirect(w, r, "/feed", http.StatusSeeOther)
	}
}

func Logout(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := handler.SessionManager.Load(r)
		if err := session.Destroy(w); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}
