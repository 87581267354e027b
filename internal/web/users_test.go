package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamanderson-dev/thoughts-app/internal/config"
	"github.com/iamanderson-dev/thoughts-app/internal/domain"
	"github.com/iamanderson-dev/thoughts-app/internal/identity"
	"github.com/iamanderson-dev/thoughts-app/internal/service"
)

// fakeService stubs the one method the handler under test calls. The
// embedded interface panics on anything else, which is what we want.
type fakeService struct {
	service.Service
	ensure func(ctx context.Context, p *domain.Principal) (domain.Profile, bool, error)
}

func (f *fakeService) EnsureProfile(ctx context.Context, p *domain.Principal) (domain.Profile, bool, error) {
	return f.ensure(ctx, p)
}

const testServiceToken = "svc-token-for-tests"

func newTestHandler(ensure func(ctx context.Context, p *domain.Principal) (domain.Profile, bool, error)) Handler {
	cfg := &config.Configuration{ServiceToken: testServiceToken}
	return New(cfg, &fakeService{ensure: ensure}, nil, nil, nil)
}

func TestCreateUser(t *testing.T) {
	profile := domain.Profile{
		ID:          "auth0|u1",
		DisplayName: "Jane Doe",
		Handle:      "jane_doe",
		Email:       "jane@example.com",
	}

	cases := []struct {
		name       string
		token      string
		body       string
		created    bool
		err        error
		wantStatus int
	}{
		{
			name:       "created",
			token:      testServiceToken,
			body:       `{"id":"auth0|u1","email":"jane@example.com","name":"Jane Doe"}`,
			created:    true,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "already exists",
			token:      testServiceToken,
			body:       `{"id":"auth0|u1","email":"jane@example.com","name":"Jane Doe"}`,
			created:    false,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing id",
			token:      testServiceToken,
			body:       `{"email":"jane@example.com"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing email",
			token:      testServiceToken,
			body:       `{"id":"auth0|u1"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			token:      testServiceToken,
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed email",
			token:      testServiceToken,
			body:       `{"id":"auth0|u1","email":"not-an-address"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing credential",
			token:      "",
			body:       `{"id":"auth0|u1","email":"jane@example.com"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong credential",
			token:      "guess",
			body:       `{"id":"auth0|u1","email":"jane@example.com"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unresolvable handle conflict",
			token:      testServiceToken,
			body:       `{"id":"auth0|u1","email":"jane@example.com"}`,
			err:        identity.ErrHandleConflict,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "storage failure",
			token:      testServiceToken,
			body:       `{"id":"auth0|u1","email":"jane@example.com"}`,
			err:        identity.ErrStorageUnavailable,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newTestHandler(func(ctx context.Context, p *domain.Principal) (domain.Profile, bool, error) {
				if c.err != nil {
					return domain.Profile{}, false, c.err
				}
				return profile, c.created, nil
			})

			r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(c.body))
			if c.token != "" {
				r.Header.Set("Authorization", "Bearer "+c.token)
			}
			w := httptest.NewRecorder()

			CreateUser(&h)(w, r)

			assert.Equal(t, c.wantStatus, w.Code)
			if c.wantStatus == http.StatusCreated || c.wantStatus == http.StatusOK {
				require.Contains(t, w.Body.String(), `"username":"jane_doe"`)
			}
		})
	}
}

func TestCreateUserIsIdempotentPerPrincipal(t *testing.T) {
	calls := 0
	h := newTestHandler(func(ctx context.Context, p *domain.Principal) (domain.Profile, bool, error) {
		calls++
		created := calls == 1
		return domain.Profile{ID: p.ID, Handle: "jane_doe", Email: p.Email}, created, nil
	})

	body := `{"id":"auth0|u1","email":"jane@example.com"}`
	for i, want := range []int{http.StatusCreated, http.StatusOK, http.StatusOK} {
		r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		r.Header.Set("Authorization", "Bearer "+testServiceToken)
		w := httptest.NewRecorder()

		CreateUser(&h)(w, r)
		assert.Equal(t, want, w.Code, "request %d", i+1)
	}
}
