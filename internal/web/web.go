package web

import (
	"github.com/alexedwards/scs"

	"github.com/iamanderson-dev/thoughts-app/internal/auth"
	"github.com/iamanderson-dev/thoughts-app/internal/config"
	"github.com/iamanderson-dev/thoughts-app/internal/service"
)

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
	verifier       *auth.Verifier
	provider       *auth.Provider
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager, verifier *auth.Verifier, provider *auth.Provider) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
		verifier:       verifier,
		provider:       provider,
	}
}
