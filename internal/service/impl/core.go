package impl

import (
	"context"

	"github.com/iamanderson-dev/thoughts-app/internal/config"
	"github.com/iamanderson-dev/thoughts-app/internal/db"
	"github.com/iamanderson-dev/thoughts-app/internal/domain"
	"github.com/iamanderson-dev/thoughts-app/internal/identity"
	"github.com/iamanderson-dev/thoughts-app/internal/queue"
	"github.com/iamanderson-dev/thoughts-app/internal/service"
	"github.com/iamanderson-dev/thoughts-app/internal/state"
	"github.com/iamanderson-dev/thoughts-app/internal/storage"
)

type AppService struct {
	Config     config.Configuration
	DB         db.DB
	reconciler *identity.Reconciler
	notifier   queue.Notifier
	blobs      storage.Storage
}

func New(state *state.State, notifier queue.Notifier, blobs storage.Storage) service.Service {
	allocator := identity.NewAllocator(state.DB, state.Config.HandleMaxLen)
	return &AppService{
		Config:     state.Config,
		DB:         state.DB,
		reconciler: identity.NewReconciler(state.DB, allocator, state.Config.RequireConfirmedEmail),
		notifier:   notifier,
		blobs:      blobs,
	}
}

func (s *AppService) EnsureProfile(ctx context.Context, principal *domain.Principal) (domain.Profile, bool, error) {
	return s.reconciler.Reconcile(ctx, principal)
}
