package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iamanderson-dev/thoughts-app/internal/db"
	"github.com/iamanderson-dev/thoughts-app/internal/domain"
	"github.com/rs/zerolog/log"
)

// DefaultDisplayName is used when neither the provider metadata nor the
// email yields a name.
const DefaultDisplayName = "User"

// Reconciler guarantees that an authenticated principal has exactly one
// profile row with a unique handle before any profile-dependent action
// proceeds. Safe to call concurrently from any number of surfaces for the
// same principal; concurrent calls converge on one row.
type Reconciler struct {
	store            db.Profiles
	alloc            *Allocator
	requireConfirmed bool
	now              func() time.Time
}

func NewReconciler(store db.Profiles, alloc *Allocator, requireConfirmedEmail bool) *Reconciler {
	return &Reconciler{
		store:            store,
		alloc:            alloc,
		requireConfirmed: requireConfirmedEmail,
		now:              time.Now,
	}
}

// Reconcile finds the profile for the principal, re-keys an orphaned
// profile that shares the principal's email, or creates a new one. The
// returned bool is true when a row was created on this call.
func (r *Reconciler) Reconcile(ctx context.Context, principal *domain.Principal) (domain.Profile, bool, error) {
	if principal == nil || principal.ID == "" {
		return domain.Profile{}, false, ErrAuthRequired
	}
	if r.requireConfirmed && !principal.EmailConfirmed {
		return domain.Profile{}, false, ErrEmailUnconfirmed
	}

	// Happy path: the dominant case after first contact.
	profile, err := r.store.GetProfile(ctx, principal.ID)
	if err == nil {
		return profile, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return domain.Profile{}, false, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if principal.Email != "" {
		profile, err = r.store.GetProfileByEmail(ctx, principal.Email)
		switch {
		case err == nil:
			if profile.ID == principal.ID {
				return profile, false, nil
			}
			return r.rekey(ctx, profile.ID, principal)
		case !errors.Is(err, db.ErrNotFound):
			return domain.Profile{}, false, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
	}

	profile, err = r.create(ctx, principal, true)
	if err != nil {
		return domain.Profile{}, false, err
	}
	return profile, true, nil
}

// rekey moves an orphaned profile (same email, prior principal) to the new
// principal id in place. A single atomic update, never delete+insert, so
// the profile's thoughts, follows and notifications stay attached.
func (r *Reconciler) rekey(ctx context.Context, oldID string, principal *domain.Principal) (domain.Profile, bool, error) {
	log.Info().
		Str("old_id", oldID).
		Str("new_id", principal.ID).
		Msg("re-keying orphaned profile to new principal")

	if err := r.store.RekeyProfile(ctx, oldID, principal.ID, principal.Email); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			// The row moved under us; a concurrent reconcile won. Re-fetch.
			profile, ferr := r.store.GetProfile(ctx, principal.ID)
			if ferr != nil {
				return domain.Profile{}, false, fmt.Errorf("%w: %v", ErrStorageUnavailable, ferr)
			}
			return profile, false, nil
		}
		return domain.Profile{}, false, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	profile, err := r.store.GetProfile(ctx, principal.ID)
	if err != nil {
		return domain.Profile{}, false, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return profile, false, nil
}

// create inserts a fresh profile. A unique violation on handle or id means
// we lost a race: re-fetch by id first (the competing writer may have
// committed our row), then retry allocation exactly once.
func (r *Reconciler) create(ctx context.Context, principal *domain.Principal, retry bool) (domain.Profile, error) {
	handle, err := r.alloc.Allocate(ctx, handleSeed(principal), disambiguator(principal.ID))
	if err != nil {
		return domain.Profile{}, err
	}

	profile := domain.Profile{
		ID:          principal.ID,
		DisplayName: displayName(principal),
		Handle:      handle,
		Email:       principal.Email,
		JoinedAt:    r.now(),
	}

	err = r.store.InsertProfile(ctx, profile)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, db.ErrDuplicateKey) {
		return domain.Profile{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	existing, err := r.store.GetProfile(ctx, principal.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return domain.Profile{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	// The collision was on the handle, not our id. The competing writer
	// already committed, so one more allocation converges.
	if !retry {
		return domain.Profile{}, ErrHandleConflict
	}
	return r.create(ctx, principal, false)
}

func handleSeed(principal *domain.Principal) string {
	if principal.Handle != "" {
		return principal.Handle
	}
	if local := emailLocalPart(principal.Email); local != "" {
		return local
	}
	return principal.Name
}

func displayName(principal *domain.Principal) string {
	if name := strings.TrimSpace(principal.Name); name != "" {
		return name
	}
	if local := emailLocalPart(principal.Email); local != "" {
		return local
	}
	return DefaultDisplayName
}

func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// disambiguator keeps fallback handles traceable to the principal.
func disambiguator(principalID string) string {
	if len(principalID) > 4 {
		return principalID[:4]
	}
	return principalID
}
