package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iamanderson-dev/thoughts-app/internal/db"
	"github.com/iamanderson-dev/thoughts-app/internal/db/mocks"
	"github.com/iamanderson-dev/thoughts-app/internal/domain"
	"go.uber.org/mock/gomock"
)

var ctx = context.Background()

func newReconciler(store db.Profiles, requireConfirmed bool) *Reconciler {
	return NewReconciler(store, NewAllocator(store, 20), requireConfirmed)
}

func TestReconcileNilPrincipal(t *testing.T) {
	r := newReconciler(mocks.NewMockProfiles(gomock.NewController(t)), false)

	_, _, err := r.Reconcile(ctx, nil)
	if !errors.Is(err, ErrAuthRequired) {
		t.Errorf("expected ErrAuthRequired, got %v", err)
	}

	_, _, err = r.Reconcile(ctx, &domain.Principal{Email: "a@x.com"})
	if !errors.Is(err, ErrAuthRequired) {
		t.Errorf("expected ErrAuthRequired for empty id, got %v", err)
	}
}

func TestReconcileUnconfirmedEmail(t *testing.T) {
	r := newReconciler(mocks.NewMockProfiles(gomock.NewController(t)), true)

	_, _, err := r.Reconcile(ctx, &domain.Principal{ID: "u1", Email: "a@x.com"})
	if !errors.Is(err, ErrEmailUnconfirmed) {
		t.Errorf("expected ErrEmailUnconfirmed, got %v", err)
	}
}

func TestReconcileExistingProfile(t *testing.T) {
	store := mocks.NewMockProfiles(gomock.NewController(t))
	existing := domain.Profile{ID: "u1", Handle: "alice", Email: "a@x.com"}
	store.EXPECT().GetProfile(ctx, "u1").Return(existing, nil)

	got, created, err := newReconciler(store, false).Reconcile(ctx, &domain.Principal{ID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if created {
		t.Error("expected created=false for an existing profile")
	}
	if diff := cmp.Diff(existing, got); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestReconcileCreatesProfile(t *testing.T) {
	store := mocks.NewMockProfiles(gomock.NewController(t))
	principal := &domain.Principal{ID: "u1", Email: "a@x.com", Handle: "alice"}

	store.EXPECT().GetProfile(ctx, "u1").Return(domain.Profile{}, db.ErrNotFound)
	store.EXPECT().GetProfileByEmail(ctx, "a@x.com").Return(domain.Profile{}, db.ErrNotFound)
	store.EXPECT().HandleTaken(ctx, "alice").Return(false, nil)
	var inserted domain.Profile
	store.EXPECT().InsertProfile(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.Profile) error {
			inserted = p
			return nil
		})

	got, created, err := newReconciler(store, false).Reconcile(ctx, principal)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !created {
		t.Error("expected created=true")
	}
	if got.ID != "u1" || got.Handle != "alice" || got.Email != "a@x.com" {
		t.Errorf("unexpected profile: %+v", got)
	}
	// The display name falls back to the email local-part.
	if got.DisplayName != "a" {
		t.Errorf("expected display name %q, got %q", "a", got.DisplayName)
	}
	if diff := cmp.Diff(inserted, got); diff != "" {
		t.Errorf("returned profile differs from inserted row:\n%s", diff)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	// Second call must return the same profile with zero inserts.
	store := mocks.NewMockProfiles(gomock.NewController(t))
	principal := &domain.Principal{ID: "u1", Email: "a@x.com", Handle: "alice", Name: "Alice"}

	var committed *domain.Profile
	store.EXPECT().GetProfile(ctx, "u1").DoAndReturn(
		func(context.Context, string) (domain.Profile, error) {
			if committed == nil {
				return domain.Profile{}, db.ErrNotFound
			}
			return *committed, nil
		}).Times(2)
	store.EXPECT().GetProfileByEmail(ctx, "a@x.com").Return(domain.Profile{}, db.ErrNotFound)
	store.EXPECT().HandleTaken(ctx, "alice").Return(false, nil)
	store.EXPECT().InsertProfile(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.Profile) error {
			committed = &p
			return nil
		}).Times(1)

	r := newReconciler(store, false)
	first, created, err := r.Reconcile(ctx, principal)
	if err != nil || !created {
		t.Fatalf("first call: created=%v err=%v", created, err)
	}

	second, created, err := r.Reconcile(ctx, principal)
	if err != nil {
		t.Fatalf("second call: %s", err)
	}
	if created {
		t.Error("second call reported created=true")
	}
	if first.ID != second.ID {
		t.Errorf("profile id changed between calls: %s then %s", first.ID, second.ID)
	}
}

func TestReconcileRekeysOrphanedProfile(t *testing.T) {
	store := mocks.NewMockProfiles(gomock.NewController(t))
	orphan := domain.Profile{ID: "u1", Handle: "alice", Email: "a@x.com", Bio: "old bio"}
	rekeyed := orphan
	rekeyed.ID = "u2"

	store.EXPECT().GetProfile(ctx, "u2").Return(domain.Profile{}, db.ErrNotFound)
	store.EXPECT().GetProfileByEmail(ctx, "a@x.com").Return(orphan, nil)
	store.EXPECT().RekeyProfile(ctx, "u1", "u2", "a@x.com").Return(nil)
	store.EXPECT().GetProfile(ctx, "u2").Return(rekeyed, nil)

	got, created, err := newReconciler(store, false).Reconcile(ctx, &domain.Principal{ID: "u2", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if created {
		t.Error("re-keying must not report a creation")
	}
	if got.ID != "u2" {
		t.Errorf("expected re-keyed id u2, got %s", got.ID)
	}
	if got.Handle != "alice" || got.Bio != "old bio" {
		t.Errorf("re-keying changed profile content: %+v", got)
	}
}

func TestReconcileInsertRaceLost(t *testing.T) {
	// The insert hits a unique violation because a concurrent reconcile for
	// the same principal committed first; the re-fetch must return that row.
	store := mocks.NewMockProfiles(gomock.NewController(t))
	winner := domain.Profile{ID: "u1", Handle: "alice", Email: "a@x.com"}

	store.EXPECT().GetProfile(ctx, "u1").Return(domain.Profile{}, db.ErrNotFound)
	store.EXPECT().GetProfileByEmail(ctx, "a@x.com").Return(domain.Profile{}, db.ErrNotFound)
	store.EXPECT().HandleTaken(ctx, "alice").Return(false, nil)
	store.EXPECT().InsertProfile(ctx, gomock.Any()).Return(db.ErrDuplicateKey)
	store.EXPECT().GetProfile(ctx, "u1").Return(winner, nil)

	got, _, err := newReconciler(store, false).Reconcile(ctx, &domain.Principal{ID: "u1", Email: "a@x.com", Handle: "alice"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff(winner, got); diff != "" {
		t.Errorf("expected the winner's row (-want +got):\n%s", diff)
	}
}

func TestReconcileHandleRaceRetriesOnce(t *testing.T) {
	// The violation is on the handle, not the id: one re-allocation must
	// converge.
	store := mocks.NewMockProfiles(gomock.NewController(t))

	store.EXPECT().GetProfile(ctx, "u1ab").Return(domain.Profile{}, db.ErrNotFound)
	store.EXPECT().GetProfileByEmail(ctx, "a@x.com").Return(domain.Profile{}, db.ErrNotFound)
	store.EXPECT().HandleTaken(ctx, "alice").Return(false, nil)
	store.EXPECT().InsertProfile(ctx, gomock.Any()).Return(db.ErrDuplicateKey)
	store.EXPECT().GetProfile(ctx, "u1ab").Return(domain.Profile{}, db.ErrNotFound)
	store.EXPECT().HandleTaken(ctx, "alice").Return(true, nil)
	store.EXPECT().HandleTaken(ctx, "alice_u1ab").Return(false, nil)
	store.EXPECT().InsertProfile(ctx, gomock.Any()).Return(nil)

	got, created, err := newReconciler(store, false).Reconcile(ctx, &domain.Principal{ID: "u1ab", Email: "a@x.com", Handle: "alice"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !created {
		t.Error("expected created=true after retry")
	}
	if got.Handle != "alice_u1ab" {
		t.Errorf("expected retried handle alice_u1ab, got %q", got.Handle)
	}
}

func TestReconcileHandleConflictAfterRetry(t *testing.T) {
	store := mocks.NewMockProfiles(gomock.NewController(t))

	store.EXPECT().GetProfile(ctx, "u1ab").Return(domain.Profile{}, db.ErrNotFound).Times(3)
	store.EXPECT().GetProfileByEmail(ctx, "a@x.com").Return(domain.Profile{}, db.ErrNotFound)
	store.EXPECT().HandleTaken(ctx, gomock.Any()).Return(false, nil).Times(2)
	store.EXPECT().InsertProfile(ctx, gomock.Any()).Return(db.ErrDuplicateKey).Times(2)

	_, _, err := newReconciler(store, false).Reconcile(ctx, &domain.Principal{ID: "u1ab", Email: "a@x.com", Handle: "alice"})
	if !errors.Is(err, ErrHandleConflict) {
		t.Errorf("expected ErrHandleConflict, got %v", err)
	}
}

func TestReconcileLookupErrorIsNotAbsence(t *testing.T) {
	// A failed lookup must never be treated as "no row": that would mint a
	// duplicate profile during an outage.
	store := mocks.NewMockProfiles(gomock.NewController(t))
	store.EXPECT().GetProfile(ctx, "u1").Return(domain.Profile{}, errors.New("i/o timeout"))

	_, _, err := newReconciler(store, false).Reconcile(ctx, &domain.Principal{ID: "u1"})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestReconcileEmailLookupErrorPropagates(t *testing.T) {
	store := mocks.NewMockProfiles(gomock.NewController(t))
	store.EXPECT().GetProfile(ctx, "u1").Return(domain.Profile{}, db.ErrNotFound)
	store.EXPECT().GetProfileByEmail(ctx, "a@x.com").Return(domain.Profile{}, errors.New("i/o timeout"))

	_, _, err := newReconciler(store, false).Reconcile(ctx, &domain.Principal{ID: "u1", Email: "a@x.com"})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable, got %v", err)
	}
}
