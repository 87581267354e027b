package db

import (
	"context"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

// Profiles is the profile store. Lookups return ErrNotFound for zero rows;
// any other failure is returned as-is so callers never mistake an outage
// for an absent row.
type Profiles interface {
	GetProfile(ctx context.Context, id string) (domain.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (domain.Profile, error)
	// GetProfileByHandle matches case-insensitively.
	GetProfileByHandle(ctx context.Context, handle string) (domain.Profile, error)
	// HandleTaken is a point probe against the handle index, case-insensitive.
	// It informs, it does not reserve: final uniqueness is enforced by the
	// unique index at insert time.
	HandleTaken(ctx context.Context, handle string) (bool, error)
	// InsertProfile returns ErrDuplicateKey when the id or handle is already
	// present.
	InsertProfile(ctx context.Context, p domain.Profile) error
	// RekeyProfile changes a profile's primary identifier in place, moving
	// every dependent row (thoughts, follows, notifications, bookmarks) in
	// the same transaction. Returns ErrNotFound if no profile has oldID.
	RekeyProfile(ctx context.Context, oldID, newID, email string) error
	// UpdateProfile replaces display name, handle and bio of the given id.
	UpdateProfile(ctx context.Context, p domain.Profile) error
	SetAvatar(ctx context.Context, id, ref string) error
	// AvatarInUse reports whether any profile still references the blob.
	// Avatars are content addressed, so a blob may back several profiles.
	AvatarInUse(ctx context.Context, ref string) (bool, error)
}
