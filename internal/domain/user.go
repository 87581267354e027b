package domain

import "time"

// Principal is the identity asserted by the external auth provider. It is
// read-only to the application: the provider creates and destroys it, we
// only map it onto a Profile.
type Principal struct {
	// ID is the provider's stable, opaque identifier for the account.
	ID    string
	Email string
	// EmailConfirmed reports whether the provider has verified the address.
	EmailConfirmed bool
	// Name and Handle are free-form hints from the provider's user
	// metadata (suggested display name and username). Either may be empty.
	Name   string
	Handle string
}

// Profile is the application's durable user record. Its ID equals the
// principal ID of the account that owns it once reconciled.
type Profile struct {
	ID          string
	DisplayName string
	// Handle is unique across all profiles, case-insensitively.
	// Lowercase, [a-z0-9_], at most 20 characters.
	Handle    string
	Email     string
	Bio       string
	AvatarRef string
	JoinedAt  time.Time
}

// ProfileView is a profile together with the counts a profile page shows.
type ProfileView struct {
	Profile
	FollowerCount  int64
	FollowingCount int64
}

type Follow struct {
	FollowerID  string
	FollowingID string
	Created     time.Time
}
