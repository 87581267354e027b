package service

import (
	"context"
	"errors"
	"io"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

var (
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid")
)

type Service interface {
	// EnsureProfile reconciles the principal to exactly one profile,
	// creating or re-keying as needed. created is true when this call
	// inserted the row. Every profile-dependent surface goes through this
	// one method.
	EnsureProfile(ctx context.Context, principal *domain.Principal) (p domain.Profile, created bool, err error)

	PostThought(ctx context.Context, authorID, content string) (domain.Thought, error)
	DeleteThought(ctx context.Context, id, authorID string) error
	// Feed returns the most recent thoughts across all profiles.
	Feed(ctx context.Context, limit int) ([]domain.ThoughtWithAuthor, error)

	GetProfile(ctx context.Context, handle string) (domain.ProfileView, error)
	ProfileThoughts(ctx context.Context, handle string, limit int) ([]domain.Thought, error)
	UpdateProfile(ctx context.Context, id, name, handle, bio string) (domain.Profile, error)
	// SaveAvatar stores the image and records its reference on the profile.
	SaveAvatar(ctx context.Context, id string, content io.Reader) (ref string, err error)
	// Avatar returns the stored image for a reference previously handed out
	// by SaveAvatar.
	Avatar(ctx context.Context, ref string) ([]byte, error)

	Follow(ctx context.Context, followerID, handle string) error
	Unfollow(ctx context.Context, followerID, handle string) error
	// Followers and Following list the profiles on either side of the
	// handle's follow edges, newest first.
	Followers(ctx context.Context, handle string, limit int) ([]domain.Profile, error)
	Following(ctx context.Context, handle string, limit int) ([]domain.Profile, error)

	ToggleBookmark(ctx context.Context, profileID, thoughtID string) (bookmarked bool, err error)
	Bookmarks(ctx context.Context, profileID string, limit int) ([]domain.ThoughtWithAuthor, error)

	Notifications(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, recipientID, id string) error
	MarkAllNotificationsRead(ctx context.Context, recipientID string) error
	UnreadCount(ctx context.Context, recipientID string) (int64, error)
}
