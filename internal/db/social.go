package db

import (
	"context"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

type Follows interface {
	// InsertFollow returns ErrDuplicateKey when the edge already exists.
	// Self-loops are rejected by the schema.
	InsertFollow(ctx context.Context, followerID, followingID string) error
	DeleteFollow(ctx context.Context, followerID, followingID string) error
	FollowExists(ctx context.Context, followerID, followingID string) (bool, error)
	CountFollowers(ctx context.Context, id string) (int64, error)
	CountFollowing(ctx context.Context, id string) (int64, error)
	// GetFollowerIDs lists the profiles following id, for notification fan-out.
	GetFollowerIDs(ctx context.Context, id string) ([]string, error)
	// GetFollowingIDs is the other direction: who id follows.
	GetFollowingIDs(ctx context.Context, id string) ([]string, error)
	// GetFollowerProfiles and GetFollowingProfiles join the edges to the
	// profiles for the follower/following pages, newest edge first.
	GetFollowerProfiles(ctx context.Context, id string, limit int) ([]domain.Profile, error)
	GetFollowingProfiles(ctx context.Context, id string, limit int) ([]domain.Profile, error)
}

type Notifications interface {
	InsertNotification(ctx context.Context, n domain.Notification) error
	GetNotifications(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error)
	// MarkNotificationRead flips the read flag only when recipientID owns
	// the notification; ErrNotFound otherwise.
	MarkNotificationRead(ctx context.Context, id, recipientID string) error
	MarkAllNotificationsRead(ctx context.Context, recipientID string) error
	CountUnread(ctx context.Context, recipientID string) (int64, error)
}

type Bookmarks interface {
	// AddBookmark is idempotent: bookmarking twice leaves one row.
	AddBookmark(ctx context.Context, profileID, thoughtID string) error
	RemoveBookmark(ctx context.Context, profileID, thoughtID string) error
	BookmarkExists(ctx context.Context, profileID, thoughtID string) (bool, error)
	GetBookmarkedIDs(ctx context.Context, profileID string) ([]string, error)
	GetBookmarkedThoughts(ctx context.Context, profileID string, limit int) ([]domain.ThoughtWithAuthor, error)
}
