package impl

import (
	"context"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

// ToggleBookmark adds the bookmark if absent and removes it otherwise,
// returning the resulting state. Concurrent toggles from two sessions are
// last-writer-wins; the set never ends up corrupted, one toggle may simply
// be superseded.
func (s *AppService) ToggleBookmark(ctx context.Context, profileID, thoughtID string) (bool, error) {
	if _, err := s.DB.GetThought(ctx, thoughtID); err != nil {
		return false, err
	}

	exists, err := s.DB.BookmarkExists(ctx, profileID, thoughtID)
	if err != nil {
		return false, err
	}

	if exists {
		if err = s.DB.RemoveBookmark(ctx, profileID, thoughtID); err != nil {
			return true, err
		}
		return false, nil
	}

	if err = s.DB.AddBookmark(ctx, profileID, thoughtID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *AppService) Bookmarks(ctx context.Context, profileID string, limit int) ([]domain.ThoughtWithAuthor, error) {
	if limit <= 0 || limit > DefaultFeedLimit {
		limit = DefaultFeedLimit
	}
	return s.DB.GetBookmarkedThoughts(ctx, profileID, limit)
}
