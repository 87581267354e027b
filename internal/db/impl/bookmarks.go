package impl

import (
	"context"
	"time"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

// Bookmark toggles are last-writer-wins: each toggle is a single idempotent
// statement, so concurrent toggles from two sessions can drop one update but
// can never corrupt the set.

func (d *dbImpl) AddBookmark(ctx context.Context, profileID, thoughtID string) error {
	_, err := d.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO bookmarks(user_id, thought_id, created_at) VALUES (?,?,?)",
		profileID, thoughtID, time.Now())
	return d.HandleError(err)
}

func (d *dbImpl) RemoveBookmark(ctx context.Context, profileID, thoughtID string) error {
	_, err := d.db.ExecContext(ctx,
		"DELETE FROM bookmarks WHERE user_id = ? AND thought_id = ?",
		profileID, thoughtID)
	return d.HandleError(err)
}

func (d *dbImpl) BookmarkExists(ctx context.Context, profileID, thoughtID string) (bool, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM bookmarks WHERE user_id = ? AND thought_id = ?)",
		profileID, thoughtID)
	var exists bool
	err := row.Scan(&exists)
	return exists, d.HandleError(err)
}

func (d *dbImpl) GetBookmarkedIDs(ctx context.Context, profileID string) ([]string, error) {
	rows, err := d.db.QueryContext(ctx,
		"SELECT thought_id FROM bookmarks WHERE user_id = ? ORDER BY created_at DESC", profileID)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, d.HandleError(err)
		}
		ids = append(ids, id)
	}
	return ids, d.HandleError(rows.Err())
}

func (d *dbImpl) GetBookmarkedThoughts(ctx context.Context, profileID string, limit int) ([]domain.ThoughtWithAuthor, error) {
	rows, err := d.db.QueryContext(ctx,
		thoughtWithAuthorQuery+` JOIN bookmarks b ON b.thought_id = t.id
		WHERE b.user_id = ? ORDER BY b.created_at DESC LIMIT ?`,
		profileID, limit)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()
	return d.collectThoughtsWithAuthor(rows)
}
