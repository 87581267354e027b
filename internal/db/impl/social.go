package impl

import (
	"context"
	"database/sql"
	"time"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

func (d *dbImpl) InsertFollow(ctx context.Context, followerID, followingID string) error {
	_, err := d.db.ExecContext(ctx,
		"INSERT INTO follows(follower_id, following_id, created_at) VALUES (?,?,?)",
		followerID, followingID, time.Now())
	return d.HandleError(err)
}

func (d *dbImpl) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	res, err := d.db.ExecContext(ctx,
		"DELETE FROM follows WHERE follower_id = ? AND following_id = ?",
		followerID, followingID)
	if err != nil {
		return d.HandleError(err)
	}
	return d.affected(res)
}

func (d *dbImpl) FollowExists(ctx context.Context, followerID, followingID string) (bool, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = ? AND following_id = ?)",
		followerID, followingID)
	var exists bool
	err := row.Scan(&exists)
	return exists, d.HandleError(err)
}

func (d *dbImpl) CountFollowers(ctx context.Context, id string) (int64, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM follows WHERE following_id = ?", id)
	var n int64
	err := row.Scan(&n)
	return n, d.HandleError(err)
}

func (d *dbImpl) CountFollowing(ctx context.Context, id string) (int64, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM follows WHERE follower_id = ?", id)
	var n int64
	err := row.Scan(&n)
	return n, d.HandleError(err)
}

func (d *dbImpl) GetFollowerIDs(ctx context.Context, id string) ([]string, error) {
	return d.collectIDs(ctx,
		"SELECT follower_id FROM follows WHERE following_id = ?", id)
}

func (d *dbImpl) GetFollowingIDs(ctx context.Context, id string) ([]string, error) {
	return d.collectIDs(ctx,
		"SELECT following_id FROM follows WHERE follower_id = ?", id)
}

func (d *dbImpl) collectIDs(ctx context.Context, query, id string) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var next string
		if err = rows.Scan(&next); err != nil {
			return nil, d.HandleError(err)
		}
		ids = append(ids, next)
	}
	return ids, d.HandleError(rows.Err())
}

const followProfileQuery = `SELECT u.id, u.name, u.username, u.email, u.bio, u.profile_image, u.joined_at
	FROM follows f JOIN users u ON u.id = `

func (d *dbImpl) GetFollowerProfiles(ctx context.Context, id string, limit int) ([]domain.Profile, error) {
	rows, err := d.db.QueryContext(ctx,
		followProfileQuery+`f.follower_id
		WHERE f.following_id = ? ORDER BY f.created_at DESC, u.id DESC LIMIT ?`,
		id, limit)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()
	return d.collectProfiles(rows)
}

func (d *dbImpl) GetFollowingProfiles(ctx context.Context, id string, limit int) ([]domain.Profile, error) {
	rows, err := d.db.QueryContext(ctx,
		followProfileQuery+`f.following_id
		WHERE f.follower_id = ? ORDER BY f.created_at DESC, u.id DESC LIMIT ?`,
		id, limit)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()
	return d.collectProfiles(rows)
}

func (d *dbImpl) collectProfiles(rows *sql.Rows) ([]domain.Profile, error) {
	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		var bio, avatar sql.NullString
		err := rows.Scan(&p.ID, &p.DisplayName, &p.Handle, &p.Email, &bio, &avatar, &p.JoinedAt)
		if err != nil {
			return nil, d.HandleError(err)
		}
		p.Bio = bio.String
		p.AvatarRef = avatar.String
		profiles = append(profiles, p)
	}
	return profiles, d.HandleError(rows.Err())
}
