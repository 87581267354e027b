package impl

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

const profileColumns = "id, name, username, email, bio, profile_image, joined_at"

func scanProfile(row *sql.Row) (p domain.Profile, err error) {
	var bio, avatar sql.NullString
	err = row.Scan(&p.ID, &p.DisplayName, &p.Handle, &p.Email, &bio, &avatar, &p.JoinedAt)
	p.Bio = bio.String
	p.AvatarRef = avatar.String
	return
}

func (d *dbImpl) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT "+profileColumns+" FROM users WHERE id = ?", id)
	p, err := scanProfile(row)
	return p, d.HandleError(err)
}

func (d *dbImpl) GetProfileByEmail(ctx context.Context, email string) (domain.Profile, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT "+profileColumns+" FROM users WHERE email = ?", email)
	p, err := scanProfile(row)
	return p, d.HandleError(err)
}

func (d *dbImpl) GetProfileByHandle(ctx context.Context, handle string) (domain.Profile, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT "+profileColumns+" FROM users WHERE username = ? COLLATE NOCASE", handle)
	p, err := scanProfile(row)
	return p, d.HandleError(err)
}

func (d *dbImpl) HandleTaken(ctx context.Context, handle string) (bool, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE username = ? COLLATE NOCASE)", handle)
	var taken bool
	err := row.Scan(&taken)
	return taken, d.HandleError(err)
}

func (d *dbImpl) InsertProfile(ctx context.Context, p domain.Profile) error {
	_, err := d.db.ExecContext(ctx,
		"INSERT INTO users(id, name, username, email, bio, profile_image, joined_at) VALUES (?,?,?,?,?,?,?)",
		p.ID, p.DisplayName, p.Handle, p.Email, nullable(p.Bio), nullable(p.AvatarRef), p.JoinedAt)
	return d.HandleError(err)
}

// RekeyProfile moves a profile and everything hanging off it to a new primary
// identifier. Foreign key checks are deferred to commit so the parent row and
// its dependents can move inside one transaction.
func (d *dbImpl) RekeyProfile(ctx context.Context, oldID, newID, email string) error {
	return d.WithTx(func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "PRAGMA defer_foreign_keys = ON"); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			"UPDATE users SET id = ?, email = ? WHERE id = ?", newID, email, oldID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return sql.ErrNoRows
		}

		stmts := []string{
			"UPDATE thoughts SET author_id = ? WHERE author_id = ?",
			"UPDATE follows SET follower_id = ? WHERE follower_id = ?",
			"UPDATE follows SET following_id = ? WHERE following_id = ?",
			"UPDATE notifications SET recipient_id = ? WHERE recipient_id = ?",
			"UPDATE notifications SET sender_id = ? WHERE sender_id = ?",
			"UPDATE bookmarks SET user_id = ? WHERE user_id = ?",
		}
		for _, stmt := range stmts {
			if _, err = tx.ExecContext(ctx, stmt, newID, oldID); err != nil {
				return fmt.Errorf("rekey %s -> %s: %w", oldID, newID, err)
			}
		}
		return nil
	})
}

func (d *dbImpl) UpdateProfile(ctx context.Context, p domain.Profile) error {
	res, err := d.db.ExecContext(ctx,
		"UPDATE users SET name = ?, username = ?, bio = ? WHERE id = ?",
		p.DisplayName, p.Handle, nullable(p.Bio), p.ID)
	if err != nil {
		return d.HandleError(err)
	}
	return d.affected(res)
}

func (d *dbImpl) SetAvatar(ctx context.Context, id, ref string) error {
	res, err := d.db.ExecContext(ctx,
		"UPDATE users SET profile_image = ? WHERE id = ?", ref, id)
	if err != nil {
		return d.HandleError(err)
	}
	return d.affected(res)
}

func (d *dbImpl) AvatarInUse(ctx context.Context, ref string) (bool, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE profile_image = ?)", ref)
	var inUse bool
	err := row.Scan(&inUse)
	return inUse, d.HandleError(err)
}

func (d *dbImpl) affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return d.HandleError(err)
	}
	if n == 0 {
		return d.HandleError(sql.ErrNoRows)
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{
		Valid:  s != "",
		String: s,
	}
}
