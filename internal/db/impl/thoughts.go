package impl

import (
	"context"
	"database/sql"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

func (d *dbImpl) InsertThought(ctx context.Context, t domain.Thought) error {
	_, err := d.db.ExecContext(ctx,
		"INSERT INTO thoughts(id, author_id, content, created_at) VALUES (?,?,?,?)",
		t.ID, t.AuthorID, t.Content, t.Created)
	return d.HandleError(err)
}

func (d *dbImpl) GetThought(ctx context.Context, id string) (t domain.Thought, err error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT id, author_id, content, created_at FROM thoughts WHERE id = ?", id)
	err = d.HandleError(row.Scan(&t.ID, &t.AuthorID, &t.Content, &t.Created))
	return
}

func (d *dbImpl) DeleteThought(ctx context.Context, id, authorID string) error {
	res, err := d.db.ExecContext(ctx,
		"DELETE FROM thoughts WHERE id = ? AND author_id = ?", id, authorID)
	if err != nil {
		return d.HandleError(err)
	}
	return d.affected(res)
}

func (d *dbImpl) GetThoughtsByAuthor(ctx context.Context, authorID string, limit int) ([]domain.Thought, error) {
	rows, err := d.db.QueryContext(ctx,
		"SELECT id, author_id, content, created_at FROM thoughts WHERE author_id = ? ORDER BY created_at DESC, id DESC LIMIT ?",
		authorID, limit)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	var thoughts []domain.Thought
	for rows.Next() {
		var t domain.Thought
		if err = rows.Scan(&t.ID, &t.AuthorID, &t.Content, &t.Created); err != nil {
			return nil, d.HandleError(err)
		}
		thoughts = append(thoughts, t)
	}
	return thoughts, d.HandleError(rows.Err())
}

const thoughtWithAuthorQuery = `SELECT t.id, t.author_id, t.content, t.created_at, u.name, u.username, u.profile_image
	FROM thoughts t JOIN users u ON u.id = t.author_id`

func (d *dbImpl) GetRecentThoughts(ctx context.Context, limit int) ([]domain.ThoughtWithAuthor, error) {
	rows, err := d.db.QueryContext(ctx,
		thoughtWithAuthorQuery+" ORDER BY t.created_at DESC, t.id DESC LIMIT ?", limit)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()
	return d.collectThoughtsWithAuthor(rows)
}

func (d *dbImpl) collectThoughtsWithAuthor(rows *sql.Rows) ([]domain.ThoughtWithAuthor, error) {
	var result []domain.ThoughtWithAuthor
	for rows.Next() {
		var t domain.ThoughtWithAuthor
		var avatar sql.NullString
		err := rows.Scan(&t.ID, &t.AuthorID, &t.Content, &t.Created, &t.AuthorName, &t.AuthorHandle, &avatar)
		if err != nil {
			return nil, d.HandleError(err)
		}
		t.AuthorAvatar = avatar.String
		result = append(result, t)
	}
	return result, d.HandleError(rows.Err())
}
