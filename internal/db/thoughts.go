package db

import (
	"context"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

type Thoughts interface {
	InsertThought(ctx context.Context, t domain.Thought) error
	GetThought(ctx context.Context, id string) (domain.Thought, error)
	// DeleteThought removes the thought only when authorID owns it.
	// Returns ErrNotFound otherwise, so a delete can never cross authors.
	DeleteThought(ctx context.Context, id, authorID string) error
	// GetThoughtsByAuthor lists the author's thoughts, newest first.
	GetThoughtsByAuthor(ctx context.Context, authorID string, limit int) ([]domain.Thought, error)
	// GetRecentThoughts returns the global feed joined with author data,
	// newest first.
	GetRecentThoughts(ctx context.Context, limit int) ([]domain.ThoughtWithAuthor, error)
}
