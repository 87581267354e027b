package domain

import "time"

const MaxThoughtLen = 280

// Thought is a short text post. Immutable except for deletion by its author.
type Thought struct {
	ID       string
	AuthorID string
	Content  string
	Created  time.Time
}

// ThoughtWithAuthor joins a thought with the author fields feeds display.
type ThoughtWithAuthor struct {
	Thought
	AuthorName   string
	AuthorHandle string
	AuthorAvatar string
}
