package impl

import (
	"errors"
	"testing"

	"github.com/iamanderson-dev/thoughts-app/internal/db"
)

func TestInsertAndGetThought(t *testing.T) {
	author := mustInsertProfile(t, "auth0|th1", "thinker")
	want := mustInsertThought(t, "t-one", author.ID, "a first thought")

	got, err := DB.GetThought(ctx, want.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got.AuthorID != author.ID || got.Content != want.Content {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	if _, err = DB.GetThought(ctx, "missing"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %s", err)
	}
}

func TestDeleteThoughtRequiresAuthor(t *testing.T) {
	author := mustInsertProfile(t, "auth0|th2", "deleter")
	other := mustInsertProfile(t, "auth0|th3", "not_the_author")
	thought := mustInsertThought(t, "t-del", author.ID, "delete me")

	err := DB.DeleteThought(ctx, thought.ID, other.ID)
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign author, got %s", err)
	}

	if err = DB.DeleteThought(ctx, thought.ID, author.ID); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err = DB.GetThought(ctx, thought.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected thought to be gone, got %s", err)
	}
}

func TestGetRecentThoughtsJoinsAuthor(t *testing.T) {
	author := mustInsertProfile(t, "auth0|th4", "recent_author")
	mustInsertThought(t, "t-recent", author.ID, "fresh off the press")

	feed, err := DB.GetRecentThoughts(ctx, 100)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	var found bool
	for _, entry := range feed {
		if entry.ID == "t-recent" {
			found = true
			if entry.AuthorHandle != "recent_author" {
				t.Errorf("expected author handle joined in, got %q", entry.AuthorHandle)
			}
			if entry.AuthorName != author.DisplayName {
				t.Errorf("expected author name joined in, got %q", entry.AuthorName)
			}
		}
	}
	if !found {
		t.Error("expected the new thought in the recent feed")
	}
}

func TestGetThoughtsByAuthorOrdersNewestFirst(t *testing.T) {
	author := mustInsertProfile(t, "auth0|th5", "prolific")
	mustInsertThought(t, "t-ord1", author.ID, "older")
	mustInsertThought(t, "t-ord2", author.ID, "newer")

	thoughts, err := DB.GetThoughtsByAuthor(ctx, author.ID, 10)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(thoughts) != 2 {
		t.Fatalf("expected 2 thoughts, got %d", len(thoughts))
	}
	if thoughts[0].ID != "t-ord2" {
		t.Errorf("expected newest thought first, got %s", thoughts[0].ID)
	}
}
