package impl

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamanderson-dev/thoughts-app/internal/config"
	"github.com/iamanderson-dev/thoughts-app/internal/db"
	dbimpl "github.com/iamanderson-dev/thoughts-app/internal/db/impl"
	"github.com/iamanderson-dev/thoughts-app/internal/domain"
	"github.com/iamanderson-dev/thoughts-app/internal/initialization"
	"github.com/iamanderson-dev/thoughts-app/internal/service"
	"github.com/iamanderson-dev/thoughts-app/internal/state"
	"github.com/iamanderson-dev/thoughts-app/internal/storage/filestore"
)

type noopNotifier struct{}

func (noopNotifier) Followed(context.Context, string, string) error      { return nil }
func (noopNotifier) ThoughtPosted(context.Context, string, string) error { return nil }

var (
	svc      service.Service
	testDB   db.DB
	blobRoot string
	ctx      = context.Background()
)

func TestMain(m *testing.M) {
	d, err := initialization.OpenDB("file:svcimpl?mode=memory")
	if err != nil {
		return
	}
	// A second connection would see its own empty in-memory database.
	d.SetMaxOpenConns(1)

	if err = initialization.SetupDB(d, "../../../migrations", "svcimpl"); err != nil {
		return
	}
	testDB = dbimpl.New(config.Configuration{}, d)

	blobRoot, err = os.MkdirTemp(".", "blobs")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup tests")
		return
	}
	blobs, err := filestore.New(blobRoot)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup blob storage")
		return
	}

	svc = New(&state.State{DB: testDB, Config: config.Configuration{}}, noopNotifier{}, blobs)
	m.Run()
	if err = os.RemoveAll(blobRoot); err != nil {
		log.Fatal().Err(err).Msg("removal of temporary directory failed")
	}
}

func mustProfile(t *testing.T, id, handle string) domain.Profile {
	t.Helper()
	p := domain.Profile{
		ID:          id,
		DisplayName: "Profile " + handle,
		Handle:      handle,
		Email:       handle + "@example.com",
		JoinedAt:    time.Now().UTC().Truncate(time.Second),
	}
	if err := testDB.InsertProfile(ctx, p); err != nil {
		t.Fatalf("failed to insert profile %s: %s", handle, err)
	}
	return p
}

func blobExists(ref string) bool {
	_, err := os.Stat(filepath.Join(blobRoot, ref))
	return err == nil
}

func TestSaveAvatarDeletesSupersededBlob(t *testing.T) {
	p := mustProfile(t, "auth0|sva1", "avatar_swapper")

	first, err := svc.SaveAvatar(ctx, p.ID, strings.NewReader("first image bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !blobExists(first) {
		t.Fatalf("expected blob %s to be stored", first)
	}

	second, err := svc.SaveAvatar(ctx, p.ID, strings.NewReader("second image bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if second == first {
		t.Fatal("expected a different ref for different content")
	}

	if !blobExists(second) {
		t.Errorf("expected blob %s to be stored", second)
	}
	if blobExists(first) {
		t.Errorf("expected superseded blob %s to be deleted", first)
	}

	got, err := testDB.GetProfile(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got.AvatarRef != second {
		t.Errorf("expected profile to reference %s, got %s", second, got.AvatarRef)
	}
}

func TestSaveAvatarKeepsSharedBlob(t *testing.T) {
	// Two profiles upload the same image; the blob is content addressed, so
	// they share one file. Replacing one avatar must not delete it.
	a := mustProfile(t, "auth0|sva2", "shared_avatar_a")
	b := mustProfile(t, "auth0|sva3", "shared_avatar_b")

	shared, err := svc.SaveAvatar(ctx, a.ID, strings.NewReader("the shared image"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	refB, err := svc.SaveAvatar(ctx, b.ID, strings.NewReader("the shared image"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if refB != shared {
		t.Fatalf("expected identical content to share ref %s, got %s", shared, refB)
	}

	if _, err = svc.SaveAvatar(ctx, a.ID, strings.NewReader("a new image for a")); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !blobExists(shared) {
		t.Error("expected shared blob to survive while another profile references it")
	}
}

func TestSaveAvatarRejectsEmptyUpload(t *testing.T) {
	p := mustProfile(t, "auth0|sva4", "empty_avatar")

	_, err := svc.SaveAvatar(ctx, p.ID, strings.NewReader(""))
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
