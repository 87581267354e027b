package impl

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/iamanderson-dev/thoughts-app/internal/db"
	"github.com/iamanderson-dev/thoughts-app/internal/domain"
	"github.com/iamanderson-dev/thoughts-app/internal/service"
	"github.com/iamanderson-dev/thoughts-app/internal/storage"
	"github.com/iamanderson-dev/thoughts-app/internal/validate"
)

func (s *AppService) GetProfile(ctx context.Context, handle string) (domain.ProfileView, error) {
	handle = strings.TrimSpace(handle)

	p, err := s.DB.GetProfileByHandle(ctx, handle)
	if err != nil {
		return domain.ProfileView{}, err
	}

	followers, err := s.DB.CountFollowers(ctx, p.ID)
	if err != nil {
		return domain.ProfileView{}, err
	}
	following, err := s.DB.CountFollowing(ctx, p.ID)
	if err != nil {
		return domain.ProfileView{}, err
	}

	return domain.ProfileView{
		Profile:        p,
		FollowerCount:  followers,
		FollowingCount: following,
	}, nil
}

func (s *AppService) ProfileThoughts(ctx context.Context, handle string, limit int) ([]domain.Thought, error) {
	if limit <= 0 || limit > DefaultFeedLimit {
		limit = DefaultFeedLimit
	}

	p, err := s.DB.GetProfileByHandle(ctx, strings.TrimSpace(handle))
	if err != nil {
		return nil, err
	}
	return s.DB.GetThoughtsByAuthor(ctx, p.ID, limit)
}

func (s *AppService) UpdateProfile(ctx context.Context, id, name, handle, bio string) (domain.Profile, error) {
	name = strings.TrimSpace(name)
	handle = strings.ToLower(strings.TrimSpace(handle))
	bio = strings.TrimSpace(bio)

	if err := validate.ProfileForm(name, handle, bio); err != nil {
		return domain.Profile{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	current, err := s.DB.GetProfile(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}

	// A handle change re-enters the shared namespace; the unique index has
	// the final word at update time.
	if !strings.EqualFold(handle, current.Handle) {
		taken, err := s.DB.HandleTaken(ctx, handle)
		if err != nil {
			return domain.Profile{}, err
		}
		if taken {
			return domain.Profile{}, fmt.Errorf("%w: handle %q is taken", service.ErrConflict, handle)
		}
	}

	current.DisplayName = name
	current.Handle = handle
	current.Bio = bio
	if err = s.DB.UpdateProfile(ctx, current); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return domain.Profile{}, fmt.Errorf("%w: handle %q is taken", service.ErrConflict, handle)
		}
		return domain.Profile{}, err
	}
	return current, nil
}

func (s *AppService) SaveAvatar(ctx context.Context, id string, content io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(content, 1<<22)) // 4 MiB cap
	if err != nil {
		return "", fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty avatar upload", service.ErrInvalidInput)
	}

	current, err := s.DB.GetProfile(ctx, id)
	if err != nil {
		return "", err
	}

	// Content addressed: re-uploading the same image is a no-op.
	sum := sha256.Sum256(data)
	ref := "avatar_" + hex.EncodeToString(sum[:8])

	err = s.blobs.Create(bytes.NewReader(data), ref)
	if err != nil && !errors.Is(err, storage.ErrAlreadyExists) {
		return "", err
	}

	if err = s.DB.SetAvatar(ctx, id, ref); err != nil {
		return "", err
	}

	s.reapAvatar(ctx, current.AvatarRef, ref)
	return ref, nil
}

// reapAvatar deletes the superseded blob, unless another profile still
// points at it. Best effort: an orphaned blob is preferable to a failed
// upload.
func (s *AppService) reapAvatar(ctx context.Context, old, replacement string) {
	if old == "" || old == replacement {
		return
	}

	inUse, err := s.DB.AvatarInUse(ctx, old)
	if err != nil {
		log.Error().Err(err).Str("ref", old).Msg("could not check avatar references")
		return
	}
	if inUse {
		return
	}
	if err = s.blobs.Delete(old); err != nil && !errors.Is(err, storage.ErrNotExist) {
		log.Error().Err(err).Str("ref", old).Msg("failed to delete superseded avatar")
	}
}

func (s *AppService) Avatar(ctx context.Context, ref string) ([]byte, error) {
	data, err := s.blobs.Open(ref)
	if errors.Is(err, storage.ErrNotExist) {
		return nil, db.ErrNotFound
	}
	return data, err
}
