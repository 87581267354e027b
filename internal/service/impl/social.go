package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/iamanderson-dev/thoughts-app/internal/db"
	"github.com/iamanderson-dev/thoughts-app/internal/domain"
	"github.com/iamanderson-dev/thoughts-app/internal/service"
)

func (s *AppService) Follow(ctx context.Context, followerID, handle string) error {
	target, err := s.DB.GetProfileByHandle(ctx, strings.TrimSpace(handle))
	if err != nil {
		return err
	}
	if target.ID == followerID {
		return fmt.Errorf("%w: cannot follow yourself", service.ErrInvalidInput)
	}

	err = s.DB.InsertFollow(ctx, followerID, target.ID)
	if err != nil {
		// Already following: the desired state holds, nothing to notify.
		if errors.Is(err, db.ErrDuplicateKey) {
			return nil
		}
		return err
	}

	if err = s.notifier.Followed(ctx, followerID, target.ID); err != nil {
		log.Error().Err(err).Str("followee", target.ID).Msg("failed to enqueue follow notification")
	}
	return nil
}

func (s *AppService) Unfollow(ctx context.Context, followerID, handle string) error {
	target, err := s.DB.GetProfileByHandle(ctx, strings.TrimSpace(handle))
	if err != nil {
		return err
	}

	err = s.DB.DeleteFollow(ctx, followerID, target.ID)
	if errors.Is(err, db.ErrNotFound) {
		// Not following: unfollow is idempotent.
		return nil
	}
	return err
}

func (s *AppService) Followers(ctx context.Context, handle string, limit int) ([]domain.Profile, error) {
	if limit <= 0 || limit > DefaultFeedLimit {
		limit = DefaultFeedLimit
	}
	p, err := s.DB.GetProfileByHandle(ctx, strings.TrimSpace(handle))
	if err != nil {
		return nil, err
	}
	return s.DB.GetFollowerProfiles(ctx, p.ID, limit)
}

func (s *AppService) Following(ctx context.Context, handle string, limit int) ([]domain.Profile, error) {
	if limit <= 0 || limit > DefaultFeedLimit {
		limit = DefaultFeedLimit
	}
	p, err := s.DB.GetProfileByHandle(ctx, strings.TrimSpace(handle))
	if err != nil {
		return nil, err
	}
	return s.DB.GetFollowingProfiles(ctx, p.ID, limit)
}
