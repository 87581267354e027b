package impl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
	"github.com/iamanderson-dev/thoughts-app/internal/service"
	"github.com/iamanderson-dev/thoughts-app/internal/validate"
)

const DefaultFeedLimit = 50

func (s *AppService) PostThought(ctx context.Context, authorID, content string) (domain.Thought, error) {
	content = strings.TrimSpace(content)
	if err := validate.ThoughtContent(content); err != nil {
		return domain.Thought{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	t := domain.Thought{
		ID:       xid.New().String(),
		AuthorID: authorID,
		Content:  content,
		Created:  time.Now(),
	}
	if err := s.DB.InsertThought(ctx, t); err != nil {
		return domain.Thought{}, err
	}

	// Notification delivery is best effort; the post already committed.
	if err := s.notifier.ThoughtPosted(ctx, authorID, t.ID); err != nil {
		log.Error().Err(err).Str("thought", t.ID).Msg("failed to enqueue thought fan-out")
	}
	return t, nil
}

func (s *AppService) DeleteThought(ctx context.Context, id, authorID string) error {
	return s.DB.DeleteThought(ctx, id, authorID)
}

func (s *AppService) Feed(ctx context.Context, limit int) ([]domain.ThoughtWithAuthor, error) {
	if limit <= 0 || limit > DefaultFeedLimit {
		limit = DefaultFeedLimit
	}
	return s.DB.GetRecentThoughts(ctx, limit)
}
