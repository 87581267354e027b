// Package queue delivers notifications off the request path. Follow events
// and new thoughts are enqueued here and turned into notification rows by
// background processors, so a slow fan-out never delays the poster.
package queue

import (
	"context"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"

	"github.com/iamanderson-dev/thoughts-app/internal/db"
	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

type Notifier interface {
	// Followed records that follower started following followee.
	Followed(ctx context.Context, followerID, followeeID string) error
	// ThoughtPosted fans a new thought out to the author's followers.
	ThoughtPosted(ctx context.Context, authorID, thoughtID string) error
}

type notifierImpl struct {
	db     db.DB
	queues *backlite.Client
}

func New(ctx context.Context, db db.DB, blClient *backlite.Client) Notifier {
	q := &notifierImpl{
		db:     db,
		queues: blClient,
	}
	q.register()
	q.queues.Start(ctx)
	log.Info().Msg("started task queue")
	return q
}

func (q *notifierImpl) Followed(ctx context.Context, followerID, followeeID string) error {
	log.Debug().
		Str("follower", followerID).
		Str("followee", followeeID).
		Msg("enqueueing follow notification")

	task := NotifyJob{
		RecipientID: followeeID,
		SenderID:    followerID,
		Kind:        domain.NotificationFollow,
		SubjectRef:  followerID,
	}
	_, err := q.queues.Add(task).Save()
	return err
}

func (q *notifierImpl) ThoughtPosted(ctx context.Context, authorID, thoughtID string) error {
	task := FanOutJob{
		AuthorID:  authorID,
		ThoughtID: thoughtID,
	}
	_, err := q.queues.Add(task).Save()
	return err
}
