package queue

import (
	"context"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

func (q *notifierImpl) register() {
	notifyQueue := backlite.NewQueue[NotifyJob](q.notify())
	fanOutQueue := backlite.NewQueue[FanOutJob](q.fanOut())

	q.queues.Register(notifyQueue)
	q.queues.Register(fanOutQueue)
}

func (q *notifierImpl) notify() func(context.Context, NotifyJob) error {
	return func(ctx context.Context, task NotifyJob) error {
		n := domain.Notification{
			ID:          xid.New().String(),
			RecipientID: task.RecipientID,
			SenderID:    task.SenderID,
			Kind:        task.Kind,
			SubjectRef:  task.SubjectRef,
			Created:     time.Now(),
		}

		err := q.db.InsertNotification(ctx, n)
		if err != nil {
			log.Error().Err(err).
				Str("recipient", task.RecipientID).
				Str("kind", task.Kind).
				Msg("failed to insert notification")
		}
		return err
	}
}

func (q *notifierImpl) fanOut() func(context.Context, FanOutJob) error {
	return func(ctx context.Context, task FanOutJob) error {
		followers, err := q.db.GetFollowerIDs(ctx, task.AuthorID)
		if err != nil {
			log.Error().Err(err).Str("author", task.AuthorID).Msg("fan-out follower lookup failed")
			return err
		}

		for _, f := range followers {
			next := NotifyJob{
				RecipientID: f,
				SenderID:    task.AuthorID,
				Kind:        domain.NotificationThought,
				SubjectRef:  task.ThoughtID,
			}
			if _, err = backlite.FromContext(ctx).Add(next).Save(); err != nil {
				log.Error().Err(err).Str("to", f).Msg("failed to enqueue notification job")
				return err
			}
		}
		return nil
	}
}
