package queue

import (
	"time"

	"github.com/mikestefanello/backlite"
)

const (
	NotifyQueue = "Notify"
	FanOutQueue = "FanOut"
)

// NotifyJob inserts a single notification row.
type NotifyJob struct {
	RecipientID string
	SenderID    string
	Kind        string
	SubjectRef  string
}

func (j NotifyJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        NotifyQueue,
		MaxAttempts: 5,
		Backoff:     5 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}

// FanOutJob expands a new thought into one NotifyJob per follower.
type FanOutJob struct {
	AuthorID  string
	ThoughtID string
}

func (j FanOutJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        FanOutQueue,
		MaxAttempts: 5,
		Backoff:     5 * time.Second,
		Timeout:     30 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}
