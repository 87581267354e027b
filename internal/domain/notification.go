package domain

import "time"

// Notification kinds.
const (
	NotificationFollow  = "follow"
	NotificationThought = "thought"
)

// Notification is created by the system in response to a follow or a new
// thought from a followed profile. Only the recipient may flip IsRead.
type Notification struct {
	ID          string
	RecipientID string
	SenderID    string
	Kind        string
	// SubjectRef points at the thing the notification is about: a thought
	// ID for NotificationThought, the sender's profile ID for
	// NotificationFollow.
	SubjectRef string
	IsRead     bool
	Created    time.Time
}
