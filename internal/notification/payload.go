package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	KindEmail = "email"

	TopicSubscriptionCreated = "subscription_created"
)

// SubscriptionCreatedPayload is the job payload enqueued with the ledger
// insert. It snapshots everything the mail needs so delivery does not go
// back to the database.
type SubscriptionCreatedPayload struct {
	SubscriptionID  uuid.UUID `json:"subscription_id"`
	MeetupID        uuid.UUID `json:"meetup_id"`
	MeetupTitle     string    `json:"meetup_title"`
	StartsAt        time.Time `json:"starts_at"`
	OrganizerName   string    `json:"organizer_name"`
	OrganizerEmail  string    `json:"organizer_email"`
	SubscriberName  string    `json:"subscriber_name"`
	SubscriberEmail string    `json:"subscriber_email"`
}
