package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// MeetupView represents read-optimized meetup data
type MeetupView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubscriptionView represents a subscription joined with its meetup
type SubscriptionView struct {
	ID             uuid.UUID `json:"id"`
	MeetupID       uuid.UUID `json:"meetup_id"`
	MeetupTitle    string    `json:"meetup_title"`
	MeetupLocation string    `json:"meetup_location"`
	OrganizerName  string    `json:"organizer_name"`
	StartsAt       time.Time `json:"starts_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// NotificationJobView represents read-optimized notification job data
type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
