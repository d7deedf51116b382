package response

import (
	"time"

	"github.com/google/uuid"

	"meetup-api/internal/usecase/queries"
)

type SubscriptionResponse struct {
	ID             uuid.UUID `json:"id"`
	MeetupID       uuid.UUID `json:"meetup_id"`
	MeetupTitle    string    `json:"meetup_title,omitempty"`
	MeetupLocation string    `json:"meetup_location,omitempty"`
	OrganizerName  string    `json:"organizer_name,omitempty"`
	StartsAt       time.Time `json:"starts_at"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromSubscriptionView(v *queries.SubscriptionView) SubscriptionResponse {
	return SubscriptionResponse{
		ID:             v.ID,
		MeetupID:       v.MeetupID,
		MeetupTitle:    v.MeetupTitle,
		MeetupLocation: v.MeetupLocation,
		OrganizerName:  v.OrganizerName,
		StartsAt:       v.StartsAt,
		CreatedAt:      v.CreatedAt,
	}
}

func FromSubscriptionViews(vs []*queries.SubscriptionView) []SubscriptionResponse {
	result := make([]SubscriptionResponse, len(vs))
	for i, v := range vs {
		result[i] = FromSubscriptionView(v)
	}
	return result
}
