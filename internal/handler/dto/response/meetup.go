package response

import (
	"time"

	"github.com/google/uuid"

	"meetup-api/internal/usecase/queries"
)

type MeetupResponse struct {
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

func FromMeetupView(v *queries.MeetupView) MeetupResponse {
	return MeetupResponse{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		OwnerName:   v.OwnerName,
		Title:       v.Title,
		Description: v.Description,
		Location:    v.Location,
		StartsAt:    v.StartsAt,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromMeetupViews(vs []*queries.MeetupView) []MeetupResponse {
	result := make([]MeetupResponse, len(vs))
	for i, v := range vs {
		result[i] = FromMeetupView(v)
	}
	return result
}
