package request

import (
	"time"

	"github.com/google/uuid"

	"meetup-api/internal/domain/meetup"
)

type CreateMeetupRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
}

func (r *CreateMeetupRequest) ToDomain(ownerID uuid.UUID, now time.Time) (*meetup.Meetup, error) {
	title, err := meetup.NewTitle(r.Title)
	if err != nil {
		return nil, err
	}
	return meetup.NewMeetup(ownerID, title, r.Description, r.Location, r.StartsAt, now)
}

type UpdateMeetupRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
}

func (r *UpdateMeetupRequest) ToDomain(ownerID uuid.UUID, now time.Time) (*meetup.Meetup, error) {
	title, err := meetup.NewTitle(r.Title)
	if err != nil {
		return nil, err
	}
	return meetup.NewMeetup(ownerID, title, r.Description, r.Location, r.StartsAt, now)
}
