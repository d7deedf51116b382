//go:build unit || e2e

package builder

import (
	"time"

	"meetup-api/internal/domain/meetup"
	reqdto "meetup-api/internal/handler/dto/request"
	"meetup-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type MeetupBuilder struct {
	OwnerID     uuid.UUID
	OwnerName   string
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	Now         time.Time
}

func NewMeetupBuilder() *MeetupBuilder {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &MeetupBuilder{
		OwnerID:     uuid.New(),
		OwnerName:   "Hanako Organizer",
		Title:       "Go Night Tokyo",
		Description: "An evening of talks and pizza",
		Location:    "Community Hall",
		StartsAt:    now.Add(48 * time.Hour),
		Now:         now,
	}
}

func (m *MeetupBuilder) With(mutate func(*MeetupBuilder)) *MeetupBuilder {
	mutate(m)
	return m
}

func (m *MeetupBuilder) BuildDomain() (*meetup.Meetup, error) {
	title, err := meetup.NewTitle(m.Title)
	if err != nil {
		return nil, err
	}
	return meetup.NewMeetup(m.OwnerID, title, m.Description, m.Location, m.StartsAt, m.Now)
}

func (m *MeetupBuilder) BuildSnapshot() meetup.Snapshot {
	return meetup.Snapshot{
		ID:       uuid.New(),
		OwnerID:  m.OwnerID,
		Title:    m.Title,
		StartsAt: m.StartsAt,
	}
}

func (m *MeetupBuilder) BuildDTO() reqdto.CreateMeetupRequest {
	return reqdto.CreateMeetupRequest{
		Title:       m.Title,
		Description: m.Description,
		Location:    m.Location,
		StartsAt:    m.StartsAt,
	}
}

func (m *MeetupBuilder) BuildView() *queries.MeetupView {
	now := time.Now()
	return &queries.MeetupView{
		ID:          uuid.New(),
		OwnerID:     m.OwnerID,
		OwnerName:   m.OwnerName,
		Title:       m.Title,
		Description: m.Description,
		Location:    m.Location,
		StartsAt:    m.StartsAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Fluent builder methods
func (m *MeetupBuilder) WithOwner(ownerID uuid.UUID) *MeetupBuilder {
	m.OwnerID = ownerID
	return m
}

func (m *MeetupBuilder) WithTitle(title string) *MeetupBuilder {
	m.Title = title
	return m
}

func (m *MeetupBuilder) WithStartsAt(startsAt time.Time) *MeetupBuilder {
	m.StartsAt = startsAt
	return m
}

func (m *MeetupBuilder) AlreadyHappened() *MeetupBuilder {
	m.StartsAt = m.Now.Add(-24 * time.Hour)
	return m
}
