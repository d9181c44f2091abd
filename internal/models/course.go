package models

import (
	"time"

	"github.com/google/uuid"
)

// NewCourse creates a new course record with generated UUID and timestamps
func NewCourse(title string) *Course {
	now := time.Now()
	return &Course{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewEvent creates a new event record with generated UUID and timestamps
func NewEvent(title string, startsAt time.Time) *Event {
	now := time.Now()
	return &Event{
		ID:        uuid.New(),
		Title:     title,
		StartsAt:  startsAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
