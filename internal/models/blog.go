package models

import (
	"time"

	"github.com/google/uuid"
)

// NewBlog creates a new blog record with generated UUID and timestamps
func NewBlog(slug, title string) *Blog {
	now := time.Now()
	return &Blog{
		ID:        uuid.New(),
		Slug:      slug,
		Title:     title,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
