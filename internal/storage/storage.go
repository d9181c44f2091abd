package storage

import (
	"context"

	"github.com/Aanya18/robostaan-sitemap/internal/models"
	"github.com/google/uuid"
)

type Store interface {
	Initialize() error
	Close() error

	// Blog operations
	CreateBlog(ctx context.Context, blog *models.Blog) error
	GetBlogBySlug(ctx context.Context, slug string) (*models.Blog, error)
	ListBlogs(ctx context.Context) ([]*models.Blog, error)

	// Course operations
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error)
	ListCourses(ctx context.Context) ([]*models.Course, error)

	// Event operations
	CreateEvent(ctx context.Context, event *models.Event) error
	ListEvents(ctx context.Context, limit, offset int) ([]*models.Event, error)
}
