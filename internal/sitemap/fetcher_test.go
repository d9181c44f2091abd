package sitemap

import (
	"context"
	"errors"
	"testing"

	"github.com/Aanya18/robostaan-sitemap/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubStore struct {
	blogs      []*models.Blog
	courses    []*models.Course
	blogsErr   error
	coursesErr error
}

func (s *stubStore) Initialize() error { return nil }
func (s *stubStore) Close() error      { return nil }

func (s *stubStore) CreateBlog(ctx context.Context, blog *models.Blog) error { return nil }
func (s *stubStore) GetBlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	return nil, nil
}
func (s *stubStore) ListBlogs(ctx context.Context) ([]*models.Blog, error) {
	return s.blogs, s.blogsErr
}

func (s *stubStore) CreateCourse(ctx context.Context, course *models.Course) error { return nil }
func (s *stubStore) GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return nil, nil
}
func (s *stubStore) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses, s.coursesErr
}

func (s *stubStore) CreateEvent(ctx context.Context, event *models.Event) error { return nil }
func (s *stubStore) ListEvents(ctx context.Context, limit, offset int) ([]*models.Event, error) {
	return nil, nil
}

func TestFetchComplete(t *testing.T) {
	store := &stubStore{
		blogs:   []*models.Blog{models.NewBlog("a", "A")},
		courses: []*models.Course{models.NewCourse("C")},
	}

	result := NewFetcher(store).Fetch(context.Background())

	assert.False(t, result.Partial)
	assert.Empty(t, result.Reasons)
	assert.Len(t, result.Blogs, 1)
	assert.Len(t, result.Courses, 1)
}

func TestFetchFailsOpenOnBlogError(t *testing.T) {
	store := &stubStore{
		blogsErr: errors.New("connection refused"),
		courses:  []*models.Course{models.NewCourse("C")},
	}

	result := NewFetcher(store).Fetch(context.Background())

	assert.True(t, result.Partial)
	assert.Len(t, result.Reasons, 1)
	assert.Contains(t, result.Reasons[0], "blogs")
	assert.Empty(t, result.Blogs)
	assert.Len(t, result.Courses, 1)
}

func TestFetchFailsOpenOnBothErrors(t *testing.T) {
	store := &stubStore{
		blogsErr:   errors.New("connection refused"),
		coursesErr: errors.New("connection refused"),
	}

	result := NewFetcher(store).Fetch(context.Background())

	assert.True(t, result.Partial)
	assert.Len(t, result.Reasons, 2)
	assert.Empty(t, result.Blogs)
	assert.Empty(t, result.Courses)
}
