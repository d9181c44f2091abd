package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Aanya18/robostaan-sitemap/internal/models"
	"github.com/Aanya18/robostaan-sitemap/internal/sitemap"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	blogs      []*models.Blog
	courses    []*models.Course
	events     []*models.Event
	listErr    error
	coursesErr error
}

func (s *fakeStore) Initialize() error { return nil }
func (s *fakeStore) Close() error      { return nil }

func (s *fakeStore) CreateBlog(ctx context.Context, blog *models.Blog) error { return nil }
func (s *fakeStore) GetBlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	for _, b := range s.blogs {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, nil
}
func (s *fakeStore) ListBlogs(ctx context.Context) ([]*models.Blog, error) {
	return s.blogs, s.listErr
}

func (s *fakeStore) CreateCourse(ctx context.Context, course *models.Course) error { return nil }
func (s *fakeStore) GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	for _, c := range s.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (s *fakeStore) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses, s.coursesErr
}

func (s *fakeStore) CreateEvent(ctx context.Context, event *models.Event) error { return nil }
func (s *fakeStore) ListEvents(ctx context.Context, limit, offset int) ([]*models.Event, error) {
	if offset >= len(s.events) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.events) {
		end = len(s.events)
	}
	return s.events[offset:end], nil
}

func newTestRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(store, sitemap.NewBuilder("https://example.com"))

	router.GET("/sitemap.xml", handler.Sitemap)
	router.GET("/robots.txt", handler.Robots)
	router.GET("/api/blogs", handler.ListBlogs)
	router.GET("/api/blogs/:slug", handler.GetBlog)
	router.GET("/api/courses", handler.ListCourses)
	router.GET("/api/courses/:id", handler.GetCourse)
	router.GET("/api/events", handler.ListEvents)

	return router
}

func doRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestSitemapEndpoint(t *testing.T) {
	store := &fakeStore{
		blogs:   []*models.Blog{models.NewBlog("intro-post", "Intro Post")},
		courses: []*models.Course{models.NewCourse("Robotics 101")},
	}
	router := newTestRouter(store)

	w := doRequest(router, "/sitemap.xml")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Body.String(), "<loc>https://example.com/blogs/intro-post</loc>")
	assert.Contains(t, w.Body.String(), "<loc>https://example.com/</loc>")
}

func TestSitemapEndpointDegradesOnStoreError(t *testing.T) {
	store := &fakeStore{
		listErr:    errors.New("db down"),
		coursesErr: errors.New("db down"),
	}
	router := newTestRouter(store)

	w := doRequest(router, "/sitemap.xml")

	// Fail open: static pages are still served.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<loc>https://example.com/</loc>")
	assert.NotContains(t, w.Body.String(), "/blogs/intro-post")
}

func TestRobotsEndpoint(t *testing.T) {
	router := newTestRouter(&fakeStore{})

	w := doRequest(router, "/robots.txt")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, 1, strings.Count(w.Body.String(), "Sitemap:"))
	assert.Contains(t, w.Body.String(), "Sitemap: https://example.com/sitemap.xml")
}

func TestListBlogs(t *testing.T) {
	store := &fakeStore{
		blogs: []*models.Blog{models.NewBlog("a", "A"), models.NewBlog("b", "B")},
	}
	router := newTestRouter(store)

	w := doRequest(router, "/api/blogs")

	require.Equal(t, http.StatusOK, w.Code)
	var blogs []*models.Blog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &blogs))
	assert.Len(t, blogs, 2)
}

func TestGetBlogNotFound(t *testing.T) {
	router := newTestRouter(&fakeStore{})

	w := doRequest(router, "/api/blogs/no-such-post")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCourse(t *testing.T) {
	course := models.NewCourse("Robotics 101")
	router := newTestRouter(&fakeStore{courses: []*models.Course{course}})

	w := doRequest(router, "/api/courses/"+course.ID.String())
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, course.ID, got.ID)
}

func TestGetCourseInvalidID(t *testing.T) {
	router := newTestRouter(&fakeStore{})

	w := doRequest(router, "/api/courses/not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListEventsPagination(t *testing.T) {
	store := &fakeStore{}
	for i := 0; i < 5; i++ {
		store.events = append(store.events, &models.Event{ID: uuid.New(), Title: "Workshop"})
	}
	router := newTestRouter(store)

	w := doRequest(router, "/api/events?page=2&limit=3")
	require.Equal(t, http.StatusOK, w.Code)

	var resp PaginationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 3, resp.Limit)
}
