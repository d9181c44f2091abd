package sitemap

import (
	"context"
	"fmt"

	"github.com/Aanya18/robostaan-sitemap/internal/models"
	"github.com/Aanya18/robostaan-sitemap/internal/storage"
)

// FetchResult carries whatever content records could be retrieved.
// Partial is set when one or both queries failed; Reasons records
// what went wrong so the caller can decide whether to log it.
type FetchResult struct {
	Blogs   []*models.Blog
	Courses []*models.Course
	Partial bool
	Reasons []string
}

type Fetcher struct {
	store storage.Store
}

func NewFetcher(store storage.Store) *Fetcher {
	return &Fetcher{store: store}
}

// Fetch retrieves all blogs and courses, most recently updated first.
// It never returns an error: a failing query contributes an empty
// sequence so sitemap generation can always proceed on static data.
func (f *Fetcher) Fetch(ctx context.Context) *FetchResult {
	result := &FetchResult{}

	blogs, err := f.store.ListBlogs(ctx)
	if err != nil {
		result.Partial = true
		result.Reasons = append(result.Reasons, fmt.Sprintf("blogs: %v", err))
	} else {
		result.Blogs = blogs
	}

	courses, err := f.store.ListCourses(ctx)
	if err != nil {
		result.Partial = true
		result.Reasons = append(result.Reasons, fmt.Sprintf("courses: %v", err))
	} else {
		result.Courses = courses
	}

	return result
}
