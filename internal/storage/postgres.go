package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Aanya18/robostaan-sitemap/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Initialize() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS blogs (
            id UUID PRIMARY KEY,
            slug VARCHAR(255) UNIQUE NOT NULL,
            title VARCHAR(255) NOT NULL,
            author VARCHAR(255),
            tags TEXT[],
            published BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
		`CREATE TABLE IF NOT EXISTS courses (
            id UUID PRIMARY KEY,
            title VARCHAR(255) NOT NULL,
            description TEXT,
            category VARCHAR(255),
            duration VARCHAR(64),
            created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
		`CREATE TABLE IF NOT EXISTS events (
            id UUID PRIMARY KEY,
            title VARCHAR(255) NOT NULL,
            location VARCHAR(255),
            starts_at TIMESTAMP NOT NULL,
            created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
		`CREATE INDEX IF NOT EXISTS idx_blogs_slug ON blogs(slug)`,
		`CREATE INDEX IF NOT EXISTS idx_blogs_updated_at ON blogs(updated_at)`,
		`CREATE INDEX IF NOT EXISTS idx_courses_updated_at ON courses(updated_at)`,
		`CREATE INDEX IF NOT EXISTS idx_events_starts_at ON events(starts_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("error executing query %s: %w", query, err)
		}
	}

	return nil
}

func (s *PostgresStore) CreateBlog(ctx context.Context, blog *models.Blog) error {
	query := `
        INSERT INTO blogs (id, slug, title, author, tags, published, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (slug) DO UPDATE SET
            title = EXCLUDED.title,
            author = EXCLUDED.author,
            tags = EXCLUDED.tags,
            published = EXCLUDED.published,
            updated_at = CURRENT_TIMESTAMP
    `

	_, err := s.db.ExecContext(ctx, query,
		blog.ID,
		blog.Slug,
		blog.Title,
		blog.Author,
		pq.Array(blog.Tags),
		blog.Published,
		blog.CreatedAt,
		blog.UpdatedAt,
	)

	return err
}

func (s *PostgresStore) GetBlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	query := `
        SELECT id, slug, title, author, tags, published, created_at, updated_at
        FROM blogs
        WHERE slug = $1
    `

	blog := &models.Blog{}
	var tags []string

	err := s.db.QueryRowContext(ctx, query, slug).Scan(
		&blog.ID,
		&blog.Slug,
		&blog.Title,
		&blog.Author,
		pq.Array(&tags),
		&blog.Published,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	blog.Tags = tags
	return blog, nil
}

func (s *PostgresStore) ListBlogs(ctx context.Context) ([]*models.Blog, error) {
	query := `
        SELECT id, slug, title, author, tags, published, created_at, updated_at
        FROM blogs
        ORDER BY updated_at DESC
    `

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []*models.Blog
	for rows.Next() {
		blog := &models.Blog{}
		var tags []string

		err := rows.Scan(
			&blog.ID,
			&blog.Slug,
			&blog.Title,
			&blog.Author,
			pq.Array(&tags),
			&blog.Published,
			&blog.CreatedAt,
			&blog.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		blog.Tags = tags
		blogs = append(blogs, blog)
	}

	return blogs, nil
}

func (s *PostgresStore) CreateCourse(ctx context.Context, course *models.Course) error {
	query := `
        INSERT INTO courses (id, title, description, category, duration, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO UPDATE SET
            title = EXCLUDED.title,
            description = EXCLUDED.description,
            category = EXCLUDED.category,
            duration = EXCLUDED.duration,
            updated_at = CURRENT_TIMESTAMP
    `

	_, err := s.db.ExecContext(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.Category,
		course.Duration,
		course.CreatedAt,
		course.UpdatedAt,
	)

	return err
}

func (s *PostgresStore) GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query := `
        SELECT id, title, description, category, duration, created_at, updated_at
        FROM courses
        WHERE id = $1
    `

	course := &models.Course{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Category,
		&course.Duration,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return course, nil
}

func (s *PostgresStore) ListCourses(ctx context.Context) ([]*models.Course, error) {
	query := `
        SELECT id, title, description, category, duration, created_at, updated_at
        FROM courses
        ORDER BY updated_at DESC
    `

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&course.Category,
			&course.Duration,
			&course.CreatedAt,
			&course.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		courses = append(courses, course)
	}

	return courses, nil
}

func (s *PostgresStore) CreateEvent(ctx context.Context, event *models.Event) error {
	query := `
        INSERT INTO events (id, title, location, starts_at, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO UPDATE SET
            title = EXCLUDED.title,
            location = EXCLUDED.location,
            starts_at = EXCLUDED.starts_at,
            updated_at = CURRENT_TIMESTAMP
    `

	_, err := s.db.ExecContext(ctx, query,
		event.ID,
		event.Title,
		event.Location,
		event.StartsAt,
		event.CreatedAt,
		event.UpdatedAt,
	)

	return err
}

func (s *PostgresStore) ListEvents(ctx context.Context, limit, offset int) ([]*models.Event, error) {
	query := `
        SELECT id, title, location, starts_at, created_at, updated_at
        FROM events
        ORDER BY starts_at DESC
        LIMIT $1 OFFSET $2
    `

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Location,
			&event.StartsAt,
			&event.CreatedAt,
			&event.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	return events, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
