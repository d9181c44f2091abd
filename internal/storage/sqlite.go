package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Aanya18/robostaan-sitemap/internal/models"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Initialize() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS blogs (
            id TEXT PRIMARY KEY,
            slug TEXT UNIQUE NOT NULL,
            title TEXT NOT NULL,
            author TEXT,
            tags TEXT,
            published INTEGER NOT NULL DEFAULT 1,
            created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
            updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
		`CREATE TABLE IF NOT EXISTS courses (
            id TEXT PRIMARY KEY,
            title TEXT NOT NULL,
            description TEXT,
            category TEXT,
            duration TEXT,
            created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
            updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
		`CREATE TABLE IF NOT EXISTS events (
            id TEXT PRIMARY KEY,
            title TEXT NOT NULL,
            location TEXT,
            starts_at DATETIME NOT NULL,
            created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
            updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
		`CREATE INDEX IF NOT EXISTS idx_blogs_slug ON blogs(slug)`,
		`CREATE INDEX IF NOT EXISTS idx_blogs_updated_at ON blogs(updated_at)`,
		`CREATE INDEX IF NOT EXISTS idx_courses_updated_at ON courses(updated_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("error executing query %s: %w", query, err)
		}
	}

	return nil
}

func (s *SQLiteStore) CreateBlog(ctx context.Context, blog *models.Blog) error {
	query := `
        INSERT INTO blogs (id, slug, title, author, tags, published, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(slug) DO UPDATE SET
            title = excluded.title,
            author = excluded.author,
            tags = excluded.tags,
            published = excluded.published,
            updated_at = CURRENT_TIMESTAMP
    `

	tagsJSON, err := json.Marshal(blog.Tags)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query,
		blog.ID.String(),
		blog.Slug,
		blog.Title,
		blog.Author,
		string(tagsJSON),
		blog.Published,
		blog.CreatedAt,
		blog.UpdatedAt,
	)

	return err
}

func (s *SQLiteStore) GetBlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	query := `
        SELECT id, slug, title, author, tags, published, created_at, updated_at
        FROM blogs
        WHERE slug = ?
    `

	blog := &models.Blog{}
	var idStr, tagsJSON string

	err := s.db.QueryRowContext(ctx, query, slug).Scan(
		&idStr,
		&blog.Slug,
		&blog.Title,
		&blog.Author,
		&tagsJSON,
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

	blog.ID, _ = uuid.Parse(idStr)
	json.Unmarshal([]byte(tagsJSON), &blog.Tags)

	return blog, nil
}

func (s *SQLiteStore) ListBlogs(ctx context.Context) ([]*models.Blog, error) {
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
		var blog models.Blog
		var idStr, tagsJSON string

		err := rows.Scan(
			&idStr,
			&blog.Slug,
			&blog.Title,
			&blog.Author,
			&tagsJSON,
			&blog.Published,
			&blog.CreatedAt,
			&blog.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		blog.ID, _ = uuid.Parse(idStr)
		json.Unmarshal([]byte(tagsJSON), &blog.Tags)

		blogs = append(blogs, &blog)
	}

	return blogs, nil
}

func (s *SQLiteStore) CreateCourse(ctx context.Context, course *models.Course) error {
	query := `
        INSERT INTO courses (id, title, description, category, duration, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            title = excluded.title,
            description = excluded.description,
            category = excluded.category,
            duration = excluded.duration,
            updated_at = CURRENT_TIMESTAMP
    `

	_, err := s.db.ExecContext(ctx, query,
		course.ID.String(),
		course.Title,
		course.Description,
		course.Category,
		course.Duration,
		course.CreatedAt,
		course.UpdatedAt,
	)

	return err
}

func (s *SQLiteStore) GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query := `
        SELECT id, title, description, category, duration, created_at, updated_at
        FROM courses
        WHERE id = ?
    `

	course := &models.Course{}
	var idStr string

	err := s.db.QueryRowContext(ctx, query, id.String()).Scan(
		&idStr,
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

	course.ID, _ = uuid.Parse(idStr)
	return course, nil
}

func (s *SQLiteStore) ListCourses(ctx context.Context) ([]*models.Course, error) {
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
		var course models.Course
		var idStr string

		err := rows.Scan(
			&idStr,
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

		course.ID, _ = uuid.Parse(idStr)
		courses = append(courses, &course)
	}

	return courses, nil
}

func (s *SQLiteStore) CreateEvent(ctx context.Context, event *models.Event) error {
	query := `
        INSERT INTO events (id, title, location, starts_at, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            title = excluded.title,
            location = excluded.location,
            starts_at = excluded.starts_at,
            updated_at = CURRENT_TIMESTAMP
    `

	_, err := s.db.ExecContext(ctx, query,
		event.ID.String(),
		event.Title,
		event.Location,
		event.StartsAt,
		event.CreatedAt,
		event.UpdatedAt,
	)

	return err
}

func (s *SQLiteStore) ListEvents(ctx context.Context, limit, offset int) ([]*models.Event, error) {
	query := `
        SELECT id, title, location, starts_at, created_at, updated_at
        FROM events
        ORDER BY starts_at DESC
        LIMIT ? OFFSET ?
    `

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var event models.Event
		var idStr string

		err := rows.Scan(
			&idStr,
			&event.Title,
			&event.Location,
			&event.StartsAt,
			&event.CreatedAt,
			&event.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		event.ID, _ = uuid.Parse(idStr)
		events = append(events, &event)
	}

	return events, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
