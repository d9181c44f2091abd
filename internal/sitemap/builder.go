package sitemap

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/Aanya18/robostaan-sitemap/internal/models"
)

const lastModLayout = "2006-01-02"

// Fixed crawl-hint policy for dynamic entries. Per-entry overrides
// apply to static pages only.
const (
	blogChangeFreq   = Weekly
	blogPriority     = 0.8
	courseChangeFreq = Monthly
	coursePriority   = 0.7
)

// Builder turns fetched content into sitemap and robots artifacts,
// prefixing every path with the configured site origin.
type Builder struct {
	origin string
}

func NewBuilder(origin string) *Builder {
	return &Builder{origin: strings.TrimRight(origin, "/")}
}

// Origin returns the normalized site origin (no trailing slash).
func (b *Builder) Origin() string {
	return b.origin
}

// BuildDocument assembles the three sequences from the static route
// table and a fetch result. Entries are created fresh per run.
func (b *Builder) BuildDocument(result *FetchResult) *Document {
	doc := &Document{
		Static: StaticRoutes(),
	}

	for _, blog := range result.Blogs {
		lastMod := blog.UpdatedAt
		doc.Blogs = append(doc.Blogs, Entry{
			Kind:    KindBlog,
			Path:    "/blogs/" + blog.Slug,
			LastMod: &lastMod,
		})
	}

	for _, course := range result.Courses {
		lastMod := course.UpdatedAt
		doc.Courses = append(doc.Courses, Entry{
			Kind:    KindCourse,
			Path:    "/courses/" + course.ID.String(),
			LastMod: &lastMod,
		})
	}

	return doc
}

// Sitemap serializes the document into an XML sitemap string.
func (b *Builder) Sitemap(doc *Document) (string, error) {
	sm := models.Sitemap{Xmlns: models.SitemapNamespace}

	for _, seq := range [][]Entry{doc.Static, doc.Blogs, doc.Courses} {
		for _, entry := range seq {
			sm.URLs = append(sm.URLs, b.urlFor(entry))
		}
	}

	out, err := xml.MarshalIndent(sm, "", "  ")
	if err != nil {
		return "", err
	}

	return xml.Header + string(out) + "\n", nil
}

func (b *Builder) urlFor(entry Entry) models.URL {
	u := models.URL{Loc: b.absolute(entry.Path)}

	if entry.LastMod != nil && !entry.LastMod.IsZero() {
		u.LastMod = entry.LastMod.Format(lastModLayout)
	}

	switch entry.Kind {
	case KindBlog:
		u.ChangeFreq = string(blogChangeFreq)
		u.Priority = formatPriority(blogPriority)
	case KindCourse:
		u.ChangeFreq = string(courseChangeFreq)
		u.Priority = formatPriority(coursePriority)
	default:
		if entry.ChangeFreq != "" {
			u.ChangeFreq = string(entry.ChangeFreq)
		}
		if entry.Priority != nil {
			u.Priority = formatPriority(*entry.Priority)
		}
	}

	return u
}

// absolute joins the origin and a site-relative path without
// producing a double slash at the seam.
func (b *Builder) absolute(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b.origin + path
}

// formatPriority renders without trailing zeros: 1.0 -> "1", 0.8 -> "0.8".
func formatPriority(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
