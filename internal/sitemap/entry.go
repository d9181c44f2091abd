package sitemap

import "time"

// ChangeFreq is the set of crawl-hint values the sitemap protocol allows.
type ChangeFreq string

const (
	Always  ChangeFreq = "always"
	Hourly  ChangeFreq = "hourly"
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
	Never   ChangeFreq = "never"
)

// EntryKind tags an entry with the sequence it belongs to. Blog and
// course entries serialize with a fixed changefreq/priority; only
// static entries carry per-entry overrides.
type EntryKind int

const (
	KindStatic EntryKind = iota
	KindBlog
	KindCourse
)

// Entry is one advertised URL. Path is site-relative; the builder
// prefixes the configured origin at serialization time.
type Entry struct {
	Kind       EntryKind
	Path       string
	LastMod    *time.Time
	ChangeFreq ChangeFreq
	Priority   *float64
}

// Document holds the three ordered sequences assembled per run.
type Document struct {
	Static  []Entry
	Blogs   []Entry
	Courses []Entry
}

// Len returns the total number of entries across all sequences.
func (d *Document) Len() int {
	return len(d.Static) + len(d.Blogs) + len(d.Courses)
}

func floatPtr(f float64) *float64 {
	return &f
}
