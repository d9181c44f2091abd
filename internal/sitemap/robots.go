package sitemap

import (
	"fmt"
	"strings"
)

// Private areas crawlers must stay out of.
var disallowPrefixes = []string{
	"/admin/",
	"/login",
	"/signup",
	"/profile/",
	"/my-courses/",
}

// Public content areas explicitly opened up.
var allowPrefixes = []string{
	"/blogs/",
	"/courses/",
	"/events/",
	"/gallery/",
}

// Robots renders the robots.txt artifact: all crawlers allowed,
// private prefixes excluded, and exactly one Sitemap line pointing
// at the sitemap served from the site root.
func (b *Builder) Robots() string {
	var sb strings.Builder

	sb.WriteString("User-agent: *\n")
	for _, prefix := range allowPrefixes {
		fmt.Fprintf(&sb, "Allow: %s\n", prefix)
	}
	for _, prefix := range disallowPrefixes {
		fmt.Fprintf(&sb, "Disallow: %s\n", prefix)
	}
	sb.WriteString("Crawl-delay: 1\n")
	fmt.Fprintf(&sb, "\nSitemap: %s\n", b.absolute("/sitemap.xml"))

	return sb.String()
}
