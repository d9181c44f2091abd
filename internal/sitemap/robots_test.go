package sitemap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRobotsContainsSingleSitemapLine(t *testing.T) {
	b := NewBuilder("https://example.com")

	robots := b.Robots()

	count := strings.Count(robots, "Sitemap:")
	assert.Equal(t, 1, count)
	assert.Contains(t, robots, "Sitemap: https://example.com/sitemap.xml")
}

func TestRobotsTemplate(t *testing.T) {
	b := NewBuilder("https://example.com")

	robots := b.Robots()

	assert.True(t, strings.HasPrefix(robots, "User-agent: *\n"))
	assert.Contains(t, robots, "Crawl-delay: 1\n")
	for _, prefix := range disallowPrefixes {
		assert.Contains(t, robots, "Disallow: "+prefix+"\n")
	}
	for _, prefix := range allowPrefixes {
		assert.Contains(t, robots, "Allow: "+prefix+"\n")
	}
}

func TestRobotsOriginNormalized(t *testing.T) {
	b := NewBuilder("https://example.com/")

	assert.Contains(t, b.Robots(), "Sitemap: https://example.com/sitemap.xml")
	assert.NotContains(t, b.Robots(), "example.com//")
}
