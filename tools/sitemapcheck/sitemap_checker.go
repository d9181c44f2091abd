// tools/sitemapcheck/sitemap_checker.go
//
// One-off checker for a deployed site: fetches sitemap.xml and
// robots.txt, validates their shape, and spot-visits a few listed
// pages to confirm they resolve and carry sensible metadata.
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"golang.org/x/net/html"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []URL    `xml:"url"`
}

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func main() {
	origin := "https://robostaan.in"

	// Fetch and parse sitemap
	sitemap, err := fetchSitemap(origin + "/sitemap.xml")
	if err != nil {
		log.Fatalf("Error fetching sitemap: %v", err)
	}

	fmt.Printf("Total URLs found: %d\n\n", len(sitemap.URLs))

	checkLocations(sitemap, origin)
	checkRobots(origin)

	// Spot-visit a sample of listed pages
	samplesToVisit := 3
	if len(sitemap.URLs) > 0 {
		visitSamples(sitemap, samplesToVisit)

		fmt.Println("\n--- Meta tags on first sample ---")
		doc, err := fetchAndParseHTML(sitemap.URLs[0].Loc)
		if err != nil {
			log.Printf("Error fetching page: %v", err)
		} else {
			printMetaTags(doc)
		}
	}
}

func checkLocations(sitemap *Sitemap, origin string) {
	fmt.Println("--- Location checks ---")
	bad := 0
	for _, u := range sitemap.URLs {
		if !strings.HasPrefix(u.Loc, origin) {
			fmt.Printf("loc outside origin: %s\n", u.Loc)
			bad++
			continue
		}
		rest := strings.TrimPrefix(u.Loc, origin)
		if strings.HasPrefix(rest, "//") {
			fmt.Printf("double slash at join: %s\n", u.Loc)
			bad++
		}
	}
	if bad == 0 {
		fmt.Println("All locations absolute and clean")
	}
}

func checkRobots(origin string) {
	fmt.Println("\n--- robots.txt checks ---")
	resp, err := http.Get(origin + "/robots.txt")
	if err != nil {
		log.Printf("Error fetching robots.txt: %v", err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Error reading robots.txt: %v", err)
		return
	}

	sitemapLines := 0
	for _, line := range strings.Split(string(body), "\n") {
		if strings.HasPrefix(line, "Sitemap:") {
			sitemapLines++
			fmt.Printf("Found: %s\n", strings.TrimSpace(line))
		}
	}

	if sitemapLines != 1 {
		fmt.Printf("Expected exactly one Sitemap line, found %d\n", sitemapLines)
	}
}

func visitSamples(sitemap *Sitemap, samples int) {
	fmt.Println("\n--- Sample page visits ---")

	c := colly.NewCollector(
		colly.UserAgent("Robostaan Sitemap Checker v1.0"),
	)

	c.OnHTML("html", func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.DOM.Find("title").First().Text())
		fmt.Printf("%s -> title: %q\n", e.Request.URL.String(), title)

		e.DOM.Find("meta[name='description']").Each(func(i int, s *goquery.Selection) {
			if content, exists := s.Attr("content"); exists {
				fmt.Printf("  description: %s\n", strings.TrimSpace(content))
			}
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		fmt.Printf("%s -> error: %v\n", r.Request.URL.String(), err)
	})

	for i := 0; i < samples && i < len(sitemap.URLs); i++ {
		if err := c.Visit(sitemap.URLs[i].Loc); err != nil {
			log.Printf("Error visiting %s: %v", sitemap.URLs[i].Loc, err)
		}
	}
}

func printMetaTags(n *html.Node) {
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "meta" {
			name := getAttr(n, "name")
			content := getAttr(n, "content")
			if name != "" && content != "" {
				fmt.Printf("  %s = '%s'\n", name, content)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func fetchSitemap(url string) (*Sitemap, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var sitemap Sitemap
	if err := xml.Unmarshal(body, &sitemap); err != nil {
		return nil, err
	}

	return &sitemap, nil
}

func fetchAndParseHTML(url string) (*html.Node, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	return doc, nil
}
