package render

import (
	"encoding/xml"
	"sort"
	"strings"
	"time"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
)

const (
	sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	imageNamespace   = "http://www.google.com/schemas/sitemap-image/1.1"
	newsNamespace    = "http://www.google.com/schemas/sitemap-news/0.9"
	xhtmlNamespace   = "http://www.w3.org/1999/xhtml"
)

// newsWindow is how far back the news sitemap reaches, counted from the
// start of the current UTC day (Google News requirement).
const newsWindow = 48 * time.Hour

type sitemapURLSet struct {
	XMLName    xml.Name     `xml:"urlset"`
	XMLNS      string       `xml:"xmlns,attr"`
	XMLNSImage string       `xml:"xmlns:image,attr,omitempty"`
	XMLNSXHTML string       `xml:"xmlns:xhtml,attr,omitempty"`
	XMLNSNews  string       `xml:"xmlns:news,attr,omitempty"`
	URLs       []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string        `xml:"loc"`
	LastMod    string        `xml:"lastmod,omitempty"`
	ChangeFreq string        `xml:"changefreq,omitempty"`
	Priority   string        `xml:"priority,omitempty"`
	Image      *sitemapImage `xml:"image:image"`
	News       *sitemapNews  `xml:"news:news"`
}

type sitemapImage struct {
	Loc     string `xml:"image:loc"`
	Title   string `xml:"image:title,omitempty"`
	Caption string `xml:"image:caption,omitempty"`
}

type sitemapNews struct {
	Publication     newsPublication `xml:"news:publication"`
	PublicationDate string          `xml:"news:publication_date"`
	Title           string          `xml:"news:title"`
	Keywords        string          `xml:"news:keywords,omitempty"`
}

type newsPublication struct {
	Name     string `xml:"news:name"`
	Language string `xml:"news:language"`
}

type sitemapIndex struct {
	XMLName  xml.Name       `xml:"sitemapindex"`
	XMLNS    string         `xml:"xmlns,attr"`
	Sitemaps []sitemapEntry `xml:"sitemap"`
}

type sitemapEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// SitemapRef is one (location, lastmod) pair for the sitemap index.
type SitemapRef struct {
	Loc     string
	LastMod string
}

// RenderSitemap produces the main sitemap for one category: the category
// index page first, then one entry per post.
func (g *Generator) RenderSitemap(cfg models.CategoryConfig, posts []models.NormalizedPost) (Document, error) {
	now := g.Now().UTC()

	urlset := sitemapURLSet{
		XMLNS:      sitemapNamespace,
		XMLNSImage: imageNamespace,
		XMLNSXHTML: xhtmlNamespace,
		URLs: []sitemapURL{
			{
				Loc:        g.categoryURL(cfg),
				LastMod:    models.FormatDay(now),
				ChangeFreq: "daily",
				Priority:   "1.0",
			},
		},
	}

	for _, post := range posts {
		entry := sitemapURL{
			Loc:        g.postURL(cfg, post),
			LastMod:    g.lastModDay(post),
			ChangeFreq: g.changeFreq(cfg, post, now),
			Priority:   cfg.Priority,
		}

		if post.Image != "" {
			img := &sitemapImage{Loc: post.Image}
			img.Title = post.ImageAlt
			if img.Title == "" {
				img.Title = post.Title
			}
			caption := post.ImageCaption
			if caption == "" {
				caption = post.Description
			}
			img.Caption = models.Truncate(caption, 1000)
			entry.Image = img
		}

		urlset.URLs = append(urlset.URLs, entry)
	}

	body, err := marshalXML(urlset)
	if err != nil {
		return Document{}, err
	}
	return Document{ContentType: ContentTypeXML, Body: body}, nil
}

// lastModDay picks the post's update time, else publish time, else today.
func (g *Generator) lastModDay(post models.NormalizedPost) string {
	raw := post.UpdatedAt
	if raw == "" {
		raw = post.PublishedAt
	}
	return models.FormatDay(g.parseOrNow(raw))
}

// changeFreq computes the crawl hint from post age; a missing or
// unparseable publish date falls back to the category default.
func (g *Generator) changeFreq(cfg models.CategoryConfig, post models.NormalizedPost, now time.Time) string {
	published, err := models.ParseInstant(post.PublishedAt)
	if err != nil {
		return cfg.ChangeFreq
	}

	daysOld := int(now.Sub(published).Hours() / 24)
	switch {
	case daysOld < 7:
		return "daily"
	case daysOld < 30:
		return "weekly"
	case daysOld < 180:
		return "monthly"
	default:
		return "yearly"
	}
}

// RenderNewsSitemap produces the Google News sitemap for posts published
// within the last two days. It returns nil when no post qualifies, in which
// case the caller must skip publishing entirely.
func (g *Generator) RenderNewsSitemap(cfg models.CategoryConfig, posts []models.NormalizedPost) (*Document, error) {
	cutoff := g.Now().UTC().Truncate(24 * time.Hour).Add(-newsWindow)

	var recent []models.NormalizedPost
	for _, post := range posts {
		published, err := models.ParseInstant(post.PublishedAt)
		if err != nil {
			continue
		}
		if !published.Before(cutoff) {
			recent = append(recent, post)
		}
	}

	if len(recent) == 0 {
		return nil, nil
	}

	urlset := sitemapURLSet{
		XMLNS:     sitemapNamespace,
		XMLNSNews: newsNamespace,
	}

	for _, post := range recent {
		keywords := post.Keywords
		if len(keywords) > 10 {
			keywords = keywords[:10]
		}

		urlset.URLs = append(urlset.URLs, sitemapURL{
			Loc: g.postURL(cfg, post),
			News: &sitemapNews{
				Publication:     newsPublication{Name: "ShoeSwiper", Language: "en"},
				PublicationDate: models.FormatISO8601(g.parseOrNow(post.PublishedAt)),
				Title:           post.Title,
				Keywords:        strings.Join(keywords, ", "),
			},
		})
	}

	body, err := marshalXML(urlset)
	if err != nil {
		return nil, err
	}
	return &Document{ContentType: ContentTypeXML, Body: body}, nil
}

// RenderSitemapIndex wraps a sequence of sitemap references.
func (g *Generator) RenderSitemapIndex(refs []SitemapRef) (Document, error) {
	index := sitemapIndex{XMLNS: sitemapNamespace}
	today := models.FormatDay(g.Now().UTC())

	for _, ref := range refs {
		lastMod := ref.LastMod
		if lastMod == "" {
			lastMod = today
		}
		index.Sitemaps = append(index.Sitemaps, sitemapEntry{Loc: ref.Loc, LastMod: lastMod})
	}

	body, err := marshalXML(index)
	if err != nil {
		return Document{}, err
	}
	return Document{ContentType: ContentTypeXML, Body: body}, nil
}

// RenderStaticSitemap produces the sitemap for the fixed top-level site
// pages plus every category landing page.
func (g *Generator) RenderStaticSitemap(categories map[string]models.CategoryConfig) (Document, error) {
	type staticPage struct {
		loc        string
		priority   string
		changefreq string
	}

	pages := []staticPage{
		{g.Domain, "1.0", "daily"},
		{g.Domain + "/app", "0.9", "weekly"},
		{g.Domain + "/about", "0.7", "monthly"},
		{g.Domain + "/contact", "0.6", "monthly"},
		{g.Domain + "/privacy", "0.3", "yearly"},
		{g.Domain + "/terms", "0.3", "yearly"},
		{g.Domain + "/blog", "0.9", "daily"},
	}

	slugs := make([]string, 0, len(categories))
	for slug := range categories {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	for _, slug := range slugs {
		pages = append(pages, staticPage{g.categoryURL(categories[slug]), "0.9", "daily"})
	}

	urlset := sitemapURLSet{XMLNS: sitemapNamespace}
	today := models.FormatDay(g.Now().UTC())
	for _, page := range pages {
		urlset.URLs = append(urlset.URLs, sitemapURL{
			Loc:        page.loc,
			LastMod:    today,
			ChangeFreq: page.changefreq,
			Priority:   page.priority,
		})
	}

	body, err := marshalXML(urlset)
	if err != nil {
		return Document{}, err
	}
	return Document{ContentType: ContentTypeXML, Body: body}, nil
}
