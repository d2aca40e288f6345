// Package render turns normalized post records into the published document
// set: RSS and Atom feeds, XML sitemaps, OPML, robots.txt, and static HTML
// pages. Every renderer is a pure function of its inputs; rendering the same
// posts twice yields byte-identical documents for a fixed clock.
package render

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
)

// Content types attached to rendered documents.
const (
	ContentTypeHTML  = "text/html"
	ContentTypeXML   = "application/xml"
	ContentTypeOPML  = "text/x-opml"
	ContentTypePlain = "text/plain"
)

// Document is a finished render: a content-type tag plus the complete byte
// sequence. Ownership passes directly to the publish step.
type Document struct {
	ContentType string
	Body        []byte
}

// Generator renders documents for the ShoeSwiper blog network. Domain is the
// canonical site origin ("https://shoeswiper.com"); AffiliateTag is appended
// to Amazon product links. Now is the clock used for build dates and
// date-parse fallbacks and is swappable in tests.
type Generator struct {
	Domain       string
	AffiliateTag string
	Now          func() time.Time
}

// NewGenerator creates a Generator with the real clock.
func NewGenerator(domain, affiliateTag string) *Generator {
	return &Generator{
		Domain:       strings.TrimSuffix(domain, "/"),
		AffiliateTag: affiliateTag,
		Now:          time.Now,
	}
}

// postURL builds the canonical URL for a post within its category.
func (g *Generator) postURL(cfg models.CategoryConfig, post models.NormalizedPost) string {
	return fmt.Sprintf("%s/%s/%s", g.Domain, cfg.Path, post.Slug)
}

// categoryURL builds the canonical URL for a category landing page.
func (g *Generator) categoryURL(cfg models.CategoryConfig) string {
	return fmt.Sprintf("%s/%s", g.Domain, cfg.Path)
}

// parseOrNow parses a timestamp and substitutes the current time on failure.
// Feed and sitemap call sites use this; HTML display uses the literal
// "Recently" instead.
func (g *Generator) parseOrNow(raw string) time.Time {
	if t, err := models.ParseInstant(raw); err == nil {
		return t
	}
	return g.Now().UTC()
}

// mimeTypeForImage infers an image MIME type from the URL's file extension.
func mimeTypeForImage(url string) string {
	lower := strings.ToLower(url)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	case strings.HasSuffix(lower, ".webp"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// marshalXML pretty-prints v as an XML 1.0 document with 2-space indentation
// and the standard declaration.
func marshalXML(v interface{}) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal XML document: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, []byte(xml.Header)...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
