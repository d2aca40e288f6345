package render

import (
	"fmt"
	"strings"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
)

// RenderRobots produces the network-wide robots.txt, listing the sitemap
// index, the static sitemap, and every category sitemap.
func (g *Generator) RenderRobots(categories map[string]models.CategoryConfig) Document {
	var b strings.Builder

	fmt.Fprintf(&b, "# ShoeSwiper Robots.txt\n")
	fmt.Fprintf(&b, "# Generated: %s\n\n", models.FormatISO8601(g.Now().UTC()))
	b.WriteString("User-agent: *\nAllow: /\n\n")

	b.WriteString("# Sitemaps\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", g.Domain)
	fmt.Fprintf(&b, "Sitemap: %s/sitemap-static.xml\n", g.Domain)
	for _, slug := range models.CategoryOrder {
		cfg, ok := categories[slug]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", g.categoryURL(cfg))
	}

	b.WriteString(`
# Crawl-delay for polite crawlers
Crawl-delay: 1

# Disallow admin and API paths
Disallow: /api/
Disallow: /admin/
Disallow: /_next/
Disallow: /supabase/

# Allow important paths
Allow: /blog/
Allow: /app
Allow: /about
Allow: /contact

# Block AI training bots (optional)
User-agent: GPTBot
Disallow: /

User-agent: ChatGPT-User
Disallow: /

User-agent: CCBot
Disallow: /
`)

	return Document{ContentType: ContentTypePlain, Body: []byte(b.String())}
}
