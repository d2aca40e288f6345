// Command preview renders every document type for a sample post to a local
// directory, for eyeballing template or feed changes without deploying.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
	"github.com/ianmerrill10/shoeswipermainproject2/internal/render"
)

func main() {
	outDir := flag.String("out", "preview-output", "directory to write rendered documents into")
	category := flag.String("category", "sneaker", "blog category to render")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	domain := os.Getenv("DOMAIN")
	if domain == "" {
		domain = "https://shoeswiper.com"
	}
	affiliateTag := os.Getenv("AFFILIATE_TAG")
	if affiliateTag == "" {
		affiliateTag = "shoeswiper-20"
	}

	categories := models.DefaultCategories(domain)
	cfg, ok := categories[*category]
	if !ok {
		log.Fatalf("Unknown category: %s", *category)
	}

	generator := render.NewGenerator(domain, affiliateTag)
	posts := []models.NormalizedPost{samplePost(domain)}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	write := func(name string, doc render.Document) {
		path := filepath.Join(*outDir, name)
		if err := os.WriteFile(path, doc.Body, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		fmt.Printf("wrote %s (%d bytes, %s)\n", path, len(doc.Body), doc.ContentType)
	}

	postDoc, err := generator.RenderPostPage(cfg, posts[0])
	if err != nil {
		log.Fatalf("Failed to render post page: %v", err)
	}
	write("post.html", postDoc)

	indexDoc, err := generator.RenderIndexPage(cfg, posts)
	if err != nil {
		log.Fatalf("Failed to render index page: %v", err)
	}
	write("index.html", indexDoc)

	rssDoc, err := generator.RenderRSS(cfg, posts)
	if err != nil {
		log.Fatalf("Failed to render RSS feed: %v", err)
	}
	write("feed.xml", rssDoc)

	atomDoc, err := generator.RenderAtom(cfg, posts)
	if err != nil {
		log.Fatalf("Failed to render Atom feed: %v", err)
	}
	write("atom.xml", atomDoc)

	sitemapDoc, err := generator.RenderSitemap(cfg, posts)
	if err != nil {
		log.Fatalf("Failed to render sitemap: %v", err)
	}
	write("sitemap.xml", sitemapDoc)

	if newsDoc, err := generator.RenderNewsSitemap(cfg, posts); err != nil {
		log.Fatalf("Failed to render news sitemap: %v", err)
	} else if newsDoc != nil {
		write("sitemap-news.xml", *newsDoc)
	}

	opmlDoc, err := generator.RenderOPML(categories)
	if err != nil {
		log.Fatalf("Failed to render OPML: %v", err)
	}
	write("feeds.opml", opmlDoc)

	write("robots.txt", generator.RenderRobots(categories))
}

func samplePost(domain string) models.NormalizedPost {
	rec := models.PostRecord{
		ID:              "preview-123",
		Slug:            "air-max-buying-guide",
		Title:           "The Complete Air Max Buying Guide",
		MetaDescription: "Everything you need to know before buying your next pair of Air Max sneakers.",
		Content:         "<p>The Air Max line has defined sneaker culture for decades.</p><h2>Where to start</h2><p>Comfort, colorway, and resale value all matter.</p>",
		FeaturedImage:   domain + "/images/posts/air-max-guide.jpg",
		ImageAlt:        "A row of Air Max sneakers",
		PublishedAt:     models.FormatISO8601(mustParse("2026-08-27T09:00:00Z")),
		Status:          "published",
		Tags:            []string{"nike", "air max", "buying guide"},
		AffiliateProducts: []models.ProductRecord{
			{
				Name:          "Nike Air Max 90",
				ASIN:          "B0EXAMPLE1",
				Price:         "129.99",
				OriginalPrice: "160.00",
				Rating:        "4.6",
				ReviewCount:   "2841",
				ImageURL:      domain + "/images/products/air-max-90.jpg",
			},
		},
	}
	return models.Normalize(rec, domain)
}

func mustParse(raw string) time.Time {
	parsed, err := models.ParseInstant(raw)
	if err != nil {
		panic(err)
	}
	return parsed
}
