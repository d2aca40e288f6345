package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
	"github.com/ianmerrill10/shoeswipermainproject2/internal/render"
	"github.com/ianmerrill10/shoeswipermainproject2/internal/services"
)

// Sitemaps cover the whole archive, not just the latest window.
const fetchLimit = 50000

// Event is the sitemap generation trigger.
type Event struct {
	Category    string                  `json:"category"`
	GenerateAll bool                    `json:"generate_all"`
	PingOnly    bool                    `json:"ping_only"`
	SkipPing    bool                    `json:"skip_ping"`
	Records     []events.SNSEventRecord `json:"Records"`
}

// Response mirrors the API Gateway proxy shape.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

type sitemapResult struct {
	Category   string `json:"category,omitempty"`
	Type       string `json:"type,omitempty"`
	URL        string `json:"url,omitempty"`
	PostsCount int    `json:"posts_count,omitempty"`
	Error      string `json:"error,omitempty"`
}

type sitemapSummary struct {
	Sitemaps     []sitemapResult `json:"sitemaps"`
	Pings        map[string]bool `json:"pings"`
	SitemapIndex string          `json:"sitemap_index,omitempty"`
	RobotsTxt    string          `json:"robots_txt,omitempty"`
	Timestamp    string          `json:"timestamp"`
}

type postStore interface {
	FetchPosts(ctx context.Context, category string, limit int) ([]models.PostRecord, error)
}

type publisher interface {
	Publish(ctx context.Context, key string, body []byte, contentType string) (*services.PublishResult, error)
}

// App bundles the services the handler needs.
type App struct {
	store      postStore
	publisher  publisher
	generator  *render.Generator
	categories map[string]models.CategoryConfig
	domain     string
	ping       func(ctx context.Context, sitemapURL string) map[string]bool
}

// HandleEvent regenerates per-category sitemaps, the news sitemaps, the
// static sitemap, the sitemap index, and robots.txt, then pings search
// engines. A ping_only event skips all generation.
func (a *App) HandleEvent(ctx context.Context, event Event) (Response, error) {
	summary := sitemapSummary{
		Sitemaps:  []sitemapResult{},
		Pings:     map[string]bool{},
		Timestamp: models.FormatISO8601(a.generator.Now().UTC()),
	}

	event = unwrapSNS(event)

	if event.PingOnly {
		summary.Pings = a.ping(ctx, a.domain+"/sitemap.xml")
		return jsonResponse(summary)
	}

	categories := models.CategoryOrder
	if event.Category != "" {
		categories = []string{event.Category}
	}

	var refs []render.SitemapRef
	today := models.FormatDay(a.generator.Now().UTC())

	for _, slug := range categories {
		cfg, ok := a.categories[slug]
		if !ok {
			continue
		}
		a.generateCategorySitemaps(ctx, cfg, &summary, &refs, today)
	}

	// Static pages sitemap.
	if doc, err := a.generator.RenderStaticSitemap(a.categories); err != nil {
		log.Printf("Error generating static sitemap: %v", err)
	} else if result, err := a.publisher.Publish(ctx, "sitemap-static.xml", doc.Body, doc.ContentType); err != nil {
		log.Printf("Error uploading static sitemap: %v", err)
	} else {
		summary.Sitemaps = append(summary.Sitemaps, sitemapResult{Type: "static", URL: result.PublicURL})
		refs = append(refs, render.SitemapRef{Loc: result.PublicURL, LastMod: today})
	}

	// Sitemap index referencing everything uploaded above.
	if len(refs) > 0 {
		if doc, err := a.generator.RenderSitemapIndex(refs); err != nil {
			log.Printf("Error generating sitemap index: %v", err)
		} else if result, err := a.publisher.Publish(ctx, "sitemap.xml", doc.Body, doc.ContentType); err != nil {
			log.Printf("Error uploading sitemap index: %v", err)
		} else {
			summary.SitemapIndex = result.PublicURL
		}
	}

	robotsDoc := a.generator.RenderRobots(a.categories)
	if result, err := a.publisher.Publish(ctx, "robots.txt", robotsDoc.Body, robotsDoc.ContentType); err != nil {
		log.Printf("Error uploading robots.txt: %v", err)
	} else {
		summary.RobotsTxt = result.PublicURL
	}

	if summary.SitemapIndex != "" && !event.SkipPing {
		summary.Pings = a.ping(ctx, summary.SitemapIndex)
	}

	return jsonResponse(summary)
}

func (a *App) generateCategorySitemaps(ctx context.Context, cfg models.CategoryConfig, summary *sitemapSummary, refs *[]render.SitemapRef, today string) {
	records, err := a.store.FetchPosts(ctx, cfg.Slug, fetchLimit)
	if err != nil {
		log.Printf("Error fetching posts for %s: %v", cfg.Slug, err)
		summary.Sitemaps = append(summary.Sitemaps, sitemapResult{Category: cfg.Slug, Error: err.Error()})
		return
	}
	log.Printf("Found %d posts for %s", len(records), cfg.Slug)

	posts := make([]models.NormalizedPost, 0, len(records))
	for _, rec := range records {
		posts = append(posts, models.Normalize(rec, a.domain))
	}

	doc, err := a.generator.RenderSitemap(cfg, posts)
	if err != nil {
		log.Printf("Error generating sitemap for %s: %v", cfg.Slug, err)
		summary.Sitemaps = append(summary.Sitemaps, sitemapResult{Category: cfg.Slug, Error: err.Error()})
		return
	}
	result, err := a.publisher.Publish(ctx, cfg.Path+"/sitemap.xml", doc.Body, doc.ContentType)
	if err != nil {
		log.Printf("Error uploading sitemap for %s: %v", cfg.Slug, err)
		summary.Sitemaps = append(summary.Sitemaps, sitemapResult{Category: cfg.Slug, Error: err.Error()})
		return
	}
	summary.Sitemaps = append(summary.Sitemaps, sitemapResult{
		Category:   cfg.Slug,
		Type:       "main",
		URL:        result.PublicURL,
		PostsCount: len(posts),
	})
	*refs = append(*refs, render.SitemapRef{Loc: result.PublicURL, LastMod: today})

	// News sitemap only exists while there are posts inside the 2-day
	// window.
	newsDoc, err := a.generator.RenderNewsSitemap(cfg, posts)
	if err != nil {
		log.Printf("Error generating news sitemap for %s: %v", cfg.Slug, err)
		return
	}
	if newsDoc == nil {
		return
	}
	newsResult, err := a.publisher.Publish(ctx, cfg.Path+"/sitemap-news.xml", newsDoc.Body, newsDoc.ContentType)
	if err != nil {
		log.Printf("Error uploading news sitemap for %s: %v", cfg.Slug, err)
		return
	}
	summary.Sitemaps = append(summary.Sitemaps, sitemapResult{Category: cfg.Slug, Type: "news", URL: newsResult.PublicURL})
	*refs = append(*refs, render.SitemapRef{Loc: newsResult.PublicURL, LastMod: today})
}

func unwrapSNS(event Event) Event {
	for _, record := range event.Records {
		var inner Event
		if err := json.Unmarshal([]byte(record.SNS.Message), &inner); err != nil {
			log.Printf("Error parsing SNS message: %v", err)
			continue
		}
		return inner
	}
	return event
}

func jsonResponse(summary sitemapSummary) (Response, error) {
	body, err := json.Marshal(summary)
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal response: %w", err)
	}

	return Response{
		StatusCode: 200,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}, nil
}

func newApp(ctx context.Context) (*App, error) {
	domain := os.Getenv("DOMAIN")
	if domain == "" {
		domain = "https://shoeswiper.com"
	}
	affiliateTag := os.Getenv("AFFILIATE_TAG")
	if affiliateTag == "" {
		affiliateTag = "shoeswiper-20"
	}

	store, err := services.NewPostStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize post store: %w", err)
	}
	pub, err := services.NewPublisher(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize publisher: %w", err)
	}

	return &App{
		store:      store,
		publisher:  pub,
		generator:  render.NewGenerator(domain, affiliateTag),
		categories: models.DefaultCategories(domain),
		domain:     domain,
		ping:       services.PingSearchEngines,
	}, nil
}

func main() {
	app, err := newApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize sitemap generator: %v", err)
	}
	lambda.Start(app.HandleEvent)
}
