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

const fetchLimit = 50

// Event is the feed generation trigger. It arrives directly from EventBridge
// or API Gateway, or wrapped in an SNS envelope after a new post lands.
type Event struct {
	BlogType       string                  `json:"blog_type"`
	Category       string                  `json:"category"`
	PathParameters map[string]string       `json:"pathParameters"`
	Records        []events.SNSEventRecord `json:"Records"`
}

// Response mirrors the API Gateway proxy shape so the function can sit behind
// either an HTTP route or a direct invocation.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

type feedResult struct {
	Blog string `json:"blog,omitempty"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

type feedFailure struct {
	Blog  string `json:"blog,omitempty"`
	Type  string `json:"type,omitempty"`
	Error string `json:"error"`
}

type feedSummary struct {
	Success   []feedResult  `json:"success"`
	Failed    []feedFailure `json:"failed"`
	Timestamp string        `json:"timestamp"`
}

type postStore interface {
	FetchPosts(ctx context.Context, category string, limit int) ([]models.PostRecord, error)
}

type publisher interface {
	Publish(ctx context.Context, key string, body []byte, contentType string) (*services.PublishResult, error)
}

// App bundles the services the handler needs; the interfaces keep it testable
// without AWS.
type App struct {
	store      postStore
	publisher  publisher
	generator  *render.Generator
	categories map[string]models.CategoryConfig
	domain     string
}

// HandleEvent regenerates RSS and Atom feeds for the requested categories
// (all of them by default) plus the network-wide OPML file. Per-category
// failures are collected rather than aborting the run.
func (a *App) HandleEvent(ctx context.Context, event Event) (Response, error) {
	summary := feedSummary{
		Success:   []feedResult{},
		Failed:    []feedFailure{},
		Timestamp: models.FormatISO8601(a.generator.Now().UTC()),
	}

	event = unwrapSNS(event)

	for _, slug := range targetCategories(event) {
		cfg, ok := a.categories[slug]
		if !ok {
			continue
		}
		a.generateFeeds(ctx, cfg, &summary)
	}

	// OPML lists every category feed, so it regenerates on every run.
	if doc, err := a.generator.RenderOPML(a.categories); err != nil {
		log.Printf("Error generating OPML: %v", err)
		summary.Failed = append(summary.Failed, feedFailure{Type: "opml", Error: err.Error()})
	} else if result, err := a.publisher.Publish(ctx, "blog/feeds.opml", doc.Body, doc.ContentType); err != nil {
		log.Printf("Error uploading OPML: %v", err)
		summary.Failed = append(summary.Failed, feedFailure{Type: "opml", Error: err.Error()})
	} else {
		summary.Success = append(summary.Success, feedResult{Type: "opml", URL: result.PublicURL})
	}

	return jsonResponse(summary)
}

func (a *App) generateFeeds(ctx context.Context, cfg models.CategoryConfig, summary *feedSummary) {
	records, err := a.store.FetchPosts(ctx, cfg.Slug, fetchLimit)
	if err != nil {
		log.Printf("Error fetching posts for %s: %v", cfg.Slug, err)
		summary.Failed = append(summary.Failed, feedFailure{Blog: cfg.Slug, Error: err.Error()})
		return
	}
	if len(records) == 0 {
		log.Printf("No posts found for %s", cfg.Slug)
		summary.Failed = append(summary.Failed, feedFailure{Blog: cfg.Slug, Error: "No posts found"})
		return
	}

	posts := make([]models.NormalizedPost, 0, len(records))
	for _, rec := range records {
		posts = append(posts, models.Normalize(rec, a.domain))
	}

	feeds := []struct {
		kind   string
		key    string
		render func(models.CategoryConfig, []models.NormalizedPost) (render.Document, error)
	}{
		{"rss", cfg.Path + "/feed.xml", a.generator.RenderRSS},
		{"atom", cfg.Path + "/atom.xml", a.generator.RenderAtom},
	}

	for _, feed := range feeds {
		doc, err := feed.render(cfg, posts)
		if err != nil {
			log.Printf("Error generating %s feed for %s: %v", feed.kind, cfg.Slug, err)
			summary.Failed = append(summary.Failed, feedFailure{Blog: cfg.Slug, Type: feed.kind, Error: err.Error()})
			continue
		}
		result, err := a.publisher.Publish(ctx, feed.key, doc.Body, doc.ContentType)
		if err != nil {
			log.Printf("Error uploading %s feed for %s: %v", feed.kind, cfg.Slug, err)
			summary.Failed = append(summary.Failed, feedFailure{Blog: cfg.Slug, Type: feed.kind, Error: err.Error()})
			continue
		}
		summary.Success = append(summary.Success, feedResult{Blog: cfg.Slug, Type: feed.kind, URL: result.PublicURL})
	}

	log.Printf("Generated feeds for %s from %d posts", cfg.Slug, len(posts))
}

// unwrapSNS replaces the event with the payload of its first SNS record, if
// any.
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

// targetCategories picks which categories to regenerate: a path parameter or
// event field narrows to one, otherwise all.
func targetCategories(event Event) []string {
	if slug := event.PathParameters["blog_type"]; slug != "" {
		return []string{slug}
	}
	if event.BlogType != "" {
		return []string{event.BlogType}
	}
	if event.Category != "" {
		return []string{event.Category}
	}
	return models.CategoryOrder
}

func jsonResponse(summary feedSummary) (Response, error) {
	statusCode := 200
	if len(summary.Failed) > 0 {
		statusCode = 207
	}

	body, err := json.Marshal(summary)
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal response: %w", err)
	}

	return Response{
		StatusCode: statusCode,
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
	}, nil
}

func main() {
	app, err := newApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize feed generator: %v", err)
	}
	lambda.Start(app.HandleEvent)
}
