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

// Event is the HTML generation trigger. GenerateIndex defaults to true when
// absent, so a plain {"category": "sneaker"} event rebuilds both the listing
// page and the posts.
type Event struct {
	Category      string                  `json:"category"`
	PostID        string                  `json:"post_id"`
	GenerateAll   bool                    `json:"generate_all"`
	GenerateIndex *bool                   `json:"generate_index"`
	Records       []events.SNSEventRecord `json:"Records"`
}

// Response mirrors the API Gateway proxy shape.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

type generatedItem struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Slug     string `json:"slug,omitempty"`
	URL      string `json:"url"`
}

type generationError struct {
	Type     string `json:"type"`
	Category string `json:"category,omitempty"`
	PostID   string `json:"post_id,omitempty"`
	Error    string `json:"error"`
}

type htmlSummary struct {
	Generated []generatedItem   `json:"generated"`
	Errors    []generationError `json:"errors"`
	Timestamp string            `json:"timestamp"`
}

type postStore interface {
	FetchPosts(ctx context.Context, category string, limit int) ([]models.PostRecord, error)
	GetPost(ctx context.Context, id string) (*models.PostRecord, error)
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
}

// HandleEvent renders and publishes static HTML: the category index page and
// one page per post. A post_id narrows the post set to a single record;
// generate_all covers every category. Failures are isolated per item.
func (a *App) HandleEvent(ctx context.Context, event Event) (Response, error) {
	summary := htmlSummary{
		Generated: []generatedItem{},
		Errors:    []generationError{},
		Timestamp: models.FormatISO8601(a.generator.Now().UTC()),
	}

	event = unwrapSNS(event)

	categories := []string{event.Category}
	if event.GenerateAll {
		categories = models.CategoryOrder
	} else if event.Category == "" {
		categories = []string{"sneaker"}
	}

	generateIndex := true
	if event.GenerateIndex != nil {
		generateIndex = *event.GenerateIndex
	}

	for _, slug := range categories {
		cfg, ok := a.categories[slug]
		if !ok {
			continue
		}

		records, err := a.store.FetchPosts(ctx, cfg.Slug, fetchLimit)
		if err != nil {
			log.Printf("Error fetching posts for %s: %v", cfg.Slug, err)
			summary.Errors = append(summary.Errors, generationError{Type: "fetch", Category: cfg.Slug, Error: err.Error()})
			continue
		}

		posts := make([]models.NormalizedPost, 0, len(records))
		for _, rec := range records {
			posts = append(posts, models.Normalize(rec, a.domain))
		}

		if generateIndex {
			a.generateIndex(ctx, cfg, posts, &summary)
		}

		if event.PostID != "" {
			posts = a.lookupPost(ctx, event.PostID, &summary)
		}

		for _, post := range posts {
			a.generatePost(ctx, cfg, post, &summary)
		}
	}

	return jsonResponse(summary)
}

func (a *App) generateIndex(ctx context.Context, cfg models.CategoryConfig, posts []models.NormalizedPost, summary *htmlSummary) {
	doc, err := a.generator.RenderIndexPage(cfg, posts)
	if err != nil {
		log.Printf("Error generating index for %s: %v", cfg.Slug, err)
		summary.Errors = append(summary.Errors, generationError{Type: "index", Category: cfg.Slug, Error: err.Error()})
		return
	}

	result, err := a.publisher.Publish(ctx, cfg.Path+"/index.html", doc.Body, doc.ContentType)
	if err != nil {
		log.Printf("Error uploading index for %s: %v", cfg.Slug, err)
		summary.Errors = append(summary.Errors, generationError{Type: "index", Category: cfg.Slug, Error: err.Error()})
		return
	}

	summary.Generated = append(summary.Generated, generatedItem{Type: "index", Category: cfg.Slug, URL: result.PublicURL})
}

func (a *App) generatePost(ctx context.Context, cfg models.CategoryConfig, post models.NormalizedPost, summary *htmlSummary) {
	doc, err := a.generator.RenderPostPage(cfg, post)
	if err != nil {
		log.Printf("Error generating post %s: %v", post.ID, err)
		summary.Errors = append(summary.Errors, generationError{Type: "post", PostID: post.ID, Error: err.Error()})
		return
	}

	key := fmt.Sprintf("%s/%s/index.html", cfg.Path, post.Slug)
	if _, err := a.publisher.Publish(ctx, key, doc.Body, doc.ContentType); err != nil {
		log.Printf("Error uploading post %s: %v", post.ID, err)
		summary.Errors = append(summary.Errors, generationError{Type: "post", PostID: post.ID, Error: err.Error()})
		return
	}

	summary.Generated = append(summary.Generated, generatedItem{
		Type:     "post",
		Category: cfg.Slug,
		Slug:     post.Slug,
		URL:      fmt.Sprintf("%s/%s/%s", a.domain, cfg.Path, post.Slug),
	})
}

func (a *App) lookupPost(ctx context.Context, postID string, summary *htmlSummary) []models.NormalizedPost {
	rec, err := a.store.GetPost(ctx, postID)
	if err != nil {
		log.Printf("Error fetching post %s: %v", postID, err)
		summary.Errors = append(summary.Errors, generationError{Type: "post", PostID: postID, Error: err.Error()})
		return nil
	}
	if rec == nil {
		return nil
	}
	return []models.NormalizedPost{models.Normalize(*rec, a.domain)}
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

func jsonResponse(summary htmlSummary) (Response, error) {
	statusCode := 200
	if len(summary.Errors) > 0 {
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
		log.Fatalf("Failed to initialize HTML generator: %v", err)
	}
	lambda.Start(app.HandleEvent)
}
