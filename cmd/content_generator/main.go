package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
	"github.com/ianmerrill10/shoeswipermainproject2/internal/render"
	"github.com/ianmerrill10/shoeswipermainproject2/internal/services"
)

// Event requests one new post for a blog category. An empty topic lets the
// generator pick from the category's topic pool.
type Event struct {
	BlogType string `json:"blog_type"`
	Topic    string `json:"topic"`
}

// Response mirrors the API Gateway proxy shape.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type successBody struct {
	Success bool   `json:"success"`
	PostID  string `json:"post_id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	S3URL   string `json:"s3_url"`
}

type errorBody struct {
	Error string `json:"error"`
}

type contentGenerator interface {
	GeneratePost(ctx context.Context, cfg models.CategoryConfig, topic string) (*services.GeneratedContent, error)
}

type postStore interface {
	SavePost(ctx context.Context, post *models.PostRecord) error
}

type publisher interface {
	Publish(ctx context.Context, key string, body []byte, contentType string) (*services.PublishResult, error)
}

type invoker interface {
	InvokeAsync(ctx context.Context, functionName string, payload interface{}) error
}

// App bundles the services the handler needs.
type App struct {
	generator       contentGenerator
	store           postStore
	publisher       publisher
	renderer        *render.Generator
	invoker         invoker
	categories      map[string]models.CategoryConfig
	domain          string
	feedFunction    string
	sitemapFunction string
}

// nowUTC is swappable in tests for deterministic post IDs.
var nowUTC = func() time.Time { return time.Now().UTC() }

// HandleEvent generates a post, publishes its HTML page, stores the metadata
// as published, and fans out to the feed and sitemap functions so the rest of
// the static site catches up.
func (a *App) HandleEvent(ctx context.Context, event Event) (Response, error) {
	blogType := event.BlogType
	if blogType == "" {
		blogType = "sneaker"
	}

	log.Printf("Generating content for blog: %s", blogType)

	cfg, ok := a.categories[blogType]
	if !ok {
		return errorResponse(400, fmt.Sprintf("Unknown blog type: %s", blogType))
	}

	content, err := a.generator.GeneratePost(ctx, cfg, event.Topic)
	if err != nil {
		log.Printf("Error generating content: %v", err)
		return errorResponse(500, err.Error())
	}
	log.Printf("Generated: %s", content.Title)

	created := nowUTC()
	now := models.FormatISO8601(created)
	post := &models.PostRecord{
		ID:                models.GeneratePostID(blogType, content.Slug, created),
		Category:          blogType,
		Slug:              content.Slug,
		Title:             content.Title,
		MetaDescription:   content.MetaDescription,
		Content:           content.Content,
		Keywords:          content.Keywords,
		AffiliateProducts: content.Products,
		PublishedAt:       now,
		CreatedAt:         now,
		Status:            "published",
	}

	// The page goes up before the metadata: the saved record carries the
	// published location.
	doc, err := a.renderer.RenderPostPage(cfg, models.Normalize(*post, a.domain))
	if err != nil {
		log.Printf("Error rendering post page: %v", err)
		return errorResponse(500, err.Error())
	}
	key := fmt.Sprintf("%s/%s/index.html", cfg.Path, post.Slug)
	result, err := a.publisher.Publish(ctx, key, doc.Body, doc.ContentType)
	if err != nil {
		log.Printf("Error uploading post page: %v", err)
		return errorResponse(500, err.Error())
	}
	post.S3URL = result.PublicURL

	if err := a.store.SavePost(ctx, post); err != nil {
		log.Printf("Error saving post: %v", err)
		return errorResponse(500, err.Error())
	}

	a.fanOut(ctx, blogType)

	body, err := json.Marshal(successBody{
		Success: true,
		PostID:  post.ID,
		Title:   post.Title,
		URL:     fmt.Sprintf("%s/%s/%s", a.domain, cfg.Path, post.Slug),
		S3URL:   post.S3URL,
	})
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal response: %w", err)
	}
	return Response{StatusCode: 200, Body: string(body)}, nil
}

// fanOut asynchronously triggers the feed and sitemap generators. The post
// page itself was already published in-process. Failures are logged only:
// the post is durable, and the scheduled runs will pick it up.
func (a *App) fanOut(ctx context.Context, category string) {
	if a.invoker == nil {
		return
	}

	targets := []struct {
		name    string
		payload interface{}
	}{
		{a.feedFunction, map[string]interface{}{"category": category}},
		{a.sitemapFunction, map[string]interface{}{"category": category}},
	}

	for _, target := range targets {
		if target.name == "" {
			continue
		}
		if err := a.invoker.InvokeAsync(ctx, target.name, target.payload); err != nil {
			log.Printf("Error invoking %s: %v", target.name, err)
		}
	}
}

func errorResponse(statusCode int, message string) (Response, error) {
	body, err := json.Marshal(errorBody{Error: message})
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal error response: %w", err)
	}
	return Response{StatusCode: statusCode, Body: string(body)}, nil
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

	generator, err := services.NewContentGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize content generator: %w", err)
	}
	store, err := services.NewPostStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize post store: %w", err)
	}
	pub, err := services.NewPublisher(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize publisher: %w", err)
	}
	fnInvoker, err := services.NewFunctionInvoker(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize function invoker: %w", err)
	}

	return &App{
		generator:       generator,
		store:           store,
		publisher:       pub,
		renderer:        render.NewGenerator(domain, affiliateTag),
		invoker:         fnInvoker,
		categories:      models.DefaultCategories(domain),
		domain:          domain,
		feedFunction:    os.Getenv("FEED_GENERATOR_FUNCTION"),
		sitemapFunction: os.Getenv("SITEMAP_GENERATOR_FUNCTION"),
	}, nil
}

func main() {
	app, err := newApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize content generator: %v", err)
	}
	lambda.Start(app.HandleEvent)
}
