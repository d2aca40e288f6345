package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
)

// ContentGenerator produces draft blog posts with an LLM.
type ContentGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// GeneratedContent is the structured draft returned by the model.
type GeneratedContent struct {
	Title               string                 `json:"title"`
	Slug                string                 `json:"slug"`
	MetaDescription     string                 `json:"meta_description"`
	Keywords            []string               `json:"keywords"`
	Content             string                 `json:"content"`
	FeaturedImagePrompt string                 `json:"featured_image_prompt"`
	Products            []models.ProductRecord `json:"products"`
}

// NewContentGenerator creates a ContentGenerator. It returns an error when
// OPENAI_API_KEY is unset.
func NewContentGenerator() (*ContentGenerator, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	return &ContentGenerator{
		client:      openai.NewClient(apiKey),
		model:       "gpt-4o-mini",
		temperature: 0.7,
		maxTokens:   4096,
	}, nil
}

// GeneratePost writes a draft post for the category. An empty topic picks one
// of the category's configured topics at random. A response that is not valid
// JSON degrades to a minimal draft built from the topic itself.
func (c *ContentGenerator) GeneratePost(ctx context.Context, cfg models.CategoryConfig, topic string) (*GeneratedContent, error) {
	if topic == "" {
		if len(cfg.Topics) == 0 {
			return nil, fmt.Errorf("no topics configured for category %s", cfg.Slug)
		}
		topic = cfg.Topics[rand.Intn(len(cfg.Topics))]
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: c.buildPrompt(cfg, topic),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("content generation request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response choices from OpenAI")
	}

	raw := cleanJSONResponse(resp.Choices[0].Message.Content)

	var content GeneratedContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return fallbackContent(topic, raw), nil
	}
	if content.Slug == "" {
		content.Slug = models.Slugify(content.Title)
	}
	return &content, nil
}

func (c *ContentGenerator) buildPrompt(cfg models.CategoryConfig, topic string) string {
	return fmt.Sprintf(`You are an expert content writer for %s, a popular blog about %s.

Write a comprehensive, SEO-optimized blog post about: %s

Requirements:
1. Tone: %s
2. Length: 1500-2000 words
3. Include practical tips and recommendations
4. Include 2-3 Amazon product recommendations with natural affiliate link placements
5. Use engaging headers and subheaders
6. Include a compelling meta description (150-160 characters)
7. Include 5-7 relevant keywords for SEO
8. End with a call-to-action to explore ShoeSwiper app

Format your response as JSON:
{
    "title": "Engaging blog post title",
    "slug": "url-friendly-slug",
    "meta_description": "SEO meta description",
    "keywords": ["keyword1", "keyword2"],
    "content": "Full HTML content with proper tags",
    "featured_image_prompt": "Image generation prompt for featured image",
    "products": [
        {"name": "Product Name", "asin": "AMAZONASIN", "why": "Brief reason to recommend"}
    ]
}

Make the content genuinely helpful and engaging, not just promotional.`, cfg.Name, cfg.Slug, topic, cfg.Tone)
}

// cleanJSONResponse strips the markdown code fences models sometimes wrap
// around JSON output.
func cleanJSONResponse(response string) string {
	cleaned := strings.TrimSpace(response)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// fallbackContent builds a minimal draft when the model response could not be
// parsed, keeping the raw text as the body.
func fallbackContent(topic, raw string) *GeneratedContent {
	return &GeneratedContent{
		Title:           titleCase(topic),
		Slug:            models.Slugify(topic),
		MetaDescription: fmt.Sprintf("Discover the best %s with ShoeSwiper", topic),
		Keywords:        strings.Fields(topic),
		Content:         raw,
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		words[i] = strings.ToUpper(string(runes[:1])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}
