package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PostRecord is a blog post row as stored in DynamoDB. No field is
// guaranteed present: rows written by different generations of the content
// pipeline carry different subsets, and tags/keywords may be a list, a
// JSON-serialized string, or a plain string. Consumers never read a
// PostRecord directly; they go through Normalize.
type PostRecord struct {
	ID              string `dynamodbav:"id" json:"id"`
	PostID          string `dynamodbav:"post_id" json:"post_id"`
	Category        string `dynamodbav:"category" json:"category"`
	Slug            string `dynamodbav:"slug" json:"slug"`
	Title           string `dynamodbav:"title" json:"title"`
	Excerpt         string `dynamodbav:"excerpt" json:"excerpt"`
	MetaDescription string `dynamodbav:"meta_description" json:"meta_description"`
	Content         string `dynamodbav:"content" json:"content"`
	ContentHTML     string `dynamodbav:"content_html" json:"content_html"`
	Body            string `dynamodbav:"body" json:"body"`

	FeaturedImage string `dynamodbav:"featured_image" json:"featured_image"`
	ImageURL      string `dynamodbav:"image_url" json:"image_url"`
	ImageAlt      string `dynamodbav:"image_alt" json:"image_alt"`
	ImageCaption  string `dynamodbav:"image_caption" json:"image_caption"`
	ImageSize     int64  `dynamodbav:"image_size" json:"image_size"`

	Author      *AuthorRecord `dynamodbav:"author" json:"author,omitempty"`
	AuthorName  string        `dynamodbav:"author_name" json:"author_name"`
	AuthorEmail string        `dynamodbav:"author_email" json:"author_email"`

	PublishedAt string `dynamodbav:"published_at" json:"published_at"`
	UpdatedAt   string `dynamodbav:"updated_at" json:"updated_at"`
	CreatedAt   string `dynamodbav:"created_at" json:"created_at"`
	Status      string `dynamodbav:"status" json:"status"`

	Tags     interface{} `dynamodbav:"tags" json:"tags,omitempty"`
	Keywords interface{} `dynamodbav:"keywords" json:"keywords,omitempty"`

	AffiliateProducts []ProductRecord `dynamodbav:"affiliate_products" json:"affiliate_products,omitempty"`
	Products          []ProductRecord `dynamodbav:"products" json:"products,omitempty"`

	S3URL  string `dynamodbav:"s3_url" json:"s3_url"`
	Views  int    `dynamodbav:"views" json:"views"`
	Clicks int    `dynamodbav:"clicks" json:"clicks"`
}

// AuthorRecord is the nested author form used by newer rows; older rows use
// the flat author_name/author_email fields instead.
type AuthorRecord struct {
	Name   string `dynamodbav:"name" json:"name"`
	Email  string `dynamodbav:"email" json:"email"`
	Avatar string `dynamodbav:"avatar" json:"avatar"`
}

// ProductRecord is one affiliate product attached to a post. Price, rating,
// and review count arrive as strings or numbers depending on the writer, so
// they stay loosely typed until the renderer parses them.
type ProductRecord struct {
	Name          string      `dynamodbav:"name" json:"name"`
	ASIN          string      `dynamodbav:"asin" json:"asin"`
	Why           string      `dynamodbav:"why" json:"why,omitempty"`
	Price         interface{} `dynamodbav:"price" json:"price,omitempty"`
	CurrentPrice  interface{} `dynamodbav:"current_price" json:"current_price,omitempty"`
	OriginalPrice interface{} `dynamodbav:"original_price" json:"original_price,omitempty"`
	ImageURL      string      `dynamodbav:"image_url" json:"image_url"`
	Image         string      `dynamodbav:"image" json:"image"`
	AffiliateLink string      `dynamodbav:"affiliate_link" json:"affiliate_link"`
	URL           string      `dynamodbav:"url" json:"url"`
	Rating        interface{} `dynamodbav:"rating" json:"rating,omitempty"`
	ReviewCount   interface{} `dynamodbav:"review_count" json:"review_count,omitempty"`
}

// NormalizedPost is the canonical view of a post that all renderers consume.
// Every field is populated; missing record fields degrade to documented
// defaults. Timestamps stay as raw strings because each renderer applies its
// own parse-failure fallback.
type NormalizedPost struct {
	ID           string
	Slug         string
	Title        string
	Description  string
	Content      string
	Tags         []string
	Keywords     []string
	AuthorName   string
	AuthorEmail  string
	AuthorAvatar string
	Image        string
	ImageAlt     string
	ImageCaption string
	ImageSize    int64
	PublishedAt  string
	UpdatedAt    string
	CreatedAt    string
	Products     []ProductRecord
}

const (
	DefaultTitle       = "Untitled"
	DefaultAuthorName  = "ShoeSwiper Team"
	DefaultAuthorEmail = "hello@shoeswiper.com"
)

// Normalize derives the canonical values for a raw post record. It never
// fails: every missing or malformed field falls back to its default. The
// site domain is needed to build the default author avatar URL.
func Normalize(rec PostRecord, domain string) NormalizedPost {
	p := NormalizedPost{
		ID:           rec.ID,
		Slug:         rec.Slug,
		Title:        rec.Title,
		Description:  rec.MetaDescription,
		Content:      rec.Content,
		Image:        rec.FeaturedImage,
		ImageAlt:     rec.ImageAlt,
		ImageCaption: rec.ImageCaption,
		ImageSize:    rec.ImageSize,
		PublishedAt:  rec.PublishedAt,
		UpdatedAt:    rec.UpdatedAt,
		CreatedAt:    rec.CreatedAt,
		Products:     rec.AffiliateProducts,
	}

	if p.ID == "" {
		p.ID = rec.PostID
	}
	if p.Slug == "" {
		p.Slug = p.ID
	}
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.Description == "" {
		p.Description = rec.Excerpt
	}
	if p.Content == "" {
		p.Content = rec.ContentHTML
	}
	if p.Content == "" {
		p.Content = rec.Body
	}
	if p.Image == "" {
		p.Image = rec.ImageURL
	}

	p.AuthorName = rec.AuthorName
	p.AuthorEmail = rec.AuthorEmail
	if rec.Author != nil {
		if rec.Author.Name != "" {
			p.AuthorName = rec.Author.Name
		}
		if rec.Author.Email != "" {
			p.AuthorEmail = rec.Author.Email
		}
		p.AuthorAvatar = rec.Author.Avatar
	}
	if p.AuthorName == "" {
		p.AuthorName = DefaultAuthorName
	}
	if p.AuthorEmail == "" {
		p.AuthorEmail = DefaultAuthorEmail
	}
	if p.AuthorAvatar == "" {
		p.AuthorAvatar = domain + "/default-avatar.png"
	}

	p.Tags = ParseStringList(rec.Tags)
	p.Keywords = ParseStringList(rec.Keywords)
	if len(p.Keywords) == 0 {
		p.Keywords = p.Tags
	}

	if len(p.Products) == 0 {
		p.Products = rec.Products
	}

	return p
}

// ParseStringList converts the legacy string-or-list tag representation into
// a plain slice of strings. A string beginning with "[" is treated as a
// JSON-serialized list; any other non-empty string becomes a single-element
// list. This is the only place the legacy form is interpreted.
func ParseStringList(v interface{}) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		return val
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprintf("%v", item))
			}
		}
		return out
	case string:
		if val == "" {
			return nil
		}
		if strings.HasPrefix(val, "[") {
			var parsed []string
			if err := json.Unmarshal([]byte(val), &parsed); err == nil {
				return parsed
			}
		}
		return []string{val}
	default:
		return nil
	}
}

// Truncate hard-cuts s to at most n characters (runes, not bytes). The cut
// is not word-aware.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
