package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testDomain = "https://shoeswiper.com"

func TestNormalizeDefaults(t *testing.T) {
	post := Normalize(PostRecord{}, testDomain)

	assert.Equal(t, "Untitled", post.Title)
	assert.Equal(t, "ShoeSwiper Team", post.AuthorName)
	assert.Equal(t, "hello@shoeswiper.com", post.AuthorEmail)
	assert.Equal(t, testDomain+"/default-avatar.png", post.AuthorAvatar)
	assert.Empty(t, post.Description)
	assert.Empty(t, post.Content)
}

func TestNormalizeIDAndSlugFallbacks(t *testing.T) {
	post := Normalize(PostRecord{PostID: "abc123"}, testDomain)
	assert.Equal(t, "abc123", post.ID)
	assert.Equal(t, "abc123", post.Slug, "slug falls back to the post id")

	post = Normalize(PostRecord{ID: "id-1", Slug: "my-slug"}, testDomain)
	assert.Equal(t, "id-1", post.ID)
	assert.Equal(t, "my-slug", post.Slug)
}

func TestNormalizeDescriptionPrefersMetaDescription(t *testing.T) {
	post := Normalize(PostRecord{MetaDescription: "meta", Excerpt: "excerpt"}, testDomain)
	assert.Equal(t, "meta", post.Description)

	post = Normalize(PostRecord{Excerpt: "excerpt"}, testDomain)
	assert.Equal(t, "excerpt", post.Description)
}

func TestNormalizeContentFallbackChain(t *testing.T) {
	post := Normalize(PostRecord{Content: "a", ContentHTML: "b", Body: "c"}, testDomain)
	assert.Equal(t, "a", post.Content)

	post = Normalize(PostRecord{ContentHTML: "b", Body: "c"}, testDomain)
	assert.Equal(t, "b", post.Content)

	post = Normalize(PostRecord{Body: "c"}, testDomain)
	assert.Equal(t, "c", post.Content)
}

func TestNormalizeAuthorPrecedence(t *testing.T) {
	rec := PostRecord{
		AuthorName:  "Flat Name",
		AuthorEmail: "flat@example.com",
		Author:      &AuthorRecord{Name: "Nested Name", Avatar: "https://cdn.example.com/a.png"},
	}
	post := Normalize(rec, testDomain)

	assert.Equal(t, "Nested Name", post.AuthorName, "nested author wins over flat fields")
	assert.Equal(t, "flat@example.com", post.AuthorEmail, "flat email survives when nested email is empty")
	assert.Equal(t, "https://cdn.example.com/a.png", post.AuthorAvatar)
}

func TestNormalizeKeywordsFallBackToTags(t *testing.T) {
	post := Normalize(PostRecord{Tags: []interface{}{"nike", "adidas"}}, testDomain)
	assert.Equal(t, []string{"nike", "adidas"}, post.Tags)
	assert.Equal(t, []string{"nike", "adidas"}, post.Keywords)
}

func TestNormalizeProductsFallback(t *testing.T) {
	rec := PostRecord{Products: []ProductRecord{{Name: "Air Max 90"}}}
	post := Normalize(rec, testDomain)
	assert.Len(t, post.Products, 1)

	rec.AffiliateProducts = []ProductRecord{{Name: "Jordan 1"}}
	post = Normalize(rec, testDomain)
	assert.Equal(t, "Jordan 1", post.Products[0].Name, "affiliate_products wins over products")
}

func TestNormalizeImageFallback(t *testing.T) {
	post := Normalize(PostRecord{ImageURL: "https://img.example.com/b.jpg"}, testDomain)
	assert.Equal(t, "https://img.example.com/b.jpg", post.Image)

	post = Normalize(PostRecord{FeaturedImage: "https://img.example.com/a.jpg", ImageURL: "https://img.example.com/b.jpg"}, testDomain)
	assert.Equal(t, "https://img.example.com/a.jpg", post.Image)
}

func TestParseStringList(t *testing.T) {
	assert.Nil(t, ParseStringList(nil))
	assert.Nil(t, ParseStringList(""))
	assert.Equal(t, []string{"a", "b"}, ParseStringList([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, ParseStringList([]interface{}{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, ParseStringList(`["a","b"]`))
	assert.Equal(t, []string{"plain tag"}, ParseStringList("plain tag"))
	assert.Equal(t, []string{"[not json"}, ParseStringList("[not json"))
	assert.Equal(t, []string{"42"}, ParseStringList([]interface{}{42}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 160))
	assert.Equal(t, strings.Repeat("x", 160), Truncate(strings.Repeat("x", 200), 160))

	// Rune-aware: multi-byte characters count as one.
	assert.Equal(t, "héllo", Truncate("héllo world", 5))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "best-steel-toe-boots", Slugify("Best Steel Toe Boots"))
	assert.Equal(t, "nike-vs-adidas", Slugify("  Nike vs. Adidas!  "))
}

func TestGeneratePostIDIsStable(t *testing.T) {
	ts, err := ParseInstant("2026-08-27T09:00:00Z")
	assert.NoError(t, err)

	a := GeneratePostID("sneaker", "air-max-guide", ts)
	b := GeneratePostID("sneaker", "air-max-guide", ts)
	assert.Equal(t, a, b)
	assert.Len(t, a, 12)

	c := GeneratePostID("shoes", "air-max-guide", ts)
	assert.NotEqual(t, a, c)
}
