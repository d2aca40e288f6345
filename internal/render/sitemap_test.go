package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
)

func postPublishedDaysAgo(g *Generator, days int) models.NormalizedPost {
	post := samplePost()
	post.PublishedAt = models.FormatISO8601(g.Now().UTC().AddDate(0, 0, -days))
	post.UpdatedAt = ""
	return post
}

func TestRenderSitemapIndexEntryComesFirst(t *testing.T) {
	g := testGenerator()

	doc, err := g.RenderSitemap(sneakerConfig(), []models.NormalizedPost{samplePost()})
	require.NoError(t, err)

	out := string(doc.Body)
	categoryIdx := strings.Index(out, "<loc>https://shoeswiper.com/blog/sneaker</loc>")
	postIdx := strings.Index(out, "<loc>https://shoeswiper.com/blog/sneaker/air-max-guide</loc>")
	require.NotEqual(t, -1, categoryIdx)
	require.NotEqual(t, -1, postIdx)
	assert.Less(t, categoryIdx, postIdx)

	assert.Contains(t, out, "<priority>1.0</priority>")
	assert.Contains(t, out, "<priority>0.8</priority>")
}

func TestRenderSitemapChangeFreqByAge(t *testing.T) {
	g := testGenerator()
	cfg := sneakerConfig()

	cases := []struct {
		daysOld int
		want    string
	}{
		{1, "daily"},
		{10, "weekly"},
		{40, "monthly"},
		{200, "yearly"},
	}

	for _, tc := range cases {
		post := postPublishedDaysAgo(g, tc.daysOld)
		got := g.changeFreq(cfg, post, g.Now().UTC())
		assert.Equal(t, tc.want, got, "post %d days old", tc.daysOld)
	}
}

func TestRenderSitemapChangeFreqFallsBackToCategoryDefault(t *testing.T) {
	g := testGenerator()
	cfg := sneakerConfig()

	post := samplePost()
	post.PublishedAt = ""
	assert.Equal(t, cfg.ChangeFreq, g.changeFreq(cfg, post, g.Now().UTC()))
}

func TestRenderSitemapImageBlock(t *testing.T) {
	g := testGenerator()

	doc, err := g.RenderSitemap(sneakerConfig(), []models.NormalizedPost{samplePost()})
	require.NoError(t, err)

	out := string(doc.Body)
	assert.Contains(t, out, "<image:loc>https://shoeswiper.com/images/air-max.jpg</image:loc>")
	assert.Contains(t, out, "<image:title>A wall of Air Max sneakers</image:title>")
	assert.Contains(t, out, "<image:caption>Everything about Air Max.</image:caption>")
}

func TestRenderNewsSitemapWindow(t *testing.T) {
	g := testGenerator()
	cfg := sneakerConfig()

	recent := postPublishedDaysAgo(g, 1)
	stale := postPublishedDaysAgo(g, 5)
	stale.Slug = "old-post"

	doc, err := g.RenderNewsSitemap(cfg, []models.NormalizedPost{recent, stale})
	require.NoError(t, err)
	require.NotNil(t, doc)

	out := string(doc.Body)
	assert.Contains(t, out, "air-max-guide")
	assert.NotContains(t, out, "old-post")
	assert.Contains(t, out, "<news:name>ShoeSwiper</news:name>")
	assert.Contains(t, out, "<news:language>en</news:language>")
}

func TestRenderNewsSitemapNilWhenNoRecentPosts(t *testing.T) {
	g := testGenerator()

	doc, err := g.RenderNewsSitemap(sneakerConfig(), []models.NormalizedPost{postPublishedDaysAgo(g, 30)})
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestRenderNewsSitemapKeywordsCapped(t *testing.T) {
	g := testGenerator()

	post := postPublishedDaysAgo(g, 0)
	post.Keywords = []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8", "k9", "k10", "k11", "k12"}

	doc, err := g.RenderNewsSitemap(sneakerConfig(), []models.NormalizedPost{post})
	require.NoError(t, err)
	require.NotNil(t, doc)

	out := string(doc.Body)
	assert.Contains(t, out, "k10")
	assert.NotContains(t, out, "k11")
}

func TestRenderSitemapIndexEntries(t *testing.T) {
	g := testGenerator()

	doc, err := g.RenderSitemapIndex([]SitemapRef{
		{Loc: "https://shoeswiper.com/blog/sneaker/sitemap.xml", LastMod: "2026-08-20"},
		{Loc: "https://shoeswiper.com/sitemap-static.xml"},
	})
	require.NoError(t, err)

	out := string(doc.Body)
	assert.Contains(t, out, "<loc>https://shoeswiper.com/blog/sneaker/sitemap.xml</loc>")
	assert.Contains(t, out, "<lastmod>2026-08-20</lastmod>")
	assert.Contains(t, out, "<lastmod>2026-08-28</lastmod>", "missing lastmod defaults to today")
}

func TestRenderStaticSitemapListsCategoryLandings(t *testing.T) {
	g := testGenerator()

	doc, err := g.RenderStaticSitemap(models.DefaultCategories("https://shoeswiper.com"))
	require.NoError(t, err)

	out := string(doc.Body)
	for _, page := range []string{"/app", "/about", "/contact", "/privacy", "/terms", "/blog"} {
		assert.Contains(t, out, "<loc>https://shoeswiper.com"+page+"</loc>")
	}
	for _, slug := range models.CategoryOrder {
		assert.Contains(t, out, "<loc>https://shoeswiper.com/blog/"+slug+"</loc>")
	}
}

func TestLastModPrefersUpdatedAt(t *testing.T) {
	g := testGenerator()

	post := samplePost()
	post.UpdatedAt = "2026-08-28T08:00:00Z"
	assert.Equal(t, "2026-08-28", g.lastModDay(post))

	post.UpdatedAt = ""
	assert.Equal(t, "2026-08-27", g.lastModDay(post))

	post.PublishedAt = ""
	assert.Equal(t, models.FormatDay(g.Now().UTC()), g.lastModDay(post))
}
