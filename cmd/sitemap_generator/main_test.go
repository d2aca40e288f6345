package main

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
	"github.com/ianmerrill10/shoeswipermainproject2/internal/render"
	"github.com/ianmerrill10/shoeswipermainproject2/internal/services"
)

type fakeStore struct {
	posts map[string][]models.PostRecord
}

func (f *fakeStore) FetchPosts(ctx context.Context, category string, limit int) ([]models.PostRecord, error) {
	return f.posts[category], nil
}

type fakePublisher struct {
	keys []string
}

func (f *fakePublisher) Publish(ctx context.Context, key string, body []byte, contentType string) (*services.PublishResult, error) {
	f.keys = append(f.keys, key)
	return &services.PublishResult{Key: key, PublicURL: "https://shoeswiper.com/" + key}, nil
}

func testApp(store *fakeStore, pub *fakePublisher, pings *[]string) *App {
	domain := "https://shoeswiper.com"
	generator := render.NewGenerator(domain, "shoeswiper-20")
	generator.Now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }
	return &App{
		store:      store,
		publisher:  pub,
		generator:  generator,
		categories: models.DefaultCategories(domain),
		domain:     domain,
		ping: func(ctx context.Context, sitemapURL string) map[string]bool {
			if pings != nil {
				*pings = append(*pings, sitemapURL)
			}
			return map[string]bool{"google": true, "bing": true, "yandex": true}
		},
	}
}

func recentPost(slug string) models.PostRecord {
	return models.PostRecord{
		ID:          "id-" + slug,
		Slug:        slug,
		Title:       "Post " + slug,
		PublishedAt: "2026-08-28T09:00:00Z",
		Status:      "published",
	}
}

func TestHandleEventGeneratesAllSitemaps(t *testing.T) {
	store := &fakeStore{posts: map[string][]models.PostRecord{
		"sneaker": {recentPost("a")},
	}}
	pub := &fakePublisher{}
	var pings []string
	app := testApp(store, pub, &pings)

	resp, err := app.HandleEvent(context.Background(), Event{SkipPing: true})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	assert.Contains(t, pub.keys, "blog/sneaker/sitemap.xml")
	assert.Contains(t, pub.keys, "blog/sneaker/sitemap-news.xml", "recent post qualifies for the news sitemap")
	assert.Contains(t, pub.keys, "blog/music/sitemap.xml")
	assert.Contains(t, pub.keys, "sitemap-static.xml")
	assert.Contains(t, pub.keys, "sitemap.xml")
	assert.Contains(t, pub.keys, "robots.txt")
	assert.Empty(t, pings, "skip_ping suppresses search engine pings")
}

func TestHandleEventNewsSitemapSkippedWhenStale(t *testing.T) {
	stale := recentPost("old")
	stale.PublishedAt = "2026-08-01T09:00:00Z"
	store := &fakeStore{posts: map[string][]models.PostRecord{"sneaker": {stale}}}
	pub := &fakePublisher{}
	app := testApp(store, pub, nil)

	_, err := app.HandleEvent(context.Background(), Event{Category: "sneaker", SkipPing: true})
	require.NoError(t, err)

	assert.Contains(t, pub.keys, "blog/sneaker/sitemap.xml")
	assert.NotContains(t, pub.keys, "blog/sneaker/sitemap-news.xml")
}

func TestHandleEventPingOnly(t *testing.T) {
	pub := &fakePublisher{}
	var pings []string
	app := testApp(&fakeStore{}, pub, &pings)

	resp, err := app.HandleEvent(context.Background(), Event{PingOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, pub.keys, "ping_only generates nothing")
	assert.Equal(t, []string{"https://shoeswiper.com/sitemap.xml"}, pings)

	var summary sitemapSummary
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &summary))
	assert.True(t, summary.Pings["google"])
}

func TestHandleEventPingsIndexAfterGeneration(t *testing.T) {
	store := &fakeStore{posts: map[string][]models.PostRecord{"sneaker": {recentPost("a")}}}
	pub := &fakePublisher{}
	var pings []string
	app := testApp(store, pub, &pings)

	_, err := app.HandleEvent(context.Background(), Event{Category: "sneaker"})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://shoeswiper.com/sitemap.xml"}, pings)
}

func TestHandleEventSingleCategory(t *testing.T) {
	store := &fakeStore{posts: map[string][]models.PostRecord{"music": {recentPost("m")}}}
	pub := &fakePublisher{}
	app := testApp(store, pub, nil)

	_, err := app.HandleEvent(context.Background(), Event{Category: "music", SkipPing: true})
	require.NoError(t, err)

	assert.Contains(t, pub.keys, "blog/music/sitemap.xml")
	assert.NotContains(t, pub.keys, "blog/sneaker/sitemap.xml")
}
