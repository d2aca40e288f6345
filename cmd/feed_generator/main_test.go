package main

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
	"github.com/ianmerrill10/shoeswipermainproject2/internal/render"
	"github.com/ianmerrill10/shoeswipermainproject2/internal/services"
)

type fakeStore struct {
	posts map[string][]models.PostRecord
	err   error
}

func (f *fakeStore) FetchPosts(ctx context.Context, category string, limit int) ([]models.PostRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.posts[category], nil
}

type fakePublisher struct {
	keys []string
	err  error
}

func (f *fakePublisher) Publish(ctx context.Context, key string, body []byte, contentType string) (*services.PublishResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.keys = append(f.keys, key)
	return &services.PublishResult{Key: key, PublicURL: "https://shoeswiper.com/" + key}, nil
}

func testApp(store *fakeStore, pub *fakePublisher) *App {
	domain := "https://shoeswiper.com"
	generator := render.NewGenerator(domain, "shoeswiper-20")
	generator.Now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }
	return &App{
		store:      store,
		publisher:  pub,
		generator:  generator,
		categories: models.DefaultCategories(domain),
		domain:     domain,
	}
}

func publishedPost(slug string) models.PostRecord {
	return models.PostRecord{
		ID:          "id-" + slug,
		Slug:        slug,
		Title:       "Post " + slug,
		Content:     "<p>body</p>",
		PublishedAt: "2026-08-27T09:00:00Z",
		Status:      "published",
	}
}

func TestHandleEventGeneratesAllCategories(t *testing.T) {
	store := &fakeStore{posts: map[string][]models.PostRecord{
		"sneaker":  {publishedPost("a")},
		"shoes":    {publishedPost("b")},
		"workwear": {publishedPost("c")},
		"music":    {publishedPost("d")},
	}}
	pub := &fakePublisher{}
	app := testApp(store, pub)

	resp, err := app.HandleEvent(context.Background(), Event{})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	assert.Contains(t, pub.keys, "blog/sneaker/feed.xml")
	assert.Contains(t, pub.keys, "blog/sneaker/atom.xml")
	assert.Contains(t, pub.keys, "blog/music/feed.xml")
	assert.Contains(t, pub.keys, "blog/feeds.opml")
	assert.Len(t, pub.keys, 9, "two feeds per category plus OPML")
}

func TestHandleEventSingleCategory(t *testing.T) {
	store := &fakeStore{posts: map[string][]models.PostRecord{
		"shoes": {publishedPost("b")},
	}}
	pub := &fakePublisher{}
	app := testApp(store, pub)

	resp, err := app.HandleEvent(context.Background(), Event{BlogType: "shoes"})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []string{"blog/shoes/feed.xml", "blog/shoes/atom.xml", "blog/feeds.opml"}, pub.keys)
}

func TestHandleEventEmptyCategoryReports207(t *testing.T) {
	store := &fakeStore{posts: map[string][]models.PostRecord{}}
	pub := &fakePublisher{}
	app := testApp(store, pub)

	resp, err := app.HandleEvent(context.Background(), Event{BlogType: "sneaker"})
	require.NoError(t, err)
	assert.Equal(t, 207, resp.StatusCode)

	var summary feedSummary
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &summary))
	require.Len(t, summary.Failed, 1)
	assert.Equal(t, "No posts found", summary.Failed[0].Error)
}

func TestHandleEventUnknownCategorySkipped(t *testing.T) {
	store := &fakeStore{posts: map[string][]models.PostRecord{}}
	pub := &fakePublisher{}
	app := testApp(store, pub)

	resp, err := app.HandleEvent(context.Background(), Event{BlogType: "garden"})
	require.NoError(t, err)
	// Only the OPML uploads; the unknown category is silently dropped.
	assert.Equal(t, []string{"blog/feeds.opml"}, pub.keys)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestUnwrapSNS(t *testing.T) {
	event := Event{
		Records: []events.SNSEventRecord{
			{SNS: events.SNSEntity{Message: `{"blog_type":"music"}`}},
		},
	}
	assert.Equal(t, "music", unwrapSNS(event).BlogType)
}

func TestTargetCategories(t *testing.T) {
	assert.Equal(t, models.CategoryOrder, targetCategories(Event{}))
	assert.Equal(t, []string{"music"}, targetCategories(Event{BlogType: "music"}))
	assert.Equal(t, []string{"shoes"}, targetCategories(Event{Category: "shoes"}))
	assert.Equal(t, []string{"workwear"}, targetCategories(Event{PathParameters: map[string]string{"blog_type": "workwear"}}))
}
