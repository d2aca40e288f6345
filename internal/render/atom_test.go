package render

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
)

func TestEntryUUIDIsStableAndWellFormed(t *testing.T) {
	url := "https://shoeswiper.com/blog/sneaker/air-max-guide"

	first := EntryUUID(url)
	second := EntryUUID(url)
	assert.Equal(t, first, second)

	uuidForm := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	assert.Regexp(t, uuidForm, first)

	other := EntryUUID(url + "/other")
	assert.NotEqual(t, first, other)
}

func TestRenderAtomFeedEnvelope(t *testing.T) {
	g := testGenerator()

	doc, err := g.RenderAtom(sneakerConfig(), nil)
	require.NoError(t, err)

	out := string(doc.Body)
	assert.True(t, strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>"))
	assert.Contains(t, out, `xmlns="http://www.w3.org/2005/Atom"`)
	assert.Contains(t, out, "<title>ShoeSwiper Sneaker Blog</title>")
	assert.Contains(t, out, `href="https://shoeswiper.com/blog/sneaker/atom.xml" rel="self"`)
	assert.Contains(t, out, "<updated>2026-08-28T12:00:00+00:00</updated>")
	assert.Contains(t, out, "<name>ShoeSwiper Team</name>")
	assert.NotContains(t, out, "<entry>")
}

func TestRenderAtomEntry(t *testing.T) {
	g := testGenerator()

	doc, err := g.RenderAtom(sneakerConfig(), []models.NormalizedPost{samplePost()})
	require.NoError(t, err)

	out := string(doc.Body)
	assert.Contains(t, out, "<id>urn:uuid:"+EntryUUID("https://shoeswiper.com/blog/sneaker/air-max-guide")+"</id>")
	assert.Contains(t, out, "<published>2026-08-27T09:00:00+00:00</published>")
	assert.Contains(t, out, "<updated>2026-08-27T09:00:00+00:00</updated>")
	assert.Contains(t, out, "<summary>Everything about Air Max.</summary>")
	assert.Contains(t, out, `<content type="html">`)
	assert.Contains(t, out, `<category term="nike" label="nike">`)
	assert.Contains(t, out, `<media:content url="https://shoeswiper.com/images/air-max.jpg" type="image/jpeg">`)
}

func TestRenderAtomEntryUpdatedFallsBackToPublished(t *testing.T) {
	g := testGenerator()

	post := samplePost()
	post.UpdatedAt = "2026-08-28T10:00:00Z"

	doc, err := g.RenderAtom(sneakerConfig(), []models.NormalizedPost{post})
	require.NoError(t, err)

	assert.Contains(t, string(doc.Body), "<updated>2026-08-28T10:00:00+00:00</updated>")
}
