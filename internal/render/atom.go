package render

import (
	"crypto/md5"
	"encoding/xml"

	"github.com/google/uuid"
	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
)

type atomFeed struct {
	XMLName    xml.Name      `xml:"feed"`
	XMLNS      string        `xml:"xmlns,attr"`
	XMLNSMedia string        `xml:"xmlns:media,attr"`
	Title      string        `xml:"title"`
	Subtitle   string        `xml:"subtitle"`
	Links      []atomLink    `xml:"link"`
	ID         string        `xml:"id"`
	Updated    string        `xml:"updated"`
	Generator  atomGenerator `xml:"generator"`
	Icon       string        `xml:"icon"`
	Logo       string        `xml:"logo"`
	Author     atomAuthor    `xml:"author"`
	Entries    []atomEntry   `xml:"entry"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type atomGenerator struct {
	URI     string `xml:"uri,attr"`
	Version string `xml:"version,attr"`
	Name    string `xml:",chardata"`
}

type atomAuthor struct {
	Name  string `xml:"name"`
	Email string `xml:"email,omitempty"`
	URI   string `xml:"uri,omitempty"`
}

type atomEntry struct {
	Title        string         `xml:"title"`
	Link         atomLink       `xml:"link"`
	ID           string         `xml:"id"`
	Published    string         `xml:"published"`
	Updated      string         `xml:"updated"`
	Author       atomAuthor     `xml:"author"`
	Summary      string         `xml:"summary"`
	Content      atomContent    `xml:"content"`
	Categories   []atomCategory `xml:"category"`
	MediaContent *mediaContent  `xml:"media:content"`
}

type atomContent struct {
	Type string `xml:"type,attr"`
	Text string `xml:",chardata"`
}

type atomCategory struct {
	Term  string `xml:"term,attr"`
	Label string `xml:"label,attr"`
}

// RenderAtom produces the Atom feed for one category.
func (g *Generator) RenderAtom(cfg models.CategoryConfig, posts []models.NormalizedPost) (Document, error) {
	feedLink := g.categoryURL(cfg)

	feed := atomFeed{
		XMLNS:      "http://www.w3.org/2005/Atom",
		XMLNSMedia: "http://search.yahoo.com/mrss/",
		Title:      cfg.FeedTitle,
		Subtitle:   cfg.FeedDescription,
		Links: []atomLink{
			{Href: feedLink + "/atom.xml", Rel: "self", Type: "application/atom+xml"},
			{Href: feedLink, Rel: "alternate", Type: "text/html"},
		},
		ID:        feedLink,
		Updated:   models.FormatISO8601(g.Now().UTC()),
		Generator: atomGenerator{URI: g.Domain, Version: "1.0", Name: "ShoeSwiper Atom Generator"},
		Icon:      g.Domain + "/favicon.ico",
		Logo:      cfg.Image,
		Author: atomAuthor{
			Name:  models.DefaultAuthorName,
			Email: models.DefaultAuthorEmail,
			URI:   g.Domain,
		},
	}

	for _, post := range posts {
		feed.Entries = append(feed.Entries, g.atomEntry(cfg, post))
	}

	body, err := marshalXML(feed)
	if err != nil {
		return Document{}, err
	}
	return Document{ContentType: ContentTypeXML, Body: body}, nil
}

func (g *Generator) atomEntry(cfg models.CategoryConfig, post models.NormalizedPost) atomEntry {
	postURL := g.postURL(cfg, post)

	publishedRaw := post.PublishedAt
	if publishedRaw == "" {
		publishedRaw = post.CreatedAt
	}
	published := g.parseOrNow(publishedRaw)

	updatedRaw := post.UpdatedAt
	if updatedRaw == "" {
		updatedRaw = publishedRaw
	}
	updated := g.parseOrNow(updatedRaw)

	entry := atomEntry{
		Title:     post.Title,
		Link:      atomLink{Href: postURL, Rel: "alternate", Type: "text/html"},
		ID:        "urn:uuid:" + EntryUUID(postURL),
		Published: models.FormatISO8601(published),
		Updated:   models.FormatISO8601(updated),
		Author:    atomAuthor{Name: post.AuthorName},
		Summary:   post.Description,
		Content:   atomContent{Type: "html", Text: post.Content},
	}

	for _, tag := range post.Tags {
		entry.Categories = append(entry.Categories, atomCategory{Term: tag, Label: tag})
	}

	if post.Image != "" {
		entry.MediaContent = &mediaContent{URL: post.Image, Type: mimeTypeForImage(post.Image)}
	}

	return entry
}

// EntryUUID derives the stable entry UUID for a post URL: the 128-bit MD5 of
// the URL laid out in the hyphenated 8-4-4-4-12 form. The same URL always
// yields the same UUID, so feed readers never see duplicate entries.
func EntryUUID(postURL string) string {
	sum := md5.Sum([]byte(postURL))
	return uuid.UUID(sum).String()
}
