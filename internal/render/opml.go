package render

import (
	"encoding/xml"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
)

type opmlDoc struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    opmlHead `xml:"head"`
	Body    opmlBody `xml:"body"`
}

type opmlHead struct {
	Title       string `xml:"title"`
	DateCreated string `xml:"dateCreated"`
	OwnerName   string `xml:"ownerName"`
	OwnerEmail  string `xml:"ownerEmail"`
}

type opmlBody struct {
	Outlines []opmlOutline `xml:"outline"`
}

type opmlOutline struct {
	Text    string `xml:"text,attr"`
	Title   string `xml:"title,attr"`
	Type    string `xml:"type,attr"`
	XMLURL  string `xml:"xmlUrl,attr"`
	HTMLURL string `xml:"htmlUrl,attr"`
}

// RenderOPML produces the OPML file listing every category's RSS feed.
func (g *Generator) RenderOPML(categories map[string]models.CategoryConfig) (Document, error) {
	doc := opmlDoc{
		Version: "2.0",
		Head: opmlHead{
			Title:       "ShoeSwiper Blog Feeds",
			DateCreated: models.FormatRFC822(g.Now().UTC()),
			OwnerName:   "ShoeSwiper",
			OwnerEmail:  models.DefaultAuthorEmail,
		},
	}

	for _, slug := range models.CategoryOrder {
		cfg, ok := categories[slug]
		if !ok {
			continue
		}
		doc.Body.Outlines = append(doc.Body.Outlines, opmlOutline{
			Text:    cfg.FeedTitle,
			Title:   cfg.FeedTitle,
			Type:    "rss",
			XMLURL:  g.categoryURL(cfg) + "/feed.xml",
			HTMLURL: g.categoryURL(cfg),
		})
	}

	body, err := marshalXML(doc)
	if err != nil {
		return Document{}, err
	}
	return Document{ContentType: ContentTypeOPML, Body: body}, nil
}
