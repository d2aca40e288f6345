package render

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
)

type rssDoc struct {
	XMLName      xml.Name   `xml:"rss"`
	Version      string     `xml:"version,attr"`
	XMLNSAtom    string     `xml:"xmlns:atom,attr"`
	XMLNSMedia   string     `xml:"xmlns:media,attr"`
	XMLNSDC      string     `xml:"xmlns:dc,attr"`
	XMLNSContent string     `xml:"xmlns:content,attr"`
	Channel      rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string       `xml:"title"`
	Link          string       `xml:"link"`
	Description   string       `xml:"description"`
	Language      string       `xml:"language"`
	Category      string       `xml:"category"`
	Generator     string       `xml:"generator"`
	Docs          string       `xml:"docs"`
	TTL           string       `xml:"ttl"`
	LastBuildDate string       `xml:"lastBuildDate"`
	AtomLink      rssAtomLink  `xml:"atom:link"`
	Image         rssImage     `xml:"image"`
	Items         []rssItem    `xml:"item"`
}

type rssAtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssImage struct {
	URL    string `xml:"url"`
	Title  string `xml:"title"`
	Link   string `xml:"link"`
	Width  string `xml:"width"`
	Height string `xml:"height"`
}

type rssItem struct {
	Title        string        `xml:"title"`
	Link         string        `xml:"link"`
	Description  string        `xml:"description"`
	Content      rssCDATA      `xml:"content:encoded"`
	GUID         rssGUID       `xml:"guid"`
	PubDate      string        `xml:"pubDate"`
	Author       string        `xml:"author"`
	Creator      string        `xml:"dc:creator"`
	Categories   []string      `xml:"category"`
	Enclosure    *rssEnclosure `xml:"enclosure"`
	MediaContent *mediaContent `xml:"media:content"`
	MediaTitle   string        `xml:"media:title,omitempty"`
}

type rssCDATA struct {
	Text string `xml:",cdata"`
}

type rssGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type rssEnclosure struct {
	URL    string `xml:"url,attr"`
	Type   string `xml:"type,attr"`
	Length string `xml:"length,attr"`
}

type mediaContent struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

// RenderRSS produces the RSS 2.0 feed for one category. The envelope is
// valid even with zero posts.
func (g *Generator) RenderRSS(cfg models.CategoryConfig, posts []models.NormalizedPost) (Document, error) {
	channelLink := g.categoryURL(cfg)

	doc := rssDoc{
		Version:      "2.0",
		XMLNSAtom:    "http://www.w3.org/2005/Atom",
		XMLNSMedia:   "http://search.yahoo.com/mrss/",
		XMLNSDC:      "http://purl.org/dc/elements/1.1/",
		XMLNSContent: "http://purl.org/rss/1.0/modules/content/",
		Channel: rssChannel{
			Title:         cfg.FeedTitle,
			Link:          channelLink,
			Description:   cfg.FeedDescription,
			Language:      cfg.Language,
			Category:      cfg.FeedCategory,
			Generator:     "ShoeSwiper RSS Generator v1.0",
			Docs:          "https://www.rssboard.org/rss-specification",
			TTL:           "60",
			LastBuildDate: models.FormatRFC822(g.Now().UTC()),
			AtomLink: rssAtomLink{
				Href: channelLink + "/feed.xml",
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Image: rssImage{
				URL:    cfg.Image,
				Title:  cfg.FeedTitle,
				Link:   channelLink,
				Width:  "144",
				Height: "144",
			},
		},
	}

	for _, post := range posts {
		doc.Channel.Items = append(doc.Channel.Items, g.rssItem(cfg, post))
	}

	body, err := marshalXML(doc)
	if err != nil {
		return Document{}, err
	}
	return Document{ContentType: ContentTypeXML, Body: body}, nil
}

func (g *Generator) rssItem(cfg models.CategoryConfig, post models.NormalizedPost) rssItem {
	postURL := g.postURL(cfg, post)

	pubDate := post.PublishedAt
	if pubDate == "" {
		pubDate = post.CreatedAt
	}

	item := rssItem{
		Title:       post.Title,
		Link:        postURL,
		Description: post.Description,
		Content:     rssCDATA{Text: post.Content},
		GUID:        rssGUID{IsPermaLink: "true", Value: postURL},
		PubDate:     models.FormatRFC822(g.parseOrNow(pubDate)),
		Author:      fmt.Sprintf("%s (%s)", post.AuthorEmail, post.AuthorName),
		Creator:     post.AuthorName,
		Categories:  post.Tags,
	}

	if post.Image != "" {
		imageType := mimeTypeForImage(post.Image)
		item.Enclosure = &rssEnclosure{
			URL:    post.Image,
			Type:   imageType,
			Length: strconv.FormatInt(post.ImageSize, 10),
		}
		item.MediaContent = &mediaContent{URL: post.Image, Type: imageType}
		item.MediaTitle = post.ImageAlt
		if item.MediaTitle == "" {
			item.MediaTitle = post.Title
		}
	}

	return item
}
