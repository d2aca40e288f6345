package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
)

// navLabels maps category slugs to their header navigation labels.
var navLabels = map[string]string{
	"sneaker":  "Sneakers",
	"shoes":    "Shoes",
	"workwear": "Workwear",
	"music":    "Music",
}

type navItem struct {
	Href   string
	Label  string
	Active bool
}

type tagLink struct {
	Href  string
	Label string
}

type featuredImage struct {
	URL     string
	Alt     string
	Caption string
}

type sharedPage struct {
	Domain string
	Nav    []navItem
	Year   int
}

type postPage struct {
	sharedPage
	Title          string
	SiteName       string
	Description    string
	Keywords       string
	AuthorName     string
	AuthorAvatar   string
	Image          string
	CanonicalURL   string
	Published      string
	JSONLD         template.JS
	BadgeColor     template.CSS
	BadgeIcon      string
	BadgeName      string
	FormattedDate  string
	ReadingTime    int
	Featured       *featuredImage
	Content        template.HTML
	Products       []ProductCard
	Tags           []tagLink
	ShareTwitter   string
	ShareFacebook  string
	SharePinterest string
	PostID         string
}

type indexCard struct {
	URL     string
	Image   string
	Title   string
	Excerpt string
	Date    string
}

type indexPage struct {
	sharedPage
	Name         string
	Description  string
	Icon         string
	CanonicalURL string
	Cards        []indexCard
}

// RenderPostPage produces the complete static HTML page for one post.
func (g *Generator) RenderPostPage(cfg models.CategoryConfig, post models.NormalizedPost) (Document, error) {
	postURL := g.postURL(cfg, post)

	published := post.PublishedAt
	if published == "" {
		published = models.FormatISO8601(g.Now().UTC())
	}

	page := postPage{
		sharedPage:    g.sharedPage(cfg),
		Title:         post.Title,
		SiteName:      cfg.Name,
		Description:   models.Truncate(post.Description, 160),
		Keywords:      strings.Join(post.Keywords, ", "),
		AuthorName:    post.AuthorName,
		AuthorAvatar:  post.AuthorAvatar,
		Image:         post.Image,
		CanonicalURL:  postURL,
		Published:     published,
		BadgeColor:    template.CSS(cfg.Color),
		BadgeIcon:     cfg.Icon,
		BadgeName:     cfg.Name,
		FormattedDate: g.displayDate(post.PublishedAt),
		ReadingTime:   readingTime(post.Content),
		Content:       template.HTML(post.Content),
		PostID:        post.ID,
	}

	if page.Image == "" {
		page.Image = g.Domain + "/og-image.jpg"
	}

	if post.Image != "" {
		alt := post.ImageAlt
		if alt == "" {
			alt = post.Title
		}
		page.Featured = &featuredImage{URL: post.Image, Alt: alt, Caption: post.ImageCaption}
	}

	products := post.Products
	if len(products) > 6 {
		products = products[:6]
	}
	for _, p := range products {
		page.Products = append(page.Products, g.productCard(p))
	}

	tags := post.Tags
	if len(tags) > 5 {
		tags = tags[:5]
	}
	for _, tag := range tags {
		page.Tags = append(page.Tags, tagLink{
			Href:  fmt.Sprintf("%s/tag/%s", g.categoryURL(cfg), models.Slugify(tag)),
			Label: tag,
		})
	}

	page.ShareTwitter = "https://twitter.com/intent/tweet?" + url.Values{
		"url":  {postURL},
		"text": {post.Title},
	}.Encode()
	page.ShareFacebook = "https://www.facebook.com/sharer/sharer.php?" + url.Values{
		"u": {postURL},
	}.Encode()
	page.SharePinterest = "https://pinterest.com/pin/create/button/?" + url.Values{
		"url":         {postURL},
		"media":       {post.Image},
		"description": {post.Title},
	}.Encode()

	jsonLD, err := g.structuredData(post, page.Image, postURL, published)
	if err != nil {
		return Document{}, err
	}
	page.JSONLD = jsonLD

	var buf bytes.Buffer
	if err := postTemplate.Execute(&buf, page); err != nil {
		return Document{}, fmt.Errorf("failed to render post page: %w", err)
	}
	return Document{ContentType: ContentTypeHTML, Body: buf.Bytes()}, nil
}

// RenderIndexPage produces the category listing page showing the 20 newest
// posts.
func (g *Generator) RenderIndexPage(cfg models.CategoryConfig, posts []models.NormalizedPost) (Document, error) {
	page := indexPage{
		sharedPage:   g.sharedPage(cfg),
		Name:         cfg.Name,
		Description:  cfg.Description,
		Icon:         cfg.Icon,
		CanonicalURL: g.categoryURL(cfg),
	}

	if len(posts) > 20 {
		posts = posts[:20]
	}
	for _, post := range posts {
		image := post.Image
		if image == "" {
			image = g.Domain + "/placeholder.jpg"
		}
		page.Cards = append(page.Cards, indexCard{
			URL:     g.postURL(cfg, post),
			Image:   image,
			Title:   post.Title,
			Excerpt: models.Truncate(post.Description, 200),
			Date:    g.displayDate(post.PublishedAt),
		})
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		return Document{}, fmt.Errorf("failed to render index page: %w", err)
	}
	return Document{ContentType: ContentTypeHTML, Body: buf.Bytes()}, nil
}

func (g *Generator) sharedPage(cfg models.CategoryConfig) sharedPage {
	page := sharedPage{Domain: g.Domain, Year: g.Now().UTC().Year()}
	for _, slug := range models.CategoryOrder {
		path := "blog/" + slug
		page.Nav = append(page.Nav, navItem{
			Href:   fmt.Sprintf("%s/%s", g.Domain, path),
			Label:  navLabels[slug],
			Active: cfg.Path == path,
		})
	}
	return page
}

// displayDate formats a timestamp for page display, degrading to the literal
// "Recently" when the value is missing or unparseable.
func (g *Generator) displayDate(raw string) string {
	t, err := models.ParseInstant(raw)
	if err != nil {
		return "Recently"
	}
	return models.FormatLongDate(t)
}

// readingTime estimates minutes to read at 200 words per minute, never less
// than one.
func readingTime(content string) int {
	minutes := len(strings.Fields(content)) / 200
	if minutes < 1 {
		return 1
	}
	return minutes
}

// structuredData builds the schema.org BlogPosting JSON-LD block.
func (g *Generator) structuredData(post models.NormalizedPost, image, postURL, published string) (template.JS, error) {
	modified := post.UpdatedAt
	if modified == "" {
		modified = published
	}

	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"image":         image,
		"datePublished": published,
		"dateModified":  modified,
		"author": map[string]interface{}{
			"@type": "Person",
			"name":  post.AuthorName,
		},
		"publisher": map[string]interface{}{
			"@type": "Organization",
			"name":  "ShoeSwiper",
			"logo": map[string]interface{}{
				"@type": "ImageObject",
				"url":   g.Domain + "/logo.png",
			},
		},
		"description": models.Truncate(post.Description, 160),
		"mainEntityOfPage": map[string]interface{}{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}

	body, err := json.MarshalIndent(data, "    ", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal structured data: %w", err)
	}
	return template.JS(body), nil
}

var postTemplate = template.Must(template.New("post").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} | {{.SiteName}}</title>
    <meta name="title" content="{{.Title}}">
    <meta name="description" content="{{.Description}}">
    <meta name="keywords" content="{{.Keywords}}">
    <meta name="author" content="{{.AuthorName}}">
    <meta name="robots" content="index, follow, max-image-preview:large">
    <link rel="canonical" href="{{.CanonicalURL}}">

    <meta property="og:type" content="article">
    <meta property="og:url" content="{{.CanonicalURL}}">
    <meta property="og:title" content="{{.Title}}">
    <meta property="og:description" content="{{.Description}}">
    <meta property="og:image" content="{{.Image}}">
    <meta property="og:image:width" content="1200">
    <meta property="og:image:height" content="630">
    <meta property="og:site_name" content="ShoeSwiper">
    <meta property="article:published_time" content="{{.Published}}">
    <meta property="article:author" content="{{.AuthorName}}">

    <meta property="twitter:card" content="summary_large_image">
    <meta property="twitter:url" content="{{.CanonicalURL}}">
    <meta property="twitter:title" content="{{.Title}}">
    <meta property="twitter:description" content="{{.Description}}">
    <meta property="twitter:image" content="{{.Image}}">
    <meta name="twitter:creator" content="@shoeswiper">

    <script type="application/ld+json">
    {{.JSONLD}}
    </script>
    <link rel="icon" href="{{.Domain}}/favicon.ico">
    <link rel="apple-touch-icon" href="{{.Domain}}/apple-touch-icon.png">
    <link rel="preconnect" href="https://fonts.googleapis.com">
    ` + baseStyles + `
</head>
<body>
    ` + headerTemplate + `
    <main>
    <article class="blog-post" itemscope itemtype="https://schema.org/BlogPosting">
        <header class="post-header">
            <div class="post-meta">
                <span class="category-badge" style="background-color: {{.BadgeColor}}">{{.BadgeIcon}} {{.BadgeName}}</span>
                <time datetime="{{.Published}}" itemprop="datePublished">{{.FormattedDate}}</time>
                <span class="reading-time">{{.ReadingTime}} min read</span>
            </div>
            <h1 itemprop="headline">{{.Title}}</h1>
            <div class="author-info" itemprop="author" itemscope itemtype="https://schema.org/Person">
                <img src="{{.AuthorAvatar}}" alt="{{.AuthorName}}" class="author-avatar">
                <span itemprop="name">{{.AuthorName}}</span>
            </div>
        </header>
{{if .Featured}}
        <figure class="featured-image">
            <img src="{{.Featured.URL}}" alt="{{.Featured.Alt}}" loading="eager">
            <figcaption>{{.Featured.Caption}}</figcaption>
        </figure>
{{end}}
        <div class="post-content" itemprop="articleBody">
            {{.Content}}
        </div>
{{if .Products}}
        <div class="affiliate-products"><h3>Featured Products</h3><div class="products-grid">
{{range .Products}}            <div class="affiliate-product-card">
                <a href="{{.Link}}" target="_blank" rel="nofollow sponsored noopener" class="product-link" data-asin="{{.ASIN}}">
                    <div class="product-image">
                        <img src="{{.Image}}" alt="{{.Name}}" loading="lazy">
                    </div>
                    <div class="product-info">
                        <h4 class="product-name">{{.Name}}</h4>
{{if .HasRating}}                        <div class="rating"><span class="stars">{{.Stars}}</span>{{if .ReviewCount}} <span class="review-count">({{.ReviewCount}} reviews)</span>{{end}}</div>
{{end}}{{if .HasPrice}}                        <div class="product-price"><span class="current-price">${{.CurrentPrice}}</span>{{if .HasDiscount}} <span class="original-price">${{.OriginalPrice}}</span> <span class="discount-badge">-{{.Discount}}%</span>{{end}}</div>
{{end}}                        <span class="buy-button">🛒 Buy Now</span>
                    </div>
                </a>
            </div>
{{end}}        </div></div>
{{end}}
{{if .Tags}}
        <div class="post-tags">
{{range .Tags}}            <a href="{{.Href}}" class="tag">#{{.Label}}</a>
{{end}}        </div>
{{end}}
        <div class="share-buttons">
            <span>Share:</span>
            <a href="{{.ShareTwitter}}" target="_blank" rel="noopener" class="share-twitter">Twitter</a>
            <a href="{{.ShareFacebook}}" target="_blank" rel="noopener" class="share-facebook">Facebook</a>
            <a href="{{.SharePinterest}}" target="_blank" rel="noopener" class="share-pinterest">Pinterest</a>
        </div>
    </article>
    </main>
    ` + footerTemplate + `
    <script>
        document.querySelectorAll('.affiliate-product-card .product-link').forEach(link => {
            link.addEventListener('click', function(e) {
                const asin = this.dataset.asin;
                if (asin) {
                    fetch('/api/track-click', {
                        method: 'POST',
                        headers: { 'Content-Type': 'application/json' },
                        body: JSON.stringify({ asin, source: 'blog', postId: '{{.PostID}}' })
                    }).catch(() => {});
                }
            });
        });
    </script>
    <script async src="https://www.googletagmanager.com/gtag/js?id=G-XXXXXXXX"></script>
</body>
</html>
`))

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} | ShoeSwiper</title>
    <meta name="description" content="{{.Description}}">
    <link rel="canonical" href="{{.CanonicalURL}}">
    ` + baseStyles + `
    ` + indexStyles + `
</head>
<body>
    ` + headerTemplate + `
    <main class="blog-index">
        <header class="blog-header">
            <span style="font-size: 3rem;">{{.Icon}}</span>
            <h1>{{.Name}}</h1>
            <p>{{.Description}}</p>
        </header>
        <div class="posts-grid">
{{range .Cards}}        <article class="post-card">
            <a href="{{.URL}}">
                <div class="post-card-image">
                    <img src="{{.Image}}" alt="{{.Title}}" loading="lazy">
                </div>
                <div class="post-card-content">
                    <time>{{.Date}}</time>
                    <h2>{{.Title}}</h2>
                    <p>{{.Excerpt}}...</p>
                    <span class="read-more">Read More →</span>
                </div>
            </a>
        </article>
{{end}}        </div>
    </main>
    ` + footerTemplate + `
</body>
</html>
`))

const headerTemplate = `<header class="site-header">
        <nav class="nav-container">
            <a href="{{.Domain}}" class="logo">
                <span class="logo-icon">👟</span>
                <span class="logo-text">ShoeSwiper</span>
            </a>
            <div class="nav-links">
{{range .Nav}}                <a href="{{.Href}}" class="{{if .Active}}active{{end}}">{{.Label}}</a>
{{end}}            </div>
            <a href="{{.Domain}}/app" class="cta-button">Get the App</a>
        </nav>
    </header>`

const footerTemplate = `<footer class="site-footer">
        <div class="footer-container">
            <div class="footer-section">
                <h4>ShoeSwiper</h4>
                <p>Your destination for sneaker news, shoe reviews, and fashion trends.</p>
                <div class="social-links">
                    <a href="https://twitter.com/shoeswiper" aria-label="Twitter">𝕏</a>
                    <a href="https://instagram.com/shoeswiper" aria-label="Instagram">📷</a>
                    <a href="https://tiktok.com/@shoeswiper" aria-label="TikTok">🎵</a>
                </div>
            </div>
            <div class="footer-section">
                <h4>Blogs</h4>
                <ul>
                    <li><a href="{{.Domain}}/blog/sneaker">Sneaker Blog</a></li>
                    <li><a href="{{.Domain}}/blog/shoes">Shoe Blog</a></li>
                    <li><a href="{{.Domain}}/blog/workwear">Workwear Blog</a></li>
                    <li><a href="{{.Domain}}/blog/music">Music Blog</a></li>
                </ul>
            </div>
            <div class="footer-section">
                <h4>Resources</h4>
                <ul>
                    <li><a href="{{.Domain}}/about">About Us</a></li>
                    <li><a href="{{.Domain}}/contact">Contact</a></li>
                    <li><a href="{{.Domain}}/privacy">Privacy Policy</a></li>
                    <li><a href="{{.Domain}}/terms">Terms of Service</a></li>
                </ul>
            </div>
            <div class="footer-section">
                <h4>Newsletter</h4>
                <p>Get the latest updates delivered to your inbox.</p>
                <form class="newsletter-form" action="{{.Domain}}/api/newsletter" method="POST">
                    <input type="email" name="email" placeholder="Enter your email" required>
                    <button type="submit">Subscribe</button>
                </form>
            </div>
        </div>
        <div class="footer-bottom">
            <p>&copy; {{.Year}} ShoeSwiper. All rights reserved.</p>
            <p class="affiliate-disclosure">As an Amazon Associate, we earn from qualifying purchases.</p>
        </div>
    </footer>`

const baseStyles = `<style>
        :root {
            --primary-color: #FF6B35;
            --secondary-color: #1a1a2e;
            --text-color: #333;
            --text-light: #666;
            --bg-color: #fff;
            --bg-light: #f8f9fa;
            --border-color: #e0e0e0;
            --shadow: 0 2px 8px rgba(0,0,0,0.1);
            --radius: 12px;
        }

        * { box-sizing: border-box; margin: 0; padding: 0; }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, sans-serif;
            line-height: 1.6;
            color: var(--text-color);
            background: var(--bg-color);
        }

        .site-header {
            position: sticky;
            top: 0;
            background: var(--bg-color);
            box-shadow: var(--shadow);
            z-index: 100;
        }

        .nav-container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 1rem 2rem;
            display: flex;
            align-items: center;
            justify-content: space-between;
        }

        .logo {
            display: flex;
            align-items: center;
            gap: 0.5rem;
            text-decoration: none;
            font-size: 1.5rem;
            font-weight: 700;
            color: var(--secondary-color);
        }

        .logo-icon { font-size: 2rem; }

        .nav-links {
            display: flex;
            gap: 1.5rem;
        }

        .nav-links a {
            text-decoration: none;
            color: var(--text-color);
            font-weight: 500;
            padding: 0.5rem 1rem;
            border-radius: var(--radius);
            transition: all 0.2s;
        }

        .nav-links a:hover, .nav-links a.active {
            background: var(--primary-color);
            color: white;
        }

        .cta-button {
            background: var(--primary-color);
            color: white;
            padding: 0.75rem 1.5rem;
            border-radius: var(--radius);
            text-decoration: none;
            font-weight: 600;
            transition: transform 0.2s;
        }

        .cta-button:hover { transform: translateY(-2px); }

        main {
            max-width: 800px;
            margin: 0 auto;
            padding: 2rem;
        }

        .blog-post { padding: 2rem 0; }

        .post-header { margin-bottom: 2rem; }

        .post-meta {
            display: flex;
            align-items: center;
            gap: 1rem;
            margin-bottom: 1rem;
            font-size: 0.9rem;
            color: var(--text-light);
        }

        .category-badge {
            padding: 0.25rem 0.75rem;
            border-radius: 20px;
            color: white;
            font-size: 0.8rem;
            font-weight: 600;
        }

        .post-header h1 {
            font-size: 2.5rem;
            line-height: 1.2;
            margin-bottom: 1rem;
            color: var(--secondary-color);
        }

        .author-info {
            display: flex;
            align-items: center;
            gap: 0.75rem;
        }

        .author-avatar {
            width: 40px;
            height: 40px;
            border-radius: 50%;
            object-fit: cover;
        }

        .featured-image {
            margin: 2rem 0;
            border-radius: var(--radius);
            overflow: hidden;
        }

        .featured-image img {
            width: 100%;
            height: auto;
            display: block;
        }

        .featured-image figcaption {
            padding: 0.75rem;
            background: var(--bg-light);
            font-size: 0.85rem;
            color: var(--text-light);
            text-align: center;
        }

        .post-content {
            font-size: 1.1rem;
            line-height: 1.8;
        }

        .post-content h2 {
            font-size: 1.75rem;
            margin: 2rem 0 1rem;
            color: var(--secondary-color);
        }

        .post-content h3 {
            font-size: 1.4rem;
            margin: 1.5rem 0 0.75rem;
        }

        .post-content p { margin-bottom: 1.25rem; }

        .post-content img {
            max-width: 100%;
            height: auto;
            border-radius: var(--radius);
            margin: 1.5rem 0;
        }

        .post-content ul, .post-content ol {
            margin: 1rem 0 1.5rem 2rem;
        }

        .post-content li { margin-bottom: 0.5rem; }

        .post-content blockquote {
            border-left: 4px solid var(--primary-color);
            padding-left: 1.5rem;
            margin: 1.5rem 0;
            font-style: italic;
            color: var(--text-light);
        }

        .affiliate-products {
            margin: 3rem 0;
            padding: 2rem;
            background: var(--bg-light);
            border-radius: var(--radius);
        }

        .affiliate-products h3 {
            margin-bottom: 1.5rem;
            text-align: center;
        }

        .products-grid {
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(200px, 1fr));
            gap: 1.5rem;
        }

        .affiliate-product-card {
            background: white;
            border-radius: var(--radius);
            overflow: hidden;
            box-shadow: var(--shadow);
            transition: transform 0.2s;
        }

        .affiliate-product-card:hover { transform: translateY(-4px); }

        .product-link {
            text-decoration: none;
            color: inherit;
        }

        .product-image {
            aspect-ratio: 1;
            overflow: hidden;
            background: var(--bg-light);
        }

        .product-image img {
            width: 100%;
            height: 100%;
            object-fit: contain;
        }

        .product-info { padding: 1rem; }

        .product-name {
            font-size: 0.95rem;
            margin-bottom: 0.5rem;
            line-height: 1.3;
            display: -webkit-box;
            -webkit-line-clamp: 2;
            -webkit-box-orient: vertical;
            overflow: hidden;
        }

        .rating {
            font-size: 0.85rem;
            margin-bottom: 0.5rem;
        }

        .stars { color: #f59e0b; }
        .review-count { color: var(--text-light); }

        .product-price { margin-bottom: 0.75rem; }

        .current-price {
            font-size: 1.1rem;
            font-weight: 700;
            color: var(--primary-color);
        }

        .original-price {
            text-decoration: line-through;
            color: var(--text-light);
            font-size: 0.9rem;
        }

        .discount-badge {
            background: #dc2626;
            color: white;
            padding: 0.1rem 0.4rem;
            border-radius: 4px;
            font-size: 0.75rem;
            font-weight: 600;
        }

        .buy-button {
            display: block;
            background: linear-gradient(to right, #f97316, #ea580c);
            color: white;
            text-align: center;
            padding: 0.75rem;
            border-radius: 8px;
            font-weight: 700;
            font-size: 1rem;
            transition: transform 0.2s, box-shadow 0.2s;
        }

        .affiliate-product-card:hover .buy-button {
            transform: scale(1.02);
            box-shadow: 0 4px 12px rgba(249, 115, 22, 0.4);
        }

        .post-tags {
            margin: 2rem 0;
            display: flex;
            flex-wrap: wrap;
            gap: 0.5rem;
        }

        .tag {
            background: var(--bg-light);
            color: var(--text-light);
            padding: 0.35rem 0.75rem;
            border-radius: 20px;
            text-decoration: none;
            font-size: 0.85rem;
            transition: all 0.2s;
        }

        .tag:hover {
            background: var(--primary-color);
            color: white;
        }

        .share-buttons {
            display: flex;
            align-items: center;
            gap: 1rem;
            padding: 1.5rem 0;
            border-top: 1px solid var(--border-color);
        }

        .share-buttons a {
            padding: 0.5rem 1rem;
            border-radius: 6px;
            text-decoration: none;
            font-weight: 500;
            font-size: 0.9rem;
        }

        .share-twitter { background: #1da1f2; color: white; }
        .share-facebook { background: #4267b2; color: white; }
        .share-pinterest { background: #e60023; color: white; }

        .site-footer {
            background: var(--secondary-color);
            color: white;
            padding: 4rem 2rem 2rem;
            margin-top: 4rem;
        }

        .footer-container {
            max-width: 1200px;
            margin: 0 auto;
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 2rem;
        }

        .footer-section h4 {
            margin-bottom: 1rem;
            font-size: 1.1rem;
        }

        .footer-section ul {
            list-style: none;
        }

        .footer-section a {
            color: rgba(255,255,255,0.8);
            text-decoration: none;
        }

        .footer-section a:hover { color: white; }

        .footer-section li { margin-bottom: 0.5rem; }

        .social-links {
            display: flex;
            gap: 1rem;
            margin-top: 1rem;
        }

        .social-links a {
            font-size: 1.5rem;
        }

        .newsletter-form {
            display: flex;
            gap: 0.5rem;
            margin-top: 1rem;
        }

        .newsletter-form input {
            flex: 1;
            padding: 0.75rem;
            border: none;
            border-radius: 6px;
        }

        .newsletter-form button {
            background: var(--primary-color);
            color: white;
            border: none;
            padding: 0.75rem 1.25rem;
            border-radius: 6px;
            font-weight: 600;
            cursor: pointer;
        }

        .footer-bottom {
            max-width: 1200px;
            margin: 3rem auto 0;
            padding-top: 2rem;
            border-top: 1px solid rgba(255,255,255,0.1);
            text-align: center;
            font-size: 0.9rem;
            color: rgba(255,255,255,0.6);
        }

        .affiliate-disclosure {
            font-size: 0.8rem;
            margin-top: 0.5rem;
        }

        @media (max-width: 768px) {
            .nav-links { display: none; }
            .post-header h1 { font-size: 1.75rem; }
            main { padding: 1rem; }
            .products-grid { grid-template-columns: repeat(2, 1fr); }
        }
    </style>`

const indexStyles = `<style>
        .blog-index {
            max-width: 1200px;
            margin: 0 auto;
            padding: 2rem;
        }

        .blog-header {
            text-align: center;
            margin-bottom: 3rem;
        }

        .blog-header h1 {
            font-size: 2.5rem;
            margin-bottom: 0.5rem;
        }

        .posts-grid {
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(300px, 1fr));
            gap: 2rem;
        }

        .post-card {
            background: white;
            border-radius: var(--radius);
            overflow: hidden;
            box-shadow: var(--shadow);
            transition: transform 0.2s;
        }

        .post-card:hover { transform: translateY(-4px); }

        .post-card a {
            text-decoration: none;
            color: inherit;
        }

        .post-card-image {
            aspect-ratio: 16/9;
            overflow: hidden;
        }

        .post-card-image img {
            width: 100%;
            height: 100%;
            object-fit: cover;
            transition: transform 0.3s;
        }

        .post-card:hover .post-card-image img {
            transform: scale(1.05);
        }

        .post-card-content {
            padding: 1.5rem;
        }

        .post-card-content time {
            font-size: 0.85rem;
            color: var(--text-light);
        }

        .post-card-content h2 {
            font-size: 1.25rem;
            margin: 0.5rem 0;
            line-height: 1.3;
        }

        .post-card-content p {
            font-size: 0.95rem;
            color: var(--text-light);
            margin-bottom: 1rem;
        }

        .read-more {
            color: var(--primary-color);
            font-weight: 600;
        }
    </style>`
