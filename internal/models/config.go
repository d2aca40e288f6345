package models

// CategoryConfig holds the static, read-only configuration for one blog
// category. The table is built once at startup via DefaultCategories and
// passed explicitly into every renderer and handler; nothing mutates it.
type CategoryConfig struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Path        string `json:"path"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`

	// Feed metadata
	FeedTitle       string `json:"feed_title"`
	FeedDescription string `json:"feed_description"`
	FeedCategory    string `json:"feed_category"`
	Language        string `json:"language"`
	Image           string `json:"image"`

	// Sitemap defaults
	Priority   string `json:"priority"`
	ChangeFreq string `json:"changefreq"`

	// Content generation
	Topics []string `json:"topics"`
	Tone   string   `json:"tone"`
}

// CategoryOrder is the canonical ordering of blog categories, used for nav
// links, OPML outlines, and static sitemap entries.
var CategoryOrder = []string{"sneaker", "shoes", "workwear", "music"}

// DefaultCategories builds the category configuration table for the given
// site domain (e.g. "https://shoeswiper.com").
func DefaultCategories(domain string) map[string]CategoryConfig {
	return map[string]CategoryConfig{
		"sneaker": {
			Slug:            "sneaker",
			Name:            "Sneaker Blog",
			Description:     "Latest sneaker news, releases, and reviews",
			Path:            "blog/sneaker",
			Color:           "#FF6B35",
			Icon:            "👟",
			FeedTitle:       "ShoeSwiper Sneaker Blog",
			FeedDescription: "Latest sneaker news, releases, reviews, and style guides from ShoeSwiper",
			FeedCategory:    "Fashion/Sneakers",
			Language:        "en-us",
			Image:           domain + "/images/blogs/sneaker-blog-logo.png",
			Priority:        "0.8",
			ChangeFreq:      "daily",
			Topics: []string{
				"trending sneaker releases",
				"sneaker resale market analysis",
				"celebrity sneaker style",
				"sneaker care and maintenance",
				"Nike vs Adidas comparison",
				"limited edition drops",
				"sneaker history and culture",
				"best sneakers for different occasions",
				"sneaker technology innovations",
				"affordable alternatives to hyped sneakers",
			},
			Tone: "enthusiastic, knowledgeable, streetwear-focused",
		},
		"shoes": {
			Slug:            "shoes",
			Name:            "Shoe Blog",
			Description:     "Comprehensive shoe guides and fashion tips",
			Path:            "blog/shoes",
			Color:           "#4A90D9",
			Icon:            "👞",
			FeedTitle:       "ShoeSwiper Shoes Blog",
			FeedDescription: "Comprehensive shoe guides, reviews, and recommendations for every occasion",
			FeedCategory:    "Fashion/Footwear",
			Language:        "en-us",
			Image:           domain + "/images/blogs/shoes-blog-logo.png",
			Priority:        "0.8",
			ChangeFreq:      "daily",
			Topics: []string{
				"best running shoes by category",
				"dress shoes for men guide",
				"womens heel trends",
				"sandal season essentials",
				"orthopedic shoe recommendations",
				"shoe sizing guide",
				"sustainable footwear brands",
				"shoes for different foot types",
				"seasonal shoe trends",
				"shoe brand comparisons",
			},
			Tone: "helpful, informative, practical",
		},
		"workwear": {
			Slug:            "workwear",
			Name:            "Workwear & Boots Blog",
			Description:     "Work boots, safety gear, and workwear reviews",
			Path:            "blog/workwear",
			Color:           "#8B4513",
			Icon:            "🥾",
			FeedTitle:       "ShoeSwiper Workwear Blog",
			FeedDescription: "Professional footwear guides, work boot reviews, and safety shoe recommendations",
			FeedCategory:    "Fashion/Workwear",
			Language:        "en-us",
			Image:           domain + "/images/blogs/workwear-blog-logo.png",
			Priority:        "0.7",
			ChangeFreq:      "weekly",
			Topics: []string{
				"best steel toe boots for construction",
				"waterproof work boots review",
				"Carhartt workwear essentials",
				"safety footwear regulations",
				"comfortable boots for long shifts",
				"work boot care and longevity",
				"winter work gear guide",
				"high visibility workwear",
				"tool belt and accessory reviews",
				"work pants and overalls comparison",
			},
			Tone: "practical, safety-conscious, value-focused",
		},
		"music": {
			Slug:            "music",
			Name:            "Music & Artists Blog",
			Description:     "Music fashion, artist style, and culture",
			Path:            "blog/music",
			Color:           "#9B59B6",
			Icon:            "🎵",
			FeedTitle:       "ShoeSwiper Music & Style Blog",
			FeedDescription: "Where music meets sneaker culture - artist collaborations, concert style, and more",
			FeedCategory:    "Entertainment/Music",
			Language:        "en-us",
			Image:           domain + "/images/blogs/music-blog-logo.png",
			Priority:        "0.7",
			ChangeFreq:      "weekly",
			Topics: []string{
				"emerging hip-hop artists to watch",
				"underground R&B discoveries",
				"indie artists breaking through",
				"music and sneaker culture connection",
				"playlist curation for workouts",
				"new producer spotlight",
				"genre-blending artists",
				"local scene highlights",
				"music production tips for beginners",
				"artist interview features",
			},
			Tone: "passionate, discovery-focused, supportive of new artists",
		},
	}
}
