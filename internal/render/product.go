package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
)

// ProductCard is the prepared view of one affiliate product for the HTML
// templates. Price and rating blocks are optional: a non-numeric value in
// the source record simply omits the block.
type ProductCard struct {
	Name          string
	ASIN          string
	Image         string
	Link          string
	CurrentPrice  string
	OriginalPrice string
	Discount      int
	HasDiscount   bool
	HasPrice      bool
	Stars         string
	ReviewCount   string
	HasRating     bool
}

// productCard resolves the affiliate link and price/rating blocks for one
// product record.
func (g *Generator) productCard(p models.ProductRecord) ProductCard {
	card := ProductCard{
		Name:  p.Name,
		ASIN:  p.ASIN,
		Image: p.ImageURL,
		Link:  g.affiliateLink(p),
	}
	if card.Name == "" {
		card.Name = "Product"
	}
	if card.Image == "" {
		card.Image = p.Image
	}

	price := flexString(p.Price)
	if price == "" {
		price = flexString(p.CurrentPrice)
	}
	if price != "" {
		card.HasPrice = true
		card.CurrentPrice = price

		original := flexString(p.OriginalPrice)
		priceVal, priceErr := parsePrice(price)
		origVal, origErr := parsePrice(original)
		if original != "" && priceErr == nil && origErr == nil && origVal > priceVal {
			card.HasDiscount = true
			card.OriginalPrice = original
			card.Discount = int((1 - priceVal/origVal) * 100)
		}
	}

	if rating := flexString(p.Rating); rating != "" {
		if val, err := strconv.ParseFloat(rating, 64); err == nil {
			filled := int(math.Round(val))
			if filled < 0 {
				filled = 0
			}
			if filled > 5 {
				filled = 5
			}
			card.HasRating = true
			card.Stars = strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
			card.ReviewCount = flexString(p.ReviewCount)
		}
	}

	return card
}

// affiliateLink builds the canonical purchase link. An ASIN always wins;
// otherwise the stored link is reused, tagged only when it targets
// amazon.com and does not already carry the tag.
func (g *Generator) affiliateLink(p models.ProductRecord) string {
	if p.ASIN != "" {
		return fmt.Sprintf("https://www.amazon.com/dp/%s?tag=%s", p.ASIN, g.AffiliateTag)
	}

	link := p.AffiliateLink
	if link == "" {
		link = p.URL
	}
	if link == "" {
		return "#"
	}

	if strings.Contains(link, "amazon.com") && !strings.Contains(link, g.AffiliateTag) {
		separator := "?"
		if strings.Contains(link, "?") {
			separator = "&"
		}
		link = fmt.Sprintf("%s%stag=%s", link, separator, g.AffiliateTag)
	}

	return link
}

// parsePrice parses a price string, tolerating a leading "$".
func parsePrice(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(s), "$"), 64)
}

// flexString renders the loosely typed record fields (string or number)
// as display text.
func flexString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == math.Trunc(val) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}
