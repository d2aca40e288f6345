package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ianmerrill10/shoeswipermainproject2/internal/models"
)

func testGenerator() *Generator {
	return &Generator{
		Domain:       "https://shoeswiper.com",
		AffiliateTag: "shoeswiper-20",
		Now:          func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) },
	}
}

func TestAffiliateLinkFromASIN(t *testing.T) {
	g := testGenerator()

	link := g.affiliateLink(models.ProductRecord{
		ASIN:          "B0TEST1234",
		AffiliateLink: "https://example.com/ignored",
	})
	assert.Equal(t, "https://www.amazon.com/dp/B0TEST1234?tag=shoeswiper-20", link)
}

func TestAffiliateLinkTagging(t *testing.T) {
	g := testGenerator()

	cases := []struct {
		name string
		in   models.ProductRecord
		want string
	}{
		{
			"amazon link without tag gets one",
			models.ProductRecord{AffiliateLink: "https://www.amazon.com/dp/B0ABC"},
			"https://www.amazon.com/dp/B0ABC?tag=shoeswiper-20",
		},
		{
			"amazon link with existing query uses ampersand",
			models.ProductRecord{AffiliateLink: "https://www.amazon.com/dp/B0ABC?th=1"},
			"https://www.amazon.com/dp/B0ABC?th=1&tag=shoeswiper-20",
		},
		{
			"amazon link already tagged is untouched",
			models.ProductRecord{AffiliateLink: "https://www.amazon.com/dp/B0ABC?tag=shoeswiper-20"},
			"https://www.amazon.com/dp/B0ABC?tag=shoeswiper-20",
		},
		{
			"non-amazon link is untouched",
			models.ProductRecord{AffiliateLink: "https://store.example.com/shoe"},
			"https://store.example.com/shoe",
		},
		{
			"url field is the fallback",
			models.ProductRecord{URL: "https://store.example.com/shoe"},
			"https://store.example.com/shoe",
		},
		{
			"no link at all yields placeholder",
			models.ProductRecord{},
			"#",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.affiliateLink(tc.in))
		})
	}
}

func TestProductCardDiscount(t *testing.T) {
	g := testGenerator()

	card := g.productCard(models.ProductRecord{
		Name:          "Air Max 90",
		Price:         "129.99",
		OriginalPrice: "160.00",
	})
	assert.True(t, card.HasPrice)
	assert.True(t, card.HasDiscount)
	assert.Equal(t, 18, card.Discount)
	assert.Equal(t, "160.00", card.OriginalPrice)
}

func TestProductCardDiscountTolerantOfDollarSign(t *testing.T) {
	g := testGenerator()

	card := g.productCard(models.ProductRecord{
		Name:          "Boot",
		Price:         "$120",
		OriginalPrice: "$160",
	})
	assert.True(t, card.HasDiscount)
	assert.Equal(t, 25, card.Discount)
}

func TestProductCardNoDiscountWhenOriginalNotHigher(t *testing.T) {
	g := testGenerator()

	card := g.productCard(models.ProductRecord{Price: "100", OriginalPrice: "100"})
	assert.True(t, card.HasPrice)
	assert.False(t, card.HasDiscount)

	card = g.productCard(models.ProductRecord{Price: "100", OriginalPrice: "90"})
	assert.False(t, card.HasDiscount)
}

func TestProductCardNonNumericPriceOmitsBlock(t *testing.T) {
	g := testGenerator()

	card := g.productCard(models.ProductRecord{Price: "Check price", OriginalPrice: "160"})
	assert.True(t, card.HasPrice, "display price is still shown")
	assert.False(t, card.HasDiscount, "no discount without a parseable price")
}

func TestProductCardRatingRounds(t *testing.T) {
	g := testGenerator()

	card := g.productCard(models.ProductRecord{Rating: "4.6", ReviewCount: "2841"})
	assert.True(t, card.HasRating)
	assert.Equal(t, "★★★★★", card.Stars)
	assert.Equal(t, "2841", card.ReviewCount)

	card = g.productCard(models.ProductRecord{Rating: "4.4"})
	assert.Equal(t, "★★★★☆", card.Stars)

	card = g.productCard(models.ProductRecord{Rating: 3.0})
	assert.Equal(t, "★★★☆☆", card.Stars)
}

func TestProductCardNonNumericRatingOmitsBlock(t *testing.T) {
	g := testGenerator()

	card := g.productCard(models.ProductRecord{Rating: "great"})
	assert.False(t, card.HasRating)
	assert.Empty(t, card.Stars)
}

func TestProductCardNameAndImageFallbacks(t *testing.T) {
	g := testGenerator()

	card := g.productCard(models.ProductRecord{Image: "https://img.example.com/alt.jpg"})
	assert.Equal(t, "Product", card.Name)
	assert.Equal(t, "https://img.example.com/alt.jpg", card.Image)
}
