package services

import (
	"testing"
	"time"

	"travel-backend/data"
	"travel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

const catalogFixture = `
indiaData:
  - id: "in-kashmir"
    title: "Kashmir Valley Tour"
    img: "https://img.example.com/kashmir.jpg"
    loc: "Srinagar, Kashmir"
    price: "Starts Rs. 18,999"
    days: "6 Days / 5 Nights"
  - id: "in-srinagar-lakes"
    title: "Srinagar Lakes"
    img: "https://img.example.com/lakes.jpg"
    loc: "Srinagar"
internationalData:
  - id: "intl-dubai"
    title: "Dubai Skyline"
    img: "https://img.example.com/dubai.jpg"
    loc: "Dubai, UAE"
    price: "Rs. 49,999"
romanticData:
  - id: "rom-paris"
    alt: "Paris"
    img: "https://img.example.com/paris.jpg"
    loc: "Paris, France"
honeymoonPackages:
  - id: "hm-bali"
    title: "Bali Retreat"
    image: "https://img.example.com/bali.jpg"
    location: "Bali, Indonesia"
    price: "Price on request"
IndianDestinations:
  - id: "fc-manali"
    title: "Manali"
    front: "https://img.example.com/manali-front.jpg"
    back: "https://img.example.com/manali-back.jpg"
  - id: "fc-manali"
    title: "Manali Duplicate"
    front: "https://img.example.com/dup.jpg"
`

func newTestCatalogService(t *testing.T) (*CatalogService, *PackageService) {
	t.Helper()
	catalog, err := data.Parse([]byte(catalogFixture))
	require.NoError(t, err)
	packages := NewPackageService(newTestDB(t))
	return NewCatalogService(catalog, packages), packages
}

func TestFindStatic(t *testing.T) {
	svc, _ := newTestCatalogService(t)

	entry := svc.FindStatic("intl-dubai")
	require.NotNil(t, entry)
	assert.Equal(t, "Dubai Skyline", entry.Title)

	entry = svc.FindStatic("Kashmir-Valley-Tour")
	require.NotNil(t, entry)
	assert.Equal(t, "in-kashmir", entry.ID)

	entry = svc.FindStatic("paris")
	require.NotNil(t, entry)
	assert.Equal(t, "rom-paris", entry.ID)

	assert.Nil(t, svc.FindStatic("atlantis"))
	assert.Nil(t, svc.FindStatic(""))
}

func TestNormalizeFillsDefaults(t *testing.T) {
	detail := Normalize(models.TripEntry{ID: "rom-paris", Alt: "Paris", Img: "https://img.example.com/paris.jpg"})

	assert.Equal(t, "Paris", detail.Title)
	assert.Equal(t, "Paris", detail.Location)
	assert.Len(t, detail.Gallery, 4)
	assert.Equal(t, "https://img.example.com/paris.jpg", detail.Gallery[3])
	assert.Contains(t, detail.Description, "journey to Paris")
	assert.Equal(t, "Contact for Pricing", detail.Price)
	assert.Equal(t, "5 Days / 4 Nights", detail.Duration)
	assert.Len(t, detail.Inclusions, 5)
	assert.Len(t, detail.Exclusions, 4)
	require.Len(t, detail.Itinerary, 5)
	assert.Equal(t, "Departure", detail.Itinerary[4].Title)
	require.Len(t, detail.Policies, 2)
	assert.Equal(t, "Cancellation Policy", detail.Policies[0].Title)

	empty := Normalize(models.TripEntry{})
	assert.Equal(t, "Premium Destination Tour", empty.Title)
	assert.Equal(t, "Premium Destination Tour", empty.Location)
	assert.Empty(t, empty.Gallery)
}

func TestNormalizeKeepsGivenFields(t *testing.T) {
	detail := Normalize(models.TripEntry{
		ID:          "x",
		Title:       "Given",
		Location:    "Goa",
		Price:       "Rs. 9,999",
		Duration:    "3 Days",
		Description: "Beach time.",
		Gallery:     []string{"a.jpg"},
		Inclusions:  []string{"Hotel"},
		Exclusions:  []string{"Tips"},
		Itinerary:   []models.ItineraryDay{{Day: 1, Title: "Beach", Description: "Relax."}},
	})

	assert.Equal(t, []string{"a.jpg"}, detail.Gallery)
	assert.Equal(t, "Beach time.", detail.Description)
	assert.Equal(t, "Rs. 9,999", detail.Price)
	assert.Equal(t, "3 Days", detail.Duration)
	assert.Equal(t, []string{"Hotel"}, detail.Inclusions)
	assert.Equal(t, []string{"Tips"}, detail.Exclusions)
	assert.Len(t, detail.Itinerary, 1)
}

func TestSimilarMatchesLocation(t *testing.T) {
	svc, _ := newTestCatalogService(t)

	detail := Normalize(*svc.FindStatic("in-kashmir"))
	similar := svc.Similar(detail)
	require.Len(t, similar, 1)
	assert.Equal(t, "in-srinagar-lakes", similar[0].ID)
	assert.Equal(t, "View Details", similar[0].Price)

	assert.Empty(t, svc.Similar(Normalize(*svc.FindStatic("intl-dubai"))))
}

func TestSectionMergesDatabaseFirst(t *testing.T) {
	svc, packages := newTestCatalogService(t)

	pkg := models.Package{
		Title:    "Spiti Valley",
		Price:    25999,
		Image:    "https://img.example.com/spiti.jpg",
		Gallery:  datatypes.NewJSONSlice([]string{"https://img.example.com/spiti-back.jpg"}),
		Category: models.CategoryFlipcardIndia,
		Location: "Spiti",
	}
	pkg.CreatedAt = time.Now()
	require.NoError(t, packages.DB.Create(&pkg).Error)

	cards, err := svc.Section(models.CategoryFlipcardIndia)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, pkg.ID, cards[0].ID)
	assert.Equal(t, SourceDatabase, cards[0].Source)
	assert.Equal(t, "25999", cards[0].Price)
	assert.Equal(t, "https://img.example.com/spiti-back.jpg", cards[0].BackImage)
	assert.Equal(t, "fc-manali", cards[1].ID)
	assert.Equal(t, "Manali", cards[1].Title)
	assert.Equal(t, SourceStatic, cards[1].Source)

	honeymoon, err := svc.Section(models.CategoryHoneymoon)
	require.NoError(t, err)
	require.Len(t, honeymoon, 2)
	assert.Equal(t, "rom-paris", honeymoon[0].ID)
	assert.Equal(t, "hm-bali", honeymoon[1].ID)

	_, err = svc.Section("cruise")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTripDetailFallsBackToDatabase(t *testing.T) {
	svc, packages := newTestCatalogService(t)

	pkg, err := packages.Create(validPackageRequest())
	require.NoError(t, err)

	detail, err := svc.TripDetail(pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, pkg.ID, detail.ID)
	assert.Equal(t, "18999", detail.Price)
	assert.Equal(t, "Srinagar, Kashmir", detail.Location)
	assert.Len(t, detail.Gallery, 4)

	static, err := svc.TripDetail("intl-dubai")
	require.NoError(t, err)
	assert.Equal(t, "Dubai, UAE", static.Location)

	_, err = svc.TripDetail("atlantis")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuote(t *testing.T) {
	detail := models.TripDetail{ID: "in-kashmir", Price: "Starts Rs. 41,152"}

	q, err := Quote(detail, "")
	require.NoError(t, err)
	assert.Equal(t, 1, q.Travelers)
	assert.Equal(t, "₹41,152", q.Display)

	q, err = Quote(detail, "3+")
	require.NoError(t, err)
	assert.Equal(t, 3, q.Travelers)
	assert.Equal(t, int64(123456), q.Total)
	assert.Equal(t, "₹1,23,456", q.Display)

	q, err = Quote(detail, "2")
	require.NoError(t, err)
	assert.Equal(t, "₹82,304", q.Display)

	_, err = Quote(detail, "zero")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	q, err = Quote(detail, "100")
	require.NoError(t, err)
	assert.Equal(t, int64(4115200), q.Total)

	_, err = Quote(models.TripDetail{Price: "Starts Rs. 1,15,999"}, "99999999999999")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "travelers", verr.Field)

	_, err = Quote(detail, "101")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "travelers", verr.Field)

	q, err = Quote(models.TripDetail{Price: "Contact for Pricing"}, "2")
	require.NoError(t, err)
	assert.True(t, q.Negotiable)
	assert.Equal(t, "Contact for Pricing", q.Display)
}

func TestEmbeddedCatalogSectionsResolve(t *testing.T) {
	catalog, err := data.Load()
	require.NoError(t, err)
	svc := NewCatalogService(catalog, NewPackageService(newTestDB(t)))

	for _, category := range models.Categories {
		cards, err := svc.Section(category)
		require.NoError(t, err)
		assert.NotEmpty(t, cards, category)
	}
	for _, entry := range catalog.All() {
		assert.NotNil(t, svc.FindStatic(entry.ID), entry.ID)
	}
}
