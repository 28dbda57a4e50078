package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"travel-backend/data"
	"travel-backend/models"
	"travel-backend/utils"
)

const (
	SourceDatabase = "db"
	SourceStatic   = "static"

	defaultTripTitle    = "Premium Destination Tour"
	defaultTripPrice    = "Contact for Pricing"
	defaultTripDuration = "5 Days / 4 Nights"
	similarPriceText    = "View Details"
	maxSimilarTrips     = 3
	maxQuoteTravelers   = 100
)

var (
	defaultInclusions = []string{
		"Premium Hotel Accommodation",
		"Daily Buffet Breakfast",
		"Private AC Airport Transfers",
		"Professional Tour Guide",
		"All Monument Entry Fees",
	}
	defaultExclusions = []string{
		"International & Domestic Flights",
		"Personal Expenses & Tips",
		"Travel Insurance",
		"Meals not mentioned in itinerary",
	}
	defaultItinerary = []models.ItineraryDay{
		{Day: 1, Title: "Arrival and Check-in", Description: "Arrive at the destination airport or station where our representative will greet you. Transfer to your pre-booked premium hotel and spend the evening at your leisure."},
		{Day: 2, Title: "Sightseeing and Exploration", Description: "After a complimentary breakfast, embark on a guided tour of the city's most iconic landmarks, historical sites, and vibrant local markets."},
		{Day: 3, Title: "Adventure and Local Experiences", Description: "Engage in thrilling local activities or opt for a nature excursion. Experience the authentic culture and taste traditional cuisines."},
		{Day: 4, Title: "Leisure and Shopping", Description: "Enjoy a relaxed morning. Spend the afternoon shopping for souvenirs or exploring hidden gems at your own pace."},
		{Day: 5, Title: "Departure", Description: "Check out from the hotel and proceed to the airport or station for your onward journey, carrying unforgettable memories."},
	}
	tripPolicies = []models.Policy{
		{Title: "Cancellation Policy", Rules: []string{
			"100% Refund if cancelled 30 days prior to departure.",
			"50% Refund if cancelled 15 days prior to departure.",
			"No refund for cancellations within 7 days of trip.",
		}},
		{Title: "Booking & Payment Terms", Rules: []string{
			"50% Advance payment required to confirm booking.",
			"Remaining balance must be cleared 7 days before the trip starts.",
		}},
	}

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// CatalogService merges the bundled destinations with admin-managed
// packages into storefront sections and trip pages.
type CatalogService struct {
	Catalog  *data.Catalog
	Packages *PackageService
}

func NewCatalogService(catalog *data.Catalog, packages *PackageService) *CatalogService {
	return &CatalogService{Catalog: catalog, Packages: packages}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func slugify(title string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(title), "-")
}

// locationKey is the lowercased text before the first comma.
func locationKey(text string) string {
	head, _, _ := strings.Cut(text, ",")
	return strings.ToLower(strings.TrimSpace(head))
}

// FindStatic looks a bundled entry up by id, then by title slug.
func (s *CatalogService) FindStatic(id string) *models.TripEntry {
	if id == "" {
		return nil
	}
	all := s.Catalog.All()
	for i := range all {
		if all[i].ID == id {
			return &all[i]
		}
	}
	slug := strings.ToLower(id)
	for i := range all {
		if slugify(firstNonEmpty(all[i].Title, all[i].Alt)) == slug {
			return &all[i]
		}
	}
	return nil
}

// Normalize resolves field aliases and fills every gap with the house
// defaults so the trip page always renders.
func Normalize(entry models.TripEntry) models.TripDetail {
	title := firstNonEmpty(entry.Title, entry.Alt, defaultTripTitle)
	mainImage := firstNonEmpty(entry.Img, entry.Image, entry.Front)
	location := firstNonEmpty(entry.Loc, entry.Location, title)

	gallery := entry.Gallery
	if len(gallery) == 0 {
		gallery = []string{}
		if mainImage != "" {
			gallery = []string{mainImage, mainImage, mainImage, mainImage}
		}
	}

	description := entry.Description
	if description == "" {
		description = "Experience a meticulously planned journey to " + location +
			" that blends cultural immersion, thrilling adventures, and serene relaxation. " +
			"Our itineraries are crafted by travel experts to ensure you capture the true essence of the destination " +
			"without any hassle, offering premium stays and seamless transport."
	}

	inclusions := entry.Inclusions
	if len(inclusions) == 0 {
		inclusions = defaultInclusions
	}
	exclusions := entry.Exclusions
	if len(exclusions) == 0 {
		exclusions = defaultExclusions
	}
	itinerary := entry.Itinerary
	if len(itinerary) == 0 {
		itinerary = defaultItinerary
	}

	return models.TripDetail{
		ID:          entry.ID,
		Title:       title,
		Gallery:     gallery,
		Description: description,
		Price:       firstNonEmpty(entry.Price, defaultTripPrice),
		Duration:    firstNonEmpty(entry.Days, entry.Duration, defaultTripDuration),
		Location:    location,
		Inclusions:  inclusions,
		Exclusions:  exclusions,
		Itinerary:   itinerary,
		Policies:    tripPolicies,
	}
}

// PackageEntry maps a stored package onto the bundled entry shape.
func PackageEntry(pkg models.Package) models.TripEntry {
	entry := models.TripEntry{
		ID:          pkg.ID,
		Title:       pkg.Title,
		Image:       pkg.Image,
		Location:    pkg.Location,
		Duration:    pkg.Duration,
		Description: pkg.Description,
		Gallery:     []string(pkg.Gallery),
		Inclusions:  []string(pkg.Inclusions),
		Exclusions:  []string(pkg.Exclusions),
		Itinerary:   []models.ItineraryDay(pkg.Itinerary),
		Featured:    pkg.IsFeatured,
	}
	if pkg.Price > 0 {
		entry.Price = utils.FormatPrice(pkg.Price)
	}
	if models.IsFlipcard(pkg.Category) && len(pkg.Gallery) > 0 {
		entry.Front = pkg.Image
		entry.Back = pkg.Gallery[0]
	}
	return entry
}

func entryCard(entry models.TripEntry, source string) models.TripCard {
	return models.TripCard{
		ID:        entry.ID,
		Title:     firstNonEmpty(entry.Title, entry.Alt),
		Image:     firstNonEmpty(entry.Img, entry.Image, entry.Front),
		BackImage: entry.Back,
		Location:  firstNonEmpty(entry.Loc, entry.Location),
		Price:     entry.Price,
		Duration:  firstNonEmpty(entry.Days, entry.Duration),
		Source:    source,
	}
}

// Similar returns up to three bundled trips whose location overlaps the
// given trip's location.
func (s *CatalogService) Similar(detail models.TripDetail) []models.TripCard {
	key := locationKey(firstNonEmpty(detail.Location, detail.Title))

	similar := []models.TripCard{}
	for _, entry := range s.Catalog.All() {
		if entry.ID == detail.ID {
			continue
		}
		candidate := locationKey(firstNonEmpty(entry.Location, entry.Loc, entry.Title, entry.Alt))
		if len(candidate) < 3 {
			continue
		}
		if !strings.Contains(candidate, key) && !strings.Contains(key, candidate) {
			continue
		}

		card := entryCard(entry, SourceStatic)
		card.Price = firstNonEmpty(entry.Price, similarPriceText)
		card.Location = firstNonEmpty(entry.Location, entry.Loc, entry.Alt)
		similar = append(similar, card)
		if len(similar) == maxSimilarTrips {
			break
		}
	}
	return similar
}

// Section lists a storefront section: stored packages of the category
// first, then the bundled entries. The first card for an id wins.
func (s *CatalogService) Section(category string) ([]models.TripCard, error) {
	if !utils.ValidCategory(category) {
		return nil, ErrNotFound
	}
	packages, err := s.Packages.List(models.PackageFilter{Category: category})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	cards := []models.TripCard{}
	add := func(entry models.TripEntry, source string) {
		if seen[entry.ID] {
			return
		}
		seen[entry.ID] = true
		cards = append(cards, entryCard(entry, source))
	}
	for _, pkg := range packages {
		add(PackageEntry(pkg), SourceDatabase)
	}
	for _, entry := range s.Catalog.Section(category) {
		add(entry, SourceStatic)
	}
	return cards, nil
}

// TripDetail resolves a trip page from the bundled catalog first and the
// database second.
func (s *CatalogService) TripDetail(id string) (*models.TripDetail, error) {
	if entry := s.FindStatic(id); entry != nil {
		detail := Normalize(*entry)
		return &detail, nil
	}

	pkg, err := s.Packages.GetByID(id)
	if err != nil {
		return nil, err
	}
	detail := Normalize(PackageEntry(*pkg))
	return &detail, nil
}

// Quote prices a trip for a traveler count. "3+" is billed as three and an
// empty count as one. Counts are capped so totals stay within int64 given
// ParsePrice's bound. Trips without a numeric price keep their price text.
func Quote(detail models.TripDetail, travelers string) (*models.PriceQuote, error) {
	count := 1
	switch travelers = strings.TrimSpace(travelers); travelers {
	case "":
	case "3+":
		count = 3
	default:
		n, err := strconv.Atoi(travelers)
		if err != nil || n < 1 || n > maxQuoteTravelers {
			return nil, &ValidationError{Field: "travelers", Message: fmt.Sprintf("Travelers must be between 1 and %d.", maxQuoteTravelers)}
		}
		count = n
	}

	quote := &models.PriceQuote{
		TripID:    detail.ID,
		Travelers: count,
		UnitPrice: utils.ParsePrice(detail.Price),
	}
	if quote.UnitPrice <= 0 {
		quote.UnitPrice = 0
		quote.Display = detail.Price
		quote.Negotiable = true
		return quote, nil
	}
	quote.Total = quote.UnitPrice * int64(count)
	quote.Display = utils.FormatINR(quote.Total)
	return quote, nil
}
