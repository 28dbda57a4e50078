package models

// TripEntry is one bundled destination as authored in the static catalog.
// Entries come from several storefront sections and do not agree on field
// names, so every alias is kept and resolved during normalization.
type TripEntry struct {
	ID          string         `yaml:"id" json:"id"`
	Title       string         `yaml:"title" json:"title,omitempty"`
	Alt         string         `yaml:"alt" json:"alt,omitempty"`
	Img         string         `yaml:"img" json:"img,omitempty"`
	Image       string         `yaml:"image" json:"image,omitempty"`
	Front       string         `yaml:"front" json:"front,omitempty"`
	Back        string         `yaml:"back" json:"back,omitempty"`
	Loc         string         `yaml:"loc" json:"loc,omitempty"`
	Location    string         `yaml:"location" json:"location,omitempty"`
	Price       string         `yaml:"price" json:"price,omitempty"`
	Days        string         `yaml:"days" json:"days,omitempty"`
	Duration    string         `yaml:"duration" json:"duration,omitempty"`
	Description string         `yaml:"description" json:"description,omitempty"`
	Gallery     []string       `yaml:"gallery" json:"gallery,omitempty"`
	Inclusions  []string       `yaml:"inclusions" json:"inclusions,omitempty"`
	Exclusions  []string       `yaml:"exclusions" json:"exclusions,omitempty"`
	Itinerary   []ItineraryDay `yaml:"itinerary" json:"itinerary,omitempty"`
	Featured    bool           `yaml:"featured" json:"featured,omitempty"`
}

// TripCard is the compact shape used by storefront sliders and the
// "similar trips" strip.
type TripCard struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	BackImage string `json:"backImage,omitempty"`
	Location  string `json:"location"`
	Price     string `json:"price"`
	Duration  string `json:"duration,omitempty"`
	Source    string `json:"source"`
}

type Policy struct {
	Title string   `json:"title"`
	Rules []string `json:"rules"`
}

// TripDetail is the single display model of the trip details page.
type TripDetail struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Gallery     []string       `json:"gallery"`
	Description string         `json:"description"`
	Price       string         `json:"price"`
	Duration    string         `json:"duration"`
	Location    string         `json:"location"`
	Inclusions  []string       `json:"inclusions"`
	Exclusions  []string       `json:"exclusions"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Policies    []Policy       `json:"policies"`
}

// PriceQuote is the total shown next to the booking form.
type PriceQuote struct {
	TripID     string `json:"tripId"`
	Travelers  int    `json:"travelers"`
	UnitPrice  int64  `json:"unitPrice"`
	Total      int64  `json:"total"`
	Display    string `json:"display"`
	Negotiable bool   `json:"negotiable"`
}
