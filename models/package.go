package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Storefront categories. Flipcard categories render as two-sided cards and
// need a back image.
const (
	CategoryInternational = "international"
	CategoryIndia         = "india"
	CategoryHoneymoon     = "honeymoon"
	CategoryDeal          = "deal"
	CategoryFlipcardIndia = "flipcard-india"
	CategoryFlipcardIntl  = "flipcard-intl"
)

var Categories = []string{
	CategoryInternational,
	CategoryIndia,
	CategoryHoneymoon,
	CategoryDeal,
	CategoryFlipcardIndia,
	CategoryFlipcardIntl,
}

func IsFlipcard(category string) bool {
	return category == CategoryFlipcardIndia || category == CategoryFlipcardIntl
}

// ItineraryDay is one day of a trip plan.
type ItineraryDay struct {
	Day         int    `json:"day" yaml:"day"`
	Title       string `json:"title" yaml:"title" binding:"required"`
	Description string `json:"description" yaml:"description" binding:"required"`
}

// UnmarshalJSON accepts "desc" as an alias of "description"; the admin
// console posts the short name.
func (d *ItineraryDay) UnmarshalJSON(b []byte) error {
	var raw struct {
		Day         int    `json:"day"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Desc        string `json:"desc"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	d.Day = raw.Day
	d.Title = raw.Title
	d.Description = raw.Description
	if d.Description == "" {
		d.Description = raw.Desc
	}
	return nil
}

// Package is a sellable trip managed from the admin console.
type Package struct {
	// UUID keys keep database packages from colliding with the bundled
	// catalog ids when storefront sections are merged.
	ID          string                            `gorm:"primaryKey;size:36" json:"_id"`
	Title       string                            `gorm:"size:255;not null" json:"title"`
	Price       float64                           `gorm:"not null" json:"price"`
	Image       string                            `gorm:"size:1024" json:"image"`
	Gallery     datatypes.JSONSlice[string]       `json:"gallery"`
	Category    string                            `gorm:"size:32;index;not null" json:"category"`
	Duration    string                            `gorm:"size:100" json:"duration"`
	Location    string                            `gorm:"size:255" json:"location"`
	Description string                            `gorm:"type:text" json:"description"`
	IsFeatured  bool                              `gorm:"index" json:"isFeatured"`
	Inclusions  datatypes.JSONSlice[string]       `json:"inclusions"`
	Exclusions  datatypes.JSONSlice[string]       `json:"exclusions"`
	Itinerary   datatypes.JSONSlice[ItineraryDay] `json:"itinerary"`
	CreatedAt   time.Time                         `json:"createdAt"`
	UpdatedAt   time.Time                         `json:"updatedAt"`
}

func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// CreatePackageRequest is the admin create payload. Price arrives either as
// a JSON number or as the raw text of the form field; it is parsed by the
// service so a bad value is reported against "price".
type CreatePackageRequest struct {
	Title       string          `json:"title" binding:"required,min=3"`
	Price       json.RawMessage `json:"price" binding:"required"`
	Image       string          `json:"image" binding:"required,url"`
	BackImage   string          `json:"backImage" binding:"omitempty,url"`
	Gallery     []string        `json:"gallery" binding:"omitempty,dive,url"`
	Category    string          `json:"category" binding:"required,category"`
	Duration    string          `json:"duration" binding:"required"`
	Location    string          `json:"location" binding:"required"`
	Description string          `json:"description" binding:"required"`
	IsFeatured  bool            `json:"isFeatured"`
	Inclusions  []string        `json:"inclusions" binding:"required,min=1,dive,required"`
	Exclusions  []string        `json:"exclusions" binding:"required,min=1,dive,required"`
	Itinerary   []ItineraryDay  `json:"itinerary" binding:"required,min=1,dive"`
}

// PackageFilter narrows a package listing. Nil fields are not applied.
type PackageFilter struct {
	Category   string
	IsFeatured *bool
}
