// Package data holds the destination catalog bundled with the binary.
package data

import (
	_ "embed"
	"fmt"

	"travel-backend/models"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog mirrors the storefront sections of the bundled data file.
type Catalog struct {
	HoneymoonPackages         []models.TripEntry `yaml:"honeymoonPackages"`
	IndiaData                 []models.TripEntry `yaml:"indiaData"`
	InternationalData         []models.TripEntry `yaml:"internationalData"`
	ExhilaratingDeals         []models.TripEntry `yaml:"exhilaratingDeals"`
	ExclusiveDeals            []models.TripEntry `yaml:"exclusiveDeals"`
	RomanticData              []models.TripEntry `yaml:"romanticData"`
	HoneymoonDestinations     []models.TripEntry `yaml:"honeymoonDestinations"`
	IndianDestinations        []models.TripEntry `yaml:"IndianDestinations"`
	InternationalDestinations []models.TripEntry `yaml:"InternationalDestinations"`
}

// Load decodes the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &c, nil
}

// All returns every entry, section by section, in lookup order.
func (c *Catalog) All() []models.TripEntry {
	var all []models.TripEntry
	for _, section := range [][]models.TripEntry{
		c.HoneymoonPackages,
		c.IndiaData,
		c.InternationalData,
		c.ExhilaratingDeals,
		c.ExclusiveDeals,
		c.RomanticData,
		c.HoneymoonDestinations,
		c.IndianDestinations,
		c.InternationalDestinations,
	} {
		all = append(all, section...)
	}
	return all
}

// Section returns the bundled entries shown under a storefront category.
func (c *Catalog) Section(category string) []models.TripEntry {
	var parts [][]models.TripEntry
	switch category {
	case models.CategoryDeal:
		parts = [][]models.TripEntry{c.ExhilaratingDeals, c.ExclusiveDeals}
	case models.CategoryInternational:
		parts = [][]models.TripEntry{c.InternationalData}
	case models.CategoryIndia:
		parts = [][]models.TripEntry{c.IndiaData}
	case models.CategoryHoneymoon:
		parts = [][]models.TripEntry{c.RomanticData, c.HoneymoonPackages, c.HoneymoonDestinations}
	case models.CategoryFlipcardIndia:
		parts = [][]models.TripEntry{c.IndianDestinations}
	case models.CategoryFlipcardIntl:
		parts = [][]models.TripEntry{c.InternationalDestinations}
	}

	var out []models.TripEntry
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
