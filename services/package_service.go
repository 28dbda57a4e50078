package services

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"travel-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PackageService struct {
	DB *gorm.DB
}

func NewPackageService(db *gorm.DB) *PackageService {
	return &PackageService{DB: db}
}

// List returns packages newest first. Category must match exactly.
func (s *PackageService) List(filter models.PackageFilter) ([]models.Package, error) {
	q := s.DB.Model(&models.Package{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.IsFeatured != nil {
		q = q.Where("is_featured = ?", *filter.IsFeatured)
	}

	packages := []models.Package{}
	err := q.Order("created_at DESC").Order("id DESC").Find(&packages).Error
	return packages, err
}

func (s *PackageService) GetByID(id string) (*models.Package, error) {
	var pkg models.Package
	if err := s.DB.Where("id = ?", id).First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

// parsePackagePrice accepts 18999 or "18999".
func parsePackagePrice(raw json.RawMessage) (float64, bool) {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// Create validates what binding tags cannot express and stores the package.
// Itinerary days are renumbered 1..n in the order given.
func (s *PackageService) Create(req models.CreatePackageRequest) (*models.Package, error) {
	price, ok := parsePackagePrice(req.Price)
	if !ok || price <= 0 {
		return nil, &ValidationError{Field: "price", Message: "Price must be a valid number > 0."}
	}

	gallery := make([]string, 0, len(req.Gallery)+1)
	for _, g := range req.Gallery {
		if g = strings.TrimSpace(g); g != "" {
			gallery = append(gallery, g)
		}
	}
	if len(gallery) == 0 && req.BackImage != "" {
		gallery = append(gallery, req.BackImage)
	}
	if models.IsFlipcard(req.Category) && len(gallery) == 0 {
		return nil, &ValidationError{Field: "backImage", Message: "Back Image required for Flipcards."}
	}

	itinerary := make([]models.ItineraryDay, len(req.Itinerary))
	for i, day := range req.Itinerary {
		itinerary[i] = models.ItineraryDay{
			Day:         i + 1,
			Title:       strings.TrimSpace(day.Title),
			Description: strings.TrimSpace(day.Description),
		}
	}

	pkg := models.Package{
		Title:       strings.TrimSpace(req.Title),
		Price:       price,
		Image:       req.Image,
		Gallery:     datatypes.NewJSONSlice(gallery),
		Category:    req.Category,
		Duration:    strings.TrimSpace(req.Duration),
		Location:    strings.TrimSpace(req.Location),
		Description: strings.TrimSpace(req.Description),
		IsFeatured:  req.IsFeatured,
		Inclusions:  datatypes.NewJSONSlice(req.Inclusions),
		Exclusions:  datatypes.NewJSONSlice(req.Exclusions),
		Itinerary:   datatypes.NewJSONSlice(itinerary),
	}
	if err := s.DB.Create(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *PackageService) Delete(id string) error {
	result := s.DB.Where("id = ?", id).Delete(&models.Package{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
