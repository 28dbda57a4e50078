package services

import (
	"encoding/json"
	"testing"
	"time"

	"travel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func validPackageRequest() models.CreatePackageRequest {
	return models.CreatePackageRequest{
		Title:       "Kashmir Valley Tour",
		Price:       json.RawMessage(`18999`),
		Image:       "https://img.example.com/kashmir.jpg",
		Category:    models.CategoryIndia,
		Duration:    "6 Days / 5 Nights",
		Location:    "Srinagar, Kashmir",
		Description: "Houseboats, gardens and Gulmarg.",
		Inclusions:  []string{"Hotel", "Breakfast"},
		Exclusions:  []string{"Flights"},
		Itinerary: []models.ItineraryDay{
			{Day: 4, Title: "Arrive", Description: "Check in to the houseboat."},
			{Day: 9, Title: "Gulmarg", Description: "Gondola ride."},
		},
	}
}

func insertPackage(t *testing.T, db *gorm.DB, title, category string, featured bool, createdAt time.Time) models.Package {
	t.Helper()
	pkg := models.Package{
		Title:      title,
		Price:      1000,
		Category:   category,
		IsFeatured: featured,
		Gallery:    datatypes.NewJSONSlice([]string{}),
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(&pkg).Error)
	return pkg
}

func TestCreatePackageRenumbersItinerary(t *testing.T) {
	svc := NewPackageService(newTestDB(t))

	pkg, err := svc.Create(validPackageRequest())
	require.NoError(t, err)
	assert.Len(t, pkg.ID, 36)
	assert.Equal(t, 18999.0, pkg.Price)
	require.Len(t, pkg.Itinerary, 2)
	assert.Equal(t, 1, pkg.Itinerary[0].Day)
	assert.Equal(t, 2, pkg.Itinerary[1].Day)

	stored, err := svc.GetByID(pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hotel", "Breakfast"}, []string(stored.Inclusions))
	assert.Equal(t, "Gulmarg", stored.Itinerary[1].Title)
}

func TestCreatePackageValidation(t *testing.T) {
	svc := NewPackageService(newTestDB(t))

	req := validPackageRequest()
	req.Price = json.RawMessage(`0`)
	_, err := svc.Create(req)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)

	for _, raw := range []string{`"abc"`, `null`, `-5`, `true`, `"1e999"`} {
		req = validPackageRequest()
		req.Price = json.RawMessage(raw)
		_, err = svc.Create(req)
		require.ErrorAs(t, err, &verr, raw)
		assert.Equal(t, "price", verr.Field, raw)
	}

	req = validPackageRequest()
	req.Price = json.RawMessage(`" 24999.5 "`)
	pkg, err := svc.Create(req)
	require.NoError(t, err)
	assert.Equal(t, 24999.5, pkg.Price)

	req = validPackageRequest()
	req.Category = models.CategoryFlipcardIndia
	_, err = svc.Create(req)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "backImage", verr.Field)

	req.BackImage = "https://img.example.com/back.jpg"
	pkg, err = svc.Create(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img.example.com/back.jpg"}, []string(pkg.Gallery))
}

func TestListPackagesFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackageService(db)
	now := time.Now()

	old := insertPackage(t, db, "Goa", models.CategoryIndia, false, now.Add(-2*time.Hour))
	recent := insertPackage(t, db, "Kerala", models.CategoryIndia, true, now.Add(-time.Hour))
	insertPackage(t, db, "Dubai", models.CategoryInternational, true, now)

	india, err := svc.List(models.PackageFilter{Category: models.CategoryIndia})
	require.NoError(t, err)
	require.Len(t, india, 2)
	assert.Equal(t, recent.ID, india[0].ID)
	assert.Equal(t, old.ID, india[1].ID)

	featured := true
	got, err := svc.List(models.PackageFilter{Category: models.CategoryIndia, IsFeatured: &featured})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kerala", got[0].Title)

	notFeatured := false
	got, err = svc.List(models.PackageFilter{IsFeatured: &notFeatured})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Goa", got[0].Title)

	all, err := svc.List(models.PackageFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "Dubai", all[0].Title)

	none, err := svc.List(models.PackageFilter{Category: "India"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeletePackage(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackageService(db)
	pkg := insertPackage(t, db, "Goa", models.CategoryIndia, false, time.Now())

	require.NoError(t, svc.Delete(pkg.ID))
	_, err := svc.GetByID(pkg.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(pkg.ID), ErrNotFound)
}
