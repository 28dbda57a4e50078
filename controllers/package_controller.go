package controllers

import (
	"errors"
	"net/http"

	"travel-backend/models"
	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type PackageController struct {
	PackageSvc *services.PackageService
}

func NewPackageController(svc *services.PackageService) *PackageController {
	return &PackageController{PackageSvc: svc}
}

var packageMessages = map[string]string{
	"title":       "Title must be at least 3 characters.",
	"price":       "Price must be a valid number > 0.",
	"image":       "Main Image URL is required.",
	"duration":    "Duration is required.",
	"location":    "Location is required.",
	"description": "Description is required.",
	"inclusions":  "Add at least one inclusion.",
	"exclusions":  "Add at least one exclusion.",
	"itinerary":   "Each itinerary day needs a title and description.",
}

// GetPackages (GET /api/packages?category=&isFeatured=)
func (ctrl *PackageController) GetPackages(c *gin.Context) {
	filter := models.PackageFilter{Category: c.Query("category")}
	if raw := c.Query("isFeatured"); raw != "" {
		featured := raw == "true"
		filter.IsFeatured = &featured
	}

	packages, err := ctrl.PackageSvc.List(filter)
	if err != nil {
		serverError(c, "list packages", err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GetPackage (GET /api/packages/:id)
func (ctrl *PackageController) GetPackage(c *gin.Context) {
	pkg, err := ctrl.PackageSvc.GetByID(c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Package not found")
		return
	}
	if err != nil {
		serverError(c, "get package", err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// CreatePackage (POST /api/packages) admin only
func (ctrl *PackageController) CreatePackage(c *gin.Context) {
	var req models.CreatePackageRequest
	if !bindJSON(c, &req, packageMessages) {
		return
	}

	pkg, err := ctrl.PackageSvc.Create(req)
	if respondValidation(c, err) {
		return
	}
	if err != nil {
		serverError(c, "create package", err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

// DeletePackage (DELETE /api/packages/:id) admin only
func (ctrl *PackageController) DeletePackage(c *gin.Context) {
	err := ctrl.PackageSvc.Delete(c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Package not found")
		return
	}
	if err != nil {
		serverError(c, "delete package", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed successfully"})
}
