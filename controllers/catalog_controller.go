package controllers

import (
	"errors"
	"net/http"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogSvc *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{CatalogSvc: svc}
}

// GetSection (GET /api/catalog/sections/:name)
func (ctrl *CatalogController) GetSection(c *gin.Context) {
	cards, err := ctrl.CatalogSvc.Section(c.Param("name"))
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Section not found")
		return
	}
	if err != nil {
		serverError(c, "catalog section", err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// GetTrip (GET /api/catalog/trips/:id)
func (ctrl *CatalogController) GetTrip(c *gin.Context) {
	detail, err := ctrl.CatalogSvc.TripDetail(c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Trip not found")
		return
	}
	if err != nil {
		serverError(c, "trip detail", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": detail, "similar": ctrl.CatalogSvc.Similar(*detail)})
}

// QuoteTrip (GET /api/catalog/trips/:id/quote?travelers=)
func (ctrl *CatalogController) QuoteTrip(c *gin.Context) {
	detail, err := ctrl.CatalogSvc.TripDetail(c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Trip not found")
		return
	}
	if err != nil {
		serverError(c, "trip quote", err)
		return
	}

	quote, err := services.Quote(*detail, c.Query("travelers"))
	if respondValidation(c, err) {
		return
	}
	if err != nil {
		serverError(c, "trip quote", err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
