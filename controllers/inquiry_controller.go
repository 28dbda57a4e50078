package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"travel-backend/models"
	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type InquiryController struct {
	InquirySvc *services.InquiryService
}

func NewInquiryController(svc *services.InquiryService) *InquiryController {
	return &InquiryController{InquirySvc: svc}
}

var inquiryMessages = map[string]string{
	"name":    "Name must be at least 3 characters.",
	"email":   "Please enter a valid email address.",
	"phone":   "Phone number must be exactly 10 digits.",
	"message": "Message must be at least 5 characters.",
}

// CreateInquiry (POST /api/inquiries)
func (ctrl *InquiryController) CreateInquiry(c *gin.Context) {
	var req models.CreateInquiryRequest
	if !bindJSON(c, &req, inquiryMessages) {
		return
	}

	inq, err := ctrl.InquirySvc.Create(req)
	if err != nil {
		serverError(c, "create inquiry", err)
		return
	}
	c.JSON(http.StatusCreated, inq)
}

// GetInquiries (GET /api/inquiries) admin only
func (ctrl *InquiryController) GetInquiries(c *gin.Context) {
	inquiries, err := ctrl.InquirySvc.List()
	if err != nil {
		serverError(c, "list inquiries", err)
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

// DeleteInquiry (DELETE /api/inquiries/:id) admin only
func (ctrl *InquiryController) DeleteInquiry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusNotFound, "Inquiry not found")
		return
	}

	err = ctrl.InquirySvc.Delete(uint(id))
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Inquiry not found")
		return
	}
	if err != nil {
		serverError(c, "delete inquiry", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed successfully"})
}
