package controllers

import (
	"errors"
	"log"
	"net/http"

	"travel-backend/middleware"
	"travel-backend/models"
	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	PaymentSvc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{PaymentSvc: svc}
}

// CreateOrder (POST /api/payment/create-order)
func (ctrl *PaymentController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if !bindJSON(c, &req, map[string]string{"amount": "Amount must be greater than 0."}) {
		return
	}

	order, err := ctrl.PaymentSvc.CreateOrder(req.Amount)
	if respondValidation(c, err) {
		return
	}
	if err != nil {
		serverError(c, "create order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// VerifyPayment (POST /api/payment/verify-payment) requires login
func (ctrl *PaymentController) VerifyPayment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}

	var req models.VerifyPaymentRequest
	if !bindJSON(c, &req, nil) {
		return
	}

	booking, created, err := ctrl.PaymentSvc.VerifyAndRecord(user.ID, req)
	switch {
	case errors.Is(err, services.ErrInvalidSignature):
		log.Printf("⚠️ invalid payment signature for order %s from user %d", req.RazorpayOrderID, user.ID)
		utils.JSONError(c, http.StatusBadRequest, "Invalid signature sent!")
		return
	case errors.Is(err, services.ErrPaymentReused):
		utils.JSONError(c, http.StatusConflict, "Payment already recorded")
		return
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized, token failed")
		return
	case err != nil:
		serverError(c, "verify payment", err)
		return
	}

	if created {
		log.Printf("✅ booking %d recorded for user %d (payment %s)", booking.ID, user.ID, booking.RazorpayPaymentID)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment verified successfully", "booking": booking})
}

// MyBookings (GET /api/payment/my-bookings) requires login
func (ctrl *PaymentController) MyBookings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}

	bookings, err := ctrl.PaymentSvc.MyBookings(user.ID)
	if err != nil {
		serverError(c, "my bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
