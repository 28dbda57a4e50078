package services

import (
	"errors"
	"fmt"
	"strings"

	"travel-backend/models"
	"travel-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentService struct {
	DB        *gorm.DB
	Gateway   OrderGateway
	KeySecret string
	Currency  string
}

func NewPaymentService(db *gorm.DB, gateway OrderGateway, keySecret, currency string) *PaymentService {
	return &PaymentService{DB: db, Gateway: gateway, KeySecret: keySecret, Currency: currency}
}

func newReceipt() string {
	return "receipt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// CreateOrder opens a gateway order for a rupee amount.
func (s *PaymentService) CreateOrder(amount float64) (map[string]interface{}, error) {
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "Amount must be greater than 0."}
	}
	order, err := s.Gateway.CreateOrder(utils.ToPaise(amount), s.Currency, newReceipt())
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}
	if order == nil {
		return nil, errors.New("gateway returned no order")
	}
	return order, nil
}

// VerifyAndRecord checks the gateway signature and only then stores the
// booking. Replaying the same payment returns the stored booking with
// created=false, so a client may retry after a failed save.
func (s *PaymentService) VerifyAndRecord(userID uint, req models.VerifyPaymentRequest) (*models.Booking, bool, error) {
	if !VerifyPaymentSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, s.KeySecret) {
		return nil, false, ErrInvalidSignature
	}

	var user models.User
	if err := s.DB.Select("id").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	if existing, err := s.bookingByPayment(req.RazorpayPaymentID); err != nil {
		return nil, false, err
	} else if existing != nil {
		if existing.UserID != userID {
			return nil, false, ErrPaymentReused
		}
		return existing, false, nil
	}

	booking := models.Booking{
		UserID:            userID,
		PackageTitle:      strings.TrimSpace(req.PackageTitle),
		Amount:            req.Amount,
		TravelDate:        req.TravelDate,
		Travelers:         req.Travelers,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		Status:            models.BookingStatusSuccess,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if existing, ferr := s.bookingByPayment(req.RazorpayPaymentID); ferr == nil && existing != nil && existing.UserID == userID {
				return existing, false, nil
			}
			return nil, false, ErrPaymentReused
		}
		return nil, false, fmt.Errorf("save booking for order %s payment %s: %w", req.RazorpayOrderID, req.RazorpayPaymentID, err)
	}
	return &booking, true, nil
}

func (s *PaymentService) bookingByPayment(paymentID string) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Where("razorpay_payment_id = ?", paymentID).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *PaymentService) MyBookings(userID uint) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Order("id DESC").Find(&bookings).Error
	return bookings, err
}
