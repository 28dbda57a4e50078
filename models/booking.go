package models

import "time"

const BookingStatusSuccess = "Success"

// Booking is a paid reservation. It is written once, after the gateway
// signature has been verified, and never updated.
type Booking struct {
	ID                uint      `gorm:"primaryKey" json:"_id"`
	UserID            uint      `gorm:"not null;index" json:"user"`
	PackageTitle      string    `gorm:"size:255;not null" json:"packageTitle"`
	Amount            float64   `gorm:"not null" json:"amount"`
	TravelDate        string    `gorm:"size:32;not null" json:"travelDate"`
	Travelers         int       `gorm:"not null" json:"travelers"`
	RazorpayOrderID   string    `gorm:"size:64;not null;index" json:"razorpay_order_id"`
	RazorpayPaymentID string    `gorm:"size:64;not null;uniqueIndex" json:"razorpay_payment_id"`
	Status            string    `gorm:"size:32;default:Success;index" json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type CreateOrderRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// VerifyPaymentRequest carries the gateway callback fields plus the booking
// details collected on the trip page.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string  `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string  `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string  `json:"razorpay_signature" binding:"required"`
	PackageTitle      string  `json:"packageTitle" binding:"required"`
	Amount            float64 `json:"amount" binding:"required,gt=0"`
	TravelDate        string  `json:"travelDate" binding:"required,datetime=2006-01-02"`
	Travelers         int     `json:"travelers" binding:"required,gt=0"`
}
