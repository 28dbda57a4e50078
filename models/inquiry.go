package models

import "time"

const DefaultInquirySource = "Website"

// Inquiry is a lead left through one of the public forms.
type Inquiry struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Message   string    `gorm:"type:text" json:"message"`
	Source    string    `gorm:"size:100;index" json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateInquiryRequest struct {
	Name    string `json:"name" binding:"required,min=3"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,phone10"`
	Message string `json:"message" binding:"omitempty,min=5"`
	Source  string `json:"source" binding:"omitempty,max=100"`
}
