package models

import "time"

// User is a storefront account. The first account created becomes admin.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	Username  string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	IsAdmin   bool      `gorm:"index" json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is touched on every login and doubles as last activity.
	UpdatedAt time.Time `json:"updatedAt"`

	Bookings []Booking `gorm:"foreignKey:UserID" json:"bookings"`
}

type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,password"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	ID       uint   `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
	Token    string `json:"token"`
}
