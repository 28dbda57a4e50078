package services

import (
	"travel-backend/models"

	"gorm.io/gorm"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// ListCustomers returns every non-admin account with its successful
// bookings attached.
func (s *CustomerService) ListCustomers() ([]models.User, error) {
	customers := []models.User{}
	err := s.DB.
		Where("is_admin = ?", false).
		Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", models.BookingStatusSuccess).Order("created_at DESC")
		}).
		Order("created_at DESC").
		Order("id DESC").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].Bookings == nil {
			customers[i].Bookings = []models.Booking{}
		}
	}
	return customers, nil
}
