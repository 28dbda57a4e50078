package services

import (
	"log"
	"strings"

	"travel-backend/models"

	"gorm.io/gorm"
)

// InquiryNotifier is told about every stored inquiry.
type InquiryNotifier interface {
	NotifyInquiry(inq models.Inquiry) error
}

type InquiryService struct {
	DB       *gorm.DB
	Notifier InquiryNotifier
}

func NewInquiryService(db *gorm.DB, notifier InquiryNotifier) *InquiryService {
	return &InquiryService{DB: db, Notifier: notifier}
}

// Create stores the lead first; a failed notification never loses it.
func (s *InquiryService) Create(req models.CreateInquiryRequest) (*models.Inquiry, error) {
	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = models.DefaultInquirySource
	}

	inq := models.Inquiry{
		Name:    strings.TrimSpace(req.Name),
		Email:   normalizeEmail(req.Email),
		Phone:   req.Phone,
		Message: strings.TrimSpace(req.Message),
		Source:  source,
	}
	if err := s.DB.Create(&inq).Error; err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		if err := s.Notifier.NotifyInquiry(inq); err != nil {
			log.Printf("⚠️ inquiry %d stored but notification failed: %v", inq.ID, err)
		}
	}
	return &inq, nil
}

func (s *InquiryService) List() ([]models.Inquiry, error) {
	inquiries := []models.Inquiry{}
	err := s.DB.Order("created_at DESC").Order("id DESC").Find(&inquiries).Error
	return inquiries, err
}

func (s *InquiryService) Delete(id uint) error {
	result := s.DB.Delete(&models.Inquiry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
