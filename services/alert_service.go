package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Shankerteja/Sheshield-backend/apperrors"
	"github.com/Shankerteja/Sheshield-backend/models"
)

type AlertService struct {
	db *gorm.DB
}

func NewAlertService(db *gorm.DB) *AlertService {
	return &AlertService{db: db}
}

// Create records an alert as a log entry. Recording the alert and
// sending SMS are independent; the record exists even if every send
// fails.
func (s *AlertService) Create(userID uint, location, message string) (*models.Alert, error) {
	if location == "" {
		return nil, apperrors.Validation("please add a location")
	}
	if message == "" {
		return nil, apperrors.Validation("please add a message")
	}

	alert := &models.Alert{
		UserID:   userID,
		Location: location,
		Message:  message,
		Status:   models.AlertActive,
	}
	if err := s.db.Create(alert).Error; err != nil {
		return nil, err
	}
	return alert, nil
}

// List returns the caller's alerts, newest first.
func (s *AlertService) List(userID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (s *AlertService) UpdateStatus(userID, id uint, status string) (*models.Alert, error) {
	if !models.ValidAlertStatus(status) {
		return nil, apperrors.Validation("status must be one of active, resolved, cancelled")
	}

	alert, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !models.BelongsTo(alert, userID) {
		return nil, apperrors.ErrForbidden
	}

	alert.Status = status
	if err := s.db.Save(alert).Error; err != nil {
		return nil, err
	}
	return alert, nil
}

func (s *AlertService) Delete(userID, id uint) error {
	alert, err := s.find(id)
	if err != nil {
		return err
	}
	if !models.BelongsTo(alert, userID) {
		return apperrors.ErrForbidden
	}
	return s.db.Delete(alert).Error
}

func (s *AlertService) find(id uint) (*models.Alert, error) {
	var alert models.Alert
	if err := s.db.First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &alert, nil
}
