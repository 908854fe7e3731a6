package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Shankerteja/Sheshield-backend/apperrors"
	"github.com/Shankerteja/Sheshield-backend/models"
)

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

type ContactInput struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

func (s *ContactService) List(userID uint) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := s.db.Where("user_id = ?", userID).Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *ContactService) Create(userID uint, in ContactInput) (*models.Contact, error) {
	if in.Name == "" {
		return nil, apperrors.Validation("please add a contact name")
	}
	if in.Phone == "" {
		return nil, apperrors.Validation("please add a phone number")
	}
	if in.Relationship == "" {
		in.Relationship = models.DefaultRelationship
	}

	contact := &models.Contact{
		UserID:       userID,
		Name:         in.Name,
		Phone:        in.Phone,
		Relationship: in.Relationship,
	}
	if err := s.db.Create(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

// Update applies a partial update. Not-found takes precedence over
// ownership: a missing record is 404 even for a foreign caller.
func (s *ContactService) Update(userID, id uint, in ContactInput) (*models.Contact, error) {
	contact, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !models.BelongsTo(contact, userID) {
		return nil, apperrors.ErrForbidden
	}

	if in.Name != "" {
		contact.Name = in.Name
	}
	if in.Phone != "" {
		contact.Phone = in.Phone
	}
	if in.Relationship != "" {
		contact.Relationship = in.Relationship
	}
	if err := s.db.Save(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) Delete(userID, id uint) error {
	contact, err := s.find(id)
	if err != nil {
		return err
	}
	if !models.BelongsTo(contact, userID) {
		return apperrors.ErrForbidden
	}
	return s.db.Delete(contact).Error
}

func (s *ContactService) find(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}
