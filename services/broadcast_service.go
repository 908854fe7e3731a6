package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Shankerteja/Sheshield-backend/apperrors"
	"github.com/Shankerteja/Sheshield-backend/models"
)

const (
	defaultBroadcastMessage = "I need immediate help!"
	defaultTestMessage      = "This is a test message from SheShield"
	unknownLocation         = "Location unavailable"
)

// ContactOutcome records the result of one send within a broadcast.
type ContactOutcome struct {
	ContactID uint   `json:"contact_id"`
	Name      string `json:"name"`
	Status    string `json:"status"` // "success" | "failed"
	Error     string `json:"error,omitempty"`
}

// BroadcastResult aggregates per-contact outcomes. It is built fresh
// per broadcast and never persisted.
type BroadcastResult struct {
	Total      int              `json:"totalContacts"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Details    []ContactOutcome `json:"details,omitempty"`
}

// BroadcastService fans an emergency message out to a user's contacts.
type BroadcastService struct {
	db     *gorm.DB
	sender Sender
	log    *zap.Logger
}

func NewBroadcastService(db *gorm.DB, sender Sender, log *zap.Logger) *BroadcastService {
	return &BroadcastService{db: db, sender: sender, log: log}
}

// Broadcast composes one emergency message and sends it to every
// contact the user owns. Sends are dispatched concurrently; a failed
// send is recorded and does not abort the rest. The tally is collected
// after all sends complete, so counts are independent of completion
// order.
func (b *BroadcastService) Broadcast(userID uint, location, message string) (*BroadcastResult, error) {
	var user models.User
	if err := b.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	var contacts []models.Contact
	if err := b.db.Where("user_id = ?", userID).Find(&contacts).Error; err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, apperrors.ErrNoContacts
	}

	if message == "" {
		message = defaultBroadcastMessage
	}
	body := ComposeEmergencyMessage(user.Name, MapsLink(location), message)

	outcomes := make(chan ContactOutcome, len(contacts))
	for _, contact := range contacts {
		go func(contact models.Contact) {
			if _, err := b.sender.Send(contact.Phone, body); err != nil {
				b.log.Error("broadcast send failed",
					zap.Uint("contact_id", contact.ID),
					zap.String("phone", contact.Phone),
					zap.Error(err))
				outcomes <- ContactOutcome{
					ContactID: contact.ID,
					Name:      contact.Name,
					Status:    "failed",
					Error:     err.Error(),
				}
				return
			}
			outcomes <- ContactOutcome{
				ContactID: contact.ID,
				Name:      contact.Name,
				Status:    "success",
			}
		}(contact)
	}

	result := &BroadcastResult{Total: len(contacts)}
	for range contacts {
		outcome := <-outcomes
		result.Details = append(result.Details, outcome)
		if outcome.Status == "success" {
			result.Successful++
		} else {
			result.Failed++
		}
	}

	b.log.Info("emergency broadcast finished",
		zap.Uint("user_id", userID),
		zap.Int("total", result.Total),
		zap.Int("successful", result.Successful),
		zap.Int("failed", result.Failed))
	return result, nil
}

// BroadcastToOne sends an ad-hoc message to a single named contact.
// The contact must be owned by the caller.
func (b *BroadcastService) BroadcastToOne(userID, contactID uint, message string) (*models.Contact, error) {
	var contact models.Contact
	if err := b.db.First(&contact, contactID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if !models.BelongsTo(&contact, userID) {
		return nil, apperrors.ErrForbidden
	}

	var user models.User
	if err := b.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	if message == "" {
		message = defaultTestMessage
	}
	body := ComposeEmergencyMessage(user.Name, unknownLocation, message)

	if _, err := b.sender.Send(contact.Phone, body); err != nil {
		return nil, err
	}
	return &contact, nil
}
