package models

import "time"

const (
	AlertActive    = "active"
	AlertResolved  = "resolved"
	AlertCancelled = "cancelled"
)

type Alert struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Location  string    `gorm:"not null" json:"location"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:20;default:'active'" json:"status"` // "active" | "resolved" | "cancelled"
	CreatedAt time.Time `json:"created_at"`
}

func (a *Alert) OwnerID() uint { return a.UserID }

// ValidAlertStatus reports whether s is one of the allowed status values.
func ValidAlertStatus(s string) bool {
	switch s {
	case AlertActive, AlertResolved, AlertCancelled:
		return true
	}
	return false
}
