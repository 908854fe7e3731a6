package models

import "time"

// DefaultRelationship is used when a contact is created without a
// relationship label.
const DefaultRelationship = "Emergency Contact"

type Contact struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	Name         string    `gorm:"not null" json:"name"`
	Phone        string    `gorm:"not null" json:"phone"`
	Relationship string    `gorm:"size:50" json:"relationship"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c *Contact) OwnerID() uint { return c.UserID }
