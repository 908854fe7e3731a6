package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
