package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Name            string         `json:"name" gorm:"not null"`
	Email           string         `json:"email" gorm:"not null;uniqueIndex"`
	Password        string         `json:"-" gorm:"not null"`
	ProfileImageURL *string        `json:"profileImageUrl,omitempty"`
	Sessions        []Session      `json:"sessions,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
