package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:128;not null" json:"name"`
	Email    string  `gorm:"size:128;uniqueIndex;not null" json:"email"`
	Password string  `gorm:"size:255;not null" json:"-"`
	Phone    *string `gorm:"size:32" json:"phone,omitempty"`
	Role     string  `gorm:"type:enum('customer','admin');default:'customer'" json:"role"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
