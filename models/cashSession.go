package models

import "time"

// CashSession tracks cash taken over the counter while an admin is on shift.
// CASH pickups completed during an open session count toward its takings.
type CashSession struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	User        User       `json:"user,omitempty"`
	OpeningCash float64    `gorm:"not null" json:"opening_cash"`
	ClosingCash *float64   `json:"closing_cash,omitempty"`
	Takings     *float64   `json:"takings,omitempty"`
	Status      string     `gorm:"type:enum('open','closed');default:'open'" json:"status"`
	OpenedAt    time.Time  `gorm:"not null" json:"opened_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}
