package models

import "time"

// IdempotencyKey records an applied mutating action so a replayed request
// with the same key has no second effect.
type IdempotencyKey struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"size:64;uniqueIndex;not null" json:"key"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Action    string    `gorm:"size:32;not null" json:"action"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
