package domain

import "time"

// Idempotency records the review produced for a given (platform_id, key) pair
// so that a retried submission carrying the same Idempotency-Key returns the
// original review instead of inserting a second one.
type Idempotency struct {
	ID         string    `gorm:"type:char(36);primaryKey"`
	PlatformID string    `gorm:"type:char(36);not null;uniqueIndex:ux_platform_key,priority:1"`
	Key        string    `gorm:"type:varchar(128);not null;uniqueIndex:ux_platform_key,priority:2"`
	ReviewID   string    `gorm:"type:char(36);not null"`
	Status     int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime"`
	ExpiresAt  time.Time `gorm:"not null;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }
