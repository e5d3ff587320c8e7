package domain

import "time"

// Idempotency records the response of a completed create request, keyed by
// (scope, key) where scope is "METHOD path". A retry carrying the same
// Idempotency-Key is answered from Status and Body until ExpiresAt, without
// re-executing the insert.
type Idempotency struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	Scope     string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_scope_key,priority:1"`
	Key       string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_scope_key,priority:2"`
	Status    int       `gorm:"not null"`
	Body      []byte    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }
