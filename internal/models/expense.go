package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense — расход: либо по конкретному объекту, либо общий расход бизнеса.
type Expense struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`

	// nil — общий расход, не привязанный к объекту
	ProjectID *uint `gorm:"index"`

	Date   time.Time `gorm:"not null"`
	Amount float64   `gorm:"type:numeric(12,2);not null"`

	CategoryID      string `gorm:"size:36"`
	PaymentMethodID string `gorm:"size:36"`
	Note            string `gorm:"type:text"`
}
