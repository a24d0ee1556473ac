package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint
	User   User

	Entity   string `gorm:"size:50;not null"` // "project", "payment", "expense" и т.п.
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "close", "force_update" и т.п.
	Details  string `gorm:"type:text"`
}
