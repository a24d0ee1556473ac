package models

import (
	"time"

	"gorm.io/gorm"
)

// AdditionalWork — доп. работа по объекту (изменение сметы).
// После создания не редактируется, только удаляется целиком.
type AdditionalWork struct {
	gorm.Model
	ProjectID uint `gorm:"index;not null"`

	Date        time.Time `gorm:"not null"`
	Amount      float64   `gorm:"type:numeric(12,2);not null"`
	Description string    `gorm:"type:text"`
}
