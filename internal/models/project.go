package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	StatusOpen   ProjectStatus = "open"
	StatusClosed ProjectStatus = "closed"
)

type Project struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`

	Name          string        `gorm:"size:255;not null"`
	ContractPrice float64       `gorm:"type:numeric(12,2);not null;default:0"`
	Status        ProjectStatus `gorm:"type:varchar(20);not null;default:'open'"`

	// счётчик версий для условного обновления; растёт на 1 при каждой успешной записи
	Version int `gorm:"not null;default:1"`

	// проставляется при закрытии объекта, сбрасывается при повторном открытии
	ClosedAt *time.Time

	AdditionalWorks []AdditionalWork
	Payments        []ClientPayment
}
