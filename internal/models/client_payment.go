package models

import (
	"time"

	"gorm.io/gorm"
)

// ClientPayment — оплата от заказчика по объекту.
type ClientPayment struct {
	gorm.Model
	ProjectID uint `gorm:"index;not null"`

	Date   time.Time `gorm:"not null"`
	Amount float64   `gorm:"type:numeric(12,2);not null"`

	// id способа оплаты из справочника; пустая строка допустима,
	// в отчётах такие строки попадают под ключ "unknown"
	PaymentMethodID string `gorm:"size:36"`
}
