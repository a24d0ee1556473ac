package models

import "time"

// Справочники категорий расходов и способов оплаты.
// id — uuid-строка; остальной код хранит только id,
// имена резолвятся на уровне выдачи.

type Category struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"size:255;not null"`
	CreatedAt time.Time
}

type PaymentMethod struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"size:255;not null"`
	CreatedAt time.Time
}
