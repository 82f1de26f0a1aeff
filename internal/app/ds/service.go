package ds

import "time"

// 1. Категории услуг
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);unique;not null"`
}

// 2. Таблица услуг. Имя уникально в пределах категории (проверяется валидатором)
type Service struct {
	ID          uint    `gorm:"primaryKey"`
	CategoryID  uint    `gorm:"not null;index"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Emoji       string  `gorm:"type:varchar(32)"`
	Description string  `gorm:"type:text"`
	IconURL     *string `gorm:"type:varchar(255)"` // Nullable
	IsActive    bool    `gorm:"type:boolean;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category Category `gorm:"foreignKey:CategoryID"`
}
