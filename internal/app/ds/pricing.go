package ds

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// 3. Методы ценообразования услуги
type PricingMethod struct {
	ID           uint            `gorm:"primaryKey"`
	ServiceID    uint            `gorm:"not null;index"`
	Name         string          `gorm:"type:varchar(100);not null"`
	GroupName    string          `gorm:"type:varchar(100)"`
	PricingUnit  string          `gorm:"type:varchar(20);not null"` // FIXED, PER_LEVEL, PER_KILL, PER_ITEM, PER_HOUR
	BasePrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StartLevel   *int            `gorm:"type:int"` // только для PER_LEVEL
	EndLevel     *int            `gorm:"type:int"`
	Shortcuts    datatypes.JSON  `gorm:"type:jsonb"` // ["exp", "fast"]
	DisplayOrder int             `gorm:"type:int;not null"`
	IsActive     bool            `gorm:"type:boolean;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Service Service `gorm:"foreignKey:ServiceID"`
}

// 4. Модификаторы цены услуги
type ServiceModifier struct {
	ID           uint            `gorm:"primaryKey"`
	ServiceID    uint            `gorm:"not null;index"`
	Name         string          `gorm:"type:varchar(100);not null"`
	ModifierType string          `gorm:"type:varchar(20);not null"` // PERCENTAGE, FIXED
	Value        decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	DisplayType  string          `gorm:"type:varchar(20);not null"`
	Priority     int             `gorm:"type:int;not null;index"`
	Condition    datatypes.JSON  `gorm:"type:jsonb"` // null - применяется всегда
	IsActive     bool            `gorm:"type:boolean;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Service Service `gorm:"foreignKey:ServiceID"`
}
