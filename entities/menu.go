package entities

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	DisplayOrder int       `json:"displayOrder"`
}

type MenuItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null" json:"-"`
	Price       float64   `gorm:"default:0" json:"price"`
	Description string    `gorm:"default:''" json:"description"`
	IsSpecial   bool      `gorm:"default:false" json:"isSpecial"`
	Image       string    `gorm:"default:''" json:"image"`
	CreatedAt   time.Time `json:"createdAt"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category"`
}
