package entities

import (
	"time"

	"github.com/google/uuid"
)

// Settings is a logical singleton. Readers take the first row and writers
// upsert it; absence is treated as the default (prices shown).
type Settings struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ShowPrices bool      `gorm:"default:true" json:"showPrices"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
