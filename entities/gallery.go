package entities

import (
	"time"

	"github.com/google/uuid"
)

type GalleryImage struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Filename   string    `gorm:"not null" json:"filename"`
	Path       string    `gorm:"not null" json:"path"`
	Caption    string    `gorm:"default:''" json:"caption"`
	UploadedAt time.Time `json:"uploadedAt"`
}
