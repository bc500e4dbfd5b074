package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	Username     string            `gorm:"uniqueIndex;size:191;not null" json:"username"`
	Email        string            `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string            `gorm:"size:255;not null" json:"-"`
	Progress     datatypes.JSONMap `json:"progress"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
