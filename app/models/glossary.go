package models

import (
	"time"

	"gorm.io/datatypes"
)

type Glossary struct {
	ID         uint                        `gorm:"primaryKey" json:"id"`
	Term       string                      `gorm:"uniqueIndex;size:191;not null" json:"term"`
	Definition string                      `gorm:"type:text;not null" json:"definition"`
	Tags       datatypes.JSONSlice[string] `json:"tags"`
	UserID     uint                        `gorm:"index;not null" json:"user_id"`
	User       User                        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}
