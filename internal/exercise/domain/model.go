// Package domain contains the exercise library model and contracts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Exercise is one entry in the studio's exercise library.
type Exercise struct {
	ID           snowflake.ID `gorm:"primaryKey"`
	Name         string       `gorm:"type:text;not null"`
	Category     *string      `gorm:"type:text"`
	MuscleGroups *string      `gorm:"type:text"`
	Equipment    *string      `gorm:"type:text"`
	Difficulty   *string      `gorm:"type:text"`
	Description  *string      `gorm:"type:text"`
	Instructions *string      `gorm:"type:text"`
	VideoURL     *string      `gorm:"column:video_url;type:text"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Exercise) TableName() string { return "exercises" }
