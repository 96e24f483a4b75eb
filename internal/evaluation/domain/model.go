// Package domain contains the body-composition evaluation model and contracts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Evaluation is one body-composition measurement for an athlete.
type Evaluation struct {
	ID               snowflake.ID `gorm:"primaryKey"`
	AthleteID        snowflake.ID `gorm:"not null;index"`
	EvaluationDate   time.Time    `gorm:"type:date;not null"`
	Weight           *float64
	MusclePercentage *float64
	FatPercentage    *float64
	BonePercentage   *float64
	WaterPercentage  *float64
	Notes            *string   `gorm:"type:text"`
	CreatedDate      time.Time `gorm:"type:date;not null;default:CURRENT_DATE"`
}

// TableName sets the database table name.
func (Evaluation) TableName() string { return "evaluations" }

// EvaluationWithAthlete is the list projection joined with the owning
// athlete's display name.
type EvaluationWithAthlete struct {
	Evaluation
	AthleteFirstName string
	AthleteLastName  string
}
