// Package domain contains the training session model and contracts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Status is the lifecycle state of a training session. Stored and matched
// case-sensitively; billing queries compare against the exact literals.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// TrainingSession is a scheduled (or run) workout for one athlete. The
// exercises column holds the planned exercise list as JSON; completed_data
// holds whatever the runner recorded when the session was completed.
type TrainingSession struct {
	ID           snowflake.ID       `gorm:"primaryKey"`
	AthleteID    snowflake.ID       `gorm:"not null;index"`
	SessionName  string             `gorm:"type:text;not null"`
	SessionDate  time.Time          `gorm:"type:date;not null;index"`
	SessionTime  string             `gorm:"type:text;not null"`
	Duration     *int32             // minutes
	SessionType  *string            `gorm:"type:text"`
	SessionNotes *string            `gorm:"type:text"`
	Status       Status             `gorm:"type:text;not null;default:Scheduled;index"`
	Exercises    datatypes.JSON     `gorm:"type:json"`
	CompletedData datatypes.JSONMap `gorm:"type:json"`
	CompletedAt  *time.Time
	CreatedDate  time.Time `gorm:"type:date;not null;default:CURRENT_DATE"`
}

// TableName sets the database table name.
func (TrainingSession) TableName() string { return "training_sessions" }

// SessionWithAthlete is the list projection joined with the owning
// athlete's display name.
type SessionWithAthlete struct {
	TrainingSession
	AthleteFirstName string
	AthleteLastName  string
}
