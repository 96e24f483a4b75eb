// Package domain contains the athlete model and service contracts.
package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Athlete is a registered member of the studio, including the billing plan
// fields the payment engine reads.
type Athlete struct {
	ID                snowflake.ID `gorm:"primaryKey"`
	FirstName         string       `gorm:"type:text;not null"`
	LastName          string       `gorm:"type:text;not null"`
	Email             *string      `gorm:"type:text;uniqueIndex"`
	Phone             *string      `gorm:"type:text"`
	BirthDate         *time.Time   `gorm:"type:date"`
	Gender            *string      `gorm:"type:text"`
	Weight            *float64
	Height            *float64
	FitnessLevel      *string `gorm:"type:text"`
	Goals             *string `gorm:"type:text"`
	MedicalConditions *string `gorm:"type:text"`
	Notes             *string `gorm:"type:text"`

	PlanType            string              `gorm:"type:text;not null;default:monthly"`
	PlanSessionsPerWeek *int32              `gorm:"column:plan_sessions_per_week"`
	PlanMonthlyPrice    decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	PlanOnDemandPrice   decimal.NullDecimal `gorm:"type:decimal(10,2)"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Athlete) TableName() string { return "athletes" }

// GoalsToList splits the stored comma-joined goals column into a list,
// dropping blank entries. Returns nil for an empty column.
func GoalsToList(value *string) []string {
	if value == nil {
		return nil
	}
	parts := strings.Split(*value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// GoalsToText joins a goals list into the comma-joined storage form.
// Returns nil when the list has no non-blank entries.
func GoalsToText(values []string) *string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	joined := strings.Join(out, ", ")
	return &joined
}
