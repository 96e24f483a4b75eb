package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/strongfit/studio/pkg/field"
)

type Service interface {
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Create(ctx context.Context, req CreateRequest) (snowflake.ID, error)
	Update(ctx context.Context, id string, req UpdateRequest) error
	Delete(ctx context.Context, id string) error
}

type ListRequest struct {
	AthleteID string
	Start     *time.Time
	End       *time.Time
}

type CreateRequest struct {
	AthleteID        string    `json:"athlete_id"`
	EvaluationDate   time.Time `json:"evaluation_date"`
	Weight           *float64  `json:"weight"`
	MusclePercentage *float64  `json:"muscle_percentage"`
	FatPercentage    *float64  `json:"fat_percentage"`
	BonePercentage   *float64  `json:"bone_percentage"`
	WaterPercentage  *float64  `json:"water_percentage"`
	Notes            *string   `json:"notes"`
}

type UpdateRequest struct {
	AthleteID        field.Opt[string]    `json:"athlete_id"`
	EvaluationDate   field.Opt[time.Time] `json:"evaluation_date"`
	Weight           field.Opt[float64]   `json:"weight"`
	MusclePercentage field.Opt[float64]   `json:"muscle_percentage"`
	FatPercentage    field.Opt[float64]   `json:"fat_percentage"`
	BonePercentage   field.Opt[float64]   `json:"bone_percentage"`
	WaterPercentage  field.Opt[float64]   `json:"water_percentage"`
	Notes            field.Opt[string]    `json:"notes"`
}

type Response struct {
	ID               string    `json:"id"`
	AthleteID        string    `json:"athlete_id"`
	EvaluationDate   time.Time `json:"evaluation_date"`
	Weight           *float64  `json:"weight"`
	MusclePercentage *float64  `json:"muscle_percentage"`
	FatPercentage    *float64  `json:"fat_percentage"`
	BonePercentage   *float64  `json:"bone_percentage"`
	WaterPercentage  *float64  `json:"water_percentage"`
	Notes            *string   `json:"notes"`
	CreatedDate      time.Time `json:"created_date"`

	AthleteFirstName string `json:"athlete_first_name"`
	AthleteLastName  string `json:"athlete_last_name"`
}

var (
	ErrNotFound       = errors.New("evaluation_not_found")
	ErrInvalidID      = errors.New("invalid_evaluation_id")
	ErrInvalidAthlete = errors.New("invalid_evaluation_athlete_id")
	ErrNothingToApply = errors.New("no_fields_to_update")
)
