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
	Complete(ctx context.Context, id string, completedData map[string]any) error
	Delete(ctx context.Context, id string) error
}

type ListRequest struct {
	Start     *time.Time
	End       *time.Time
	AthleteID string
	Status    string
}

type CreateRequest struct {
	AthleteID    string           `json:"athlete_id"`
	SessionName  string           `json:"session_name"`
	SessionDate  time.Time        `json:"session_date"`
	SessionTime  string           `json:"session_time"`
	Duration     *int32           `json:"duration"`
	SessionType  *string          `json:"session_type"`
	SessionNotes *string          `json:"session_notes"`
	Status       *string          `json:"status"`
	Exercises    []map[string]any `json:"exercises"`
}

type UpdateRequest struct {
	AthleteID    field.Opt[string]           `json:"athlete_id"`
	SessionName  field.Opt[string]           `json:"session_name"`
	SessionDate  field.Opt[time.Time]        `json:"session_date"`
	SessionTime  field.Opt[string]           `json:"session_time"`
	Duration     field.Opt[int32]            `json:"duration"`
	SessionType  field.Opt[string]           `json:"session_type"`
	SessionNotes field.Opt[string]           `json:"session_notes"`
	Status       field.Opt[string]           `json:"status"`
	Exercises    field.Opt[[]map[string]any] `json:"exercises"`
	CompletedAt  field.Opt[time.Time]        `json:"completed_at"`
}

type Response struct {
	ID           string           `json:"id"`
	AthleteID    string           `json:"athlete_id"`
	SessionName  string           `json:"session_name"`
	SessionDate  time.Time        `json:"session_date"`
	SessionTime  string           `json:"session_time"`
	Duration     *int32           `json:"duration"`
	SessionType  *string          `json:"session_type"`
	SessionNotes *string          `json:"session_notes"`
	Status       Status           `json:"status"`
	Exercises    []map[string]any `json:"exercises"`
	CompletedData map[string]any  `json:"completed_data,omitempty"`
	CompletedAt  *time.Time       `json:"completed_at"`
	CreatedDate  time.Time        `json:"created_date"`

	AthleteFirstName string `json:"athlete_first_name"`
	AthleteLastName  string `json:"athlete_last_name"`
}

var (
	ErrNotFound       = errors.New("training_session_not_found")
	ErrInvalidID      = errors.New("invalid_training_session_id")
	ErrInvalidAthlete = errors.New("invalid_session_athlete_id")
	ErrInvalidName    = errors.New("invalid_session_name")
	ErrInvalidTime    = errors.New("invalid_session_time")
	ErrNothingToApply = errors.New("no_fields_to_update")
)
