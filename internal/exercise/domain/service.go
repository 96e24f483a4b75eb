package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/strongfit/studio/pkg/field"
)

type Service interface {
	List(ctx context.Context) ([]Response, error)
	Create(ctx context.Context, req CreateRequest) (snowflake.ID, error)
	Update(ctx context.Context, id string, req UpdateRequest) error
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	Name         string  `json:"name"`
	Category     *string `json:"category"`
	MuscleGroups *string `json:"muscle_groups"`
	Equipment    *string `json:"equipment"`
	Difficulty   *string `json:"difficulty"`
	Description  *string `json:"description"`
	Instructions *string `json:"instructions"`
	VideoURL     *string `json:"video_url"`
}

type UpdateRequest struct {
	Name         field.Opt[string] `json:"name"`
	Category     field.Opt[string] `json:"category"`
	MuscleGroups field.Opt[string] `json:"muscle_groups"`
	Equipment    field.Opt[string] `json:"equipment"`
	Difficulty   field.Opt[string] `json:"difficulty"`
	Description  field.Opt[string] `json:"description"`
	Instructions field.Opt[string] `json:"instructions"`
	VideoURL     field.Opt[string] `json:"video_url"`
}

type Response struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     *string   `json:"category"`
	MuscleGroups *string   `json:"muscle_groups"`
	Equipment    *string   `json:"equipment"`
	Difficulty   *string   `json:"difficulty"`
	Description  *string   `json:"description"`
	Instructions *string   `json:"instructions"`
	VideoURL     *string   `json:"video_url"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	ErrNotFound       = errors.New("exercise_not_found")
	ErrInvalidID      = errors.New("invalid_exercise_id")
	ErrInvalidName    = errors.New("invalid_exercise_name")
	ErrNothingToApply = errors.New("no_fields_to_update")
)
