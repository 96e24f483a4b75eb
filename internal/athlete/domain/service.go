package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/strongfit/studio/pkg/field"
)

type Service interface {
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Create(ctx context.Context, req CreateRequest) (snowflake.ID, error)
	Update(ctx context.Context, id string, req UpdateRequest) error
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Email             *string    `json:"email"`
	Phone             *string    `json:"phone"`
	BirthDate         *time.Time `json:"birth_date"`
	Gender            *string    `json:"gender"`
	Weight            *float64   `json:"weight"`
	Height            *float64   `json:"height"`
	FitnessLevel      *string    `json:"fitness_level"`
	Goals             []string   `json:"goals"`
	MedicalConditions *string    `json:"medical_conditions"`
	Notes             *string    `json:"notes"`

	PlanType            *string          `json:"plan_type"`
	PlanSessionsPerWeek *int32           `json:"plan_sessions_per_week"`
	PlanMonthlyPrice    *decimal.Decimal `json:"plan_monthly_price"`
	PlanOnDemandPrice   *decimal.Decimal `json:"plan_on_demand_price"`
}

// UpdateRequest is a partial update: only fields present in the payload are
// written, and an explicit null clears the column.
type UpdateRequest struct {
	FirstName         field.Opt[string]    `json:"first_name"`
	LastName          field.Opt[string]    `json:"last_name"`
	Email             field.Opt[string]    `json:"email"`
	Phone             field.Opt[string]    `json:"phone"`
	BirthDate         field.Opt[time.Time] `json:"birth_date"`
	Gender            field.Opt[string]    `json:"gender"`
	Weight            field.Opt[float64]   `json:"weight"`
	Height            field.Opt[float64]   `json:"height"`
	FitnessLevel      field.Opt[string]    `json:"fitness_level"`
	Goals             field.Opt[[]string]  `json:"goals"`
	MedicalConditions field.Opt[string]    `json:"medical_conditions"`
	Notes             field.Opt[string]    `json:"notes"`

	PlanType            field.Opt[string]          `json:"plan_type"`
	PlanSessionsPerWeek field.Opt[int32]           `json:"plan_sessions_per_week"`
	PlanMonthlyPrice    field.Opt[decimal.Decimal] `json:"plan_monthly_price"`
	PlanOnDemandPrice   field.Opt[decimal.Decimal] `json:"plan_on_demand_price"`
}

type Response struct {
	ID                string     `json:"id"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Email             *string    `json:"email"`
	Phone             *string    `json:"phone"`
	BirthDate         *time.Time `json:"birth_date"`
	Gender            *string    `json:"gender"`
	Weight            *float64   `json:"weight"`
	Height            *float64   `json:"height"`
	FitnessLevel      *string    `json:"fitness_level"`
	Goals             []string   `json:"goals"`
	MedicalConditions *string    `json:"medical_conditions"`
	Notes             *string    `json:"notes"`

	PlanType            string           `json:"plan_type"`
	PlanSessionsPerWeek *int32           `json:"plan_sessions_per_week"`
	PlanMonthlyPrice    *decimal.Decimal `json:"plan_monthly_price"`
	PlanOnDemandPrice   *decimal.Decimal `json:"plan_on_demand_price"`

	CreatedAt time.Time `json:"created_at"`
}

var (
	ErrNotFound       = errors.New("athlete_not_found")
	ErrInvalidID      = errors.New("invalid_athlete_id")
	ErrInvalidName    = errors.New("invalid_athlete_name")
	ErrNothingToApply = errors.New("no_fields_to_update")
)
