package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Service interface {
	// ListSummaries computes one Summary per athlete for the given month,
	// ordered by athlete display name.
	ListSummaries(ctx context.Context, month time.Time) ([]Summary, error)

	ListAdjustments(ctx context.Context, month time.Time, athleteID string) ([]AdjustmentResponse, error)
	CreateAdjustment(ctx context.Context, req CreateAdjustmentRequest) (snowflake.ID, error)
	DeleteAdjustment(ctx context.Context, id string) error

	// MarkPaid upserts the payment row for (athlete, month). It records
	// whatever amount the caller supplies and never validates it against
	// the computed total due.
	MarkPaid(ctx context.Context, req MarkPaidRequest) error

	// GenerateCredits scans the month before targetMonth for cancelled
	// sessions and inserts one credit adjustment per session not already
	// credited. Safe to re-run; returns the count actually created.
	GenerateCredits(ctx context.Context, targetMonth time.Time, athleteID string) (int, error)
}

type CreateAdjustmentRequest struct {
	AthleteID        string          `json:"athlete_id"`
	AppliesMonth     time.Time       `json:"applies_month"`
	Amount           decimal.Decimal `json:"amount"`
	Reason           *string         `json:"reason"`
	RelatedSessionID *string         `json:"related_session_id"`
}

type MarkPaidRequest struct {
	AthleteID  string           `json:"athlete_id"`
	Month      time.Time        `json:"month"`
	PaidAmount *decimal.Decimal `json:"paid_amount"`
}

type AdjustmentResponse struct {
	ID               string          `json:"id"`
	AthleteID        string          `json:"athlete_id"`
	AppliesMonth     time.Time       `json:"applies_month"`
	Amount           decimal.Decimal `json:"amount"`
	Reason           *string         `json:"reason"`
	RelatedSessionID *string         `json:"related_session_id"`
	CreatedAt        time.Time       `json:"created_at"`
}

var (
	ErrAthleteNotFound     = errors.New("billing_athlete_not_found")
	ErrAdjustmentNotFound  = errors.New("adjustment_not_found")
	ErrInvalidAthleteID    = errors.New("invalid_billing_athlete_id")
	ErrInvalidAdjustmentID = errors.New("invalid_adjustment_id")
	ErrInvalidSessionID    = errors.New("invalid_related_session_id")
)
