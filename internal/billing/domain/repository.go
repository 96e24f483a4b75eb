package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	athletedomain "github.com/strongfit/studio/internal/athlete/domain"
	sessiondomain "github.com/strongfit/studio/internal/trainingsession/domain"
)

// Repository bundles every read and write the billing engine performs,
// including its reads of athlete and training-session rows.
type Repository interface {
	// Athlete reads (billing-relevant fields only).
	ListAthletes(ctx context.Context) ([]athletedomain.Athlete, error)
	FindAthlete(ctx context.Context, id snowflake.ID) (*athletedomain.Athlete, error)

	// Session reads for rate resolution and credit generation.
	CountSessionsByStatus(ctx context.Context, athleteID snowflake.ID, from, to time.Time, status sessiondomain.Status) (int64, error)
	ListSessionsByStatus(ctx context.Context, status sessiondomain.Status, from, to time.Time, athleteID *snowflake.ID) ([]sessiondomain.TrainingSession, error)

	// Adjustment ledger.
	InsertAdjustment(ctx context.Context, a *Adjustment) error
	FindAdjustmentByID(ctx context.Context, id snowflake.ID) (*Adjustment, error)
	DeleteAdjustment(ctx context.Context, id snowflake.ID) error
	ListAdjustments(ctx context.Context, month time.Time, athleteID *snowflake.ID) ([]Adjustment, error)
	SumAdjustmentsByAthlete(ctx context.Context, month time.Time) (map[snowflake.ID]decimal.Decimal, error)
	AdjustmentExistsForSession(ctx context.Context, sessionID snowflake.ID, month time.Time) (bool, error)

	// Payment status rows.
	ListPaymentsByMonth(ctx context.Context, month time.Time) ([]Payment, error)
	UpsertPayment(ctx context.Context, p *Payment) error
}
