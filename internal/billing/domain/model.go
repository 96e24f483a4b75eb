// Package domain contains the billing models: payment adjustments, payment
// status rows, and the computed monthly summary.
package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// PlanType is an athlete's billing mode. Input is lenient: values are
// normalized to lowercase, and anything unrecognized resolves to a zero base
// amount rather than an error.
type PlanType string

const (
	PlanMonthly  PlanType = "monthly"
	PlanOnDemand PlanType = "on_demand"
)

// NormalizePlanType lowercases and trims raw plan input. An empty value
// defaults to the monthly plan; unknown values are kept as-is and resolve to
// zero downstream.
func NormalizePlanType(raw string) PlanType {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return PlanMonthly
	}
	return PlanType(v)
}

// Adjustment is one signed credit (negative) or debit (positive) line applied
// to an athlete's month. The ledger is additive: entries are never replaced,
// and deleting one simply removes its contribution.
type Adjustment struct {
	ID               snowflake.ID    `gorm:"primaryKey"`
	AthleteID        snowflake.ID    `gorm:"not null;index"`
	AppliesMonth     time.Time       `gorm:"type:date;not null;index;uniqueIndex:ux_adjustments_session_month"`
	Amount           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Reason           *string         `gorm:"type:text"`
	RelatedSessionID *snowflake.ID   `gorm:"uniqueIndex:ux_adjustments_session_month"`
	CreatedAt        time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Adjustment) TableName() string { return "payment_adjustments" }

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Payment records whether an athlete's month has been settled. At most one
// row exists per (athlete_id, month); a missing row means pending.
type Payment struct {
	ID         snowflake.ID        `gorm:"primaryKey"`
	AthleteID  snowflake.ID        `gorm:"not null;uniqueIndex:ux_payments_athlete_month"`
	Month      time.Time           `gorm:"type:date;not null;uniqueIndex:ux_payments_athlete_month"`
	Status     PaymentStatus       `gorm:"type:text;not null;default:pending"`
	PaidAmount decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	PaidAt     *time.Time
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Payment) TableName() string { return "payments" }

// Summary is the computed billing projection for one athlete and one month.
// It is never persisted; every query recomputes it.
type Summary struct {
	AthleteID        string `json:"athlete_id"`
	AthleteFirstName string `json:"athlete_first_name"`
	AthleteLastName  string `json:"athlete_last_name"`

	PlanType            string           `json:"plan_type"`
	PlanSessionsPerWeek *int32           `json:"plan_sessions_per_week"`
	PlanMonthlyPrice    *decimal.Decimal `json:"plan_monthly_price"`
	PlanOnDemandPrice   *decimal.Decimal `json:"plan_on_demand_price"`

	BaseAmount       decimal.Decimal `json:"base_amount"`
	AdjustmentsTotal decimal.Decimal `json:"adjustments_total"`
	TotalDue         decimal.Decimal `json:"total_due"`

	Status     PaymentStatus    `json:"status"`
	PaidAmount *decimal.Decimal `json:"paid_amount"`
	PaidAt     *time.Time       `json:"paid_at"`
}
