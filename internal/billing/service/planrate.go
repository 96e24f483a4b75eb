package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	athletedomain "github.com/strongfit/studio/internal/athlete/domain"
	"github.com/strongfit/studio/internal/billing/domain"
	sessiondomain "github.com/strongfit/studio/internal/trainingsession/domain"
)

// baseAmount resolves an athlete's base charge for a month from their plan.
// Monthly plans charge the flat monthly price. On-demand plans charge the
// per-session price times the number of completed sessions in the month,
// skipping the session count entirely when the price is zero or unset.
// Unknown plan types resolve to zero.
func (s *Service) baseAmount(ctx context.Context, a *athletedomain.Athlete, month time.Time) (decimal.Decimal, error) {
	switch domain.NormalizePlanType(a.PlanType) {
	case domain.PlanMonthly:
		if !a.PlanMonthlyPrice.Valid {
			return decimal.Zero, nil
		}
		return a.PlanMonthlyPrice.Decimal, nil

	case domain.PlanOnDemand:
		if !a.PlanOnDemandPrice.Valid || a.PlanOnDemandPrice.Decimal.IsZero() {
			return decimal.Zero, nil
		}
		first, last := domain.MonthRange(month)
		count, err := s.repo.CountSessionsByStatus(ctx, a.ID, first, last, sessiondomain.StatusCompleted)
		if err != nil {
			return decimal.Zero, err
		}
		return a.PlanOnDemandPrice.Decimal.Mul(decimal.NewFromInt(count)), nil

	default:
		return decimal.Zero, nil
	}
}
