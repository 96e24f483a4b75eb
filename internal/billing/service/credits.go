package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	athletedomain "github.com/strongfit/studio/internal/athlete/domain"
	"github.com/strongfit/studio/internal/billing/domain"
	sessiondomain "github.com/strongfit/studio/internal/trainingsession/domain"
	"github.com/strongfit/studio/pkg/db"

	"go.uber.org/zap"
)

const creditReason = "credit for session cancelled in prior month"

// GenerateCredits inserts one negative adjustment into targetMonth for every
// session cancelled during the previous month that has no credit yet. The
// unique index on (applies_month, related_session_id) makes concurrent runs
// safe; a duplicate insert is treated as already-credited and skipped.
func (s *Service) GenerateCredits(ctx context.Context, targetMonth time.Time, athleteID string) (int, error) {
	targetMonth = domain.MonthStart(targetMonth)
	prevFirst, prevLast := domain.PrevMonthRange(targetMonth)

	var filter *snowflake.ID
	if strings.TrimSpace(athleteID) != "" {
		id, err := snowflake.ParseString(strings.TrimSpace(athleteID))
		if err != nil {
			return 0, domain.ErrInvalidAthleteID
		}
		filter = &id
	}

	cancelled, err := s.repo.ListSessionsByStatus(ctx, sessiondomain.StatusCancelled, prevFirst, prevLast, filter)
	if err != nil {
		return 0, err
	}

	athleteCache := map[snowflake.ID]*athletedomain.Athlete{}
	created := 0

	for i := range cancelled {
		session := &cancelled[i]

		exists, err := s.repo.AdjustmentExistsForSession(ctx, session.ID, targetMonth)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		athlete, ok := athleteCache[session.AthleteID]
		if !ok {
			athlete, err = s.repo.FindAthlete(ctx, session.AthleteID)
			if err != nil {
				return created, err
			}
			athleteCache[session.AthleteID] = athlete
		}
		if athlete == nil {
			continue
		}

		amount := cancellationCredit(athlete)
		if amount.IsZero() {
			continue
		}

		reason := creditReason
		sessionID := session.ID
		adjustment := domain.Adjustment{
			ID:               s.genID.Generate(),
			AthleteID:        athlete.ID,
			AppliesMonth:     targetMonth,
			Amount:           amount,
			Reason:           &reason,
			RelatedSessionID: &sessionID,
			CreatedAt:        s.clock.Now(ctx),
		}

		if err := s.repo.InsertAdjustment(ctx, &adjustment); err != nil {
			if db.IsDuplicateKeyErr(err) {
				continue
			}
			return created, err
		}
		created++
	}

	if created > 0 {
		s.log.Info("cancellation credits generated",
			zap.Time("month", targetMonth),
			zap.Int("created", created),
		)
	}
	return created, nil
}

// cancellationCredit computes the negative amount one cancelled session is
// worth under the athlete's plan. Monthly plans credit one session's share of
// the monthly price assuming four weeks per month; on-demand plans credit the
// full per-session price. Missing or zero prices yield zero, which the caller
// skips.
func cancellationCredit(a *athletedomain.Athlete) decimal.Decimal {
	switch domain.NormalizePlanType(a.PlanType) {
	case domain.PlanMonthly:
		if !a.PlanMonthlyPrice.Valid || a.PlanMonthlyPrice.Decimal.IsZero() {
			return decimal.Zero
		}
		if a.PlanSessionsPerWeek == nil || *a.PlanSessionsPerWeek <= 0 {
			return decimal.Zero
		}
		perMonth := decimal.NewFromInt32(*a.PlanSessionsPerWeek * 4)
		return a.PlanMonthlyPrice.Decimal.Div(perMonth).Neg()

	case domain.PlanOnDemand:
		if !a.PlanOnDemandPrice.Valid || a.PlanOnDemandPrice.Decimal.IsZero() {
			return decimal.Zero
		}
		return a.PlanOnDemandPrice.Decimal.Neg()

	default:
		return decimal.Zero
	}
}
