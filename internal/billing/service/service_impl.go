package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/strongfit/studio/internal/billing/domain"
	"github.com/strongfit/studio/internal/billing/repository"
	"github.com/strongfit/studio/internal/clock"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock

	genID *snowflake.Node
	repo  domain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("billing.service"),
		clock: p.Clock,

		genID: p.GenID,
		repo:  repository.NewRepository(p.DB),
	}
}

func (s *Service) ListSummaries(ctx context.Context, month time.Time) ([]domain.Summary, error) {
	month = domain.MonthStart(month)

	athletes, err := s.repo.ListAthletes(ctx)
	if err != nil {
		return nil, err
	}

	adjustments, err := s.repo.SumAdjustmentsByAthlete(ctx, month)
	if err != nil {
		return nil, err
	}

	payments, err := s.repo.ListPaymentsByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	paymentByAthlete := make(map[snowflake.ID]domain.Payment, len(payments))
	for _, p := range payments {
		paymentByAthlete[p.AthleteID] = p
	}

	out := make([]domain.Summary, 0, len(athletes))
	for i := range athletes {
		a := &athletes[i]

		base, err := s.baseAmount(ctx, a, month)
		if err != nil {
			return nil, err
		}

		adjusted := adjustments[a.ID]
		sum := domain.Summary{
			AthleteID:        a.ID.String(),
			AthleteFirstName: a.FirstName,
			AthleteLastName:  a.LastName,

			PlanType:            string(domain.NormalizePlanType(a.PlanType)),
			PlanSessionsPerWeek: a.PlanSessionsPerWeek,
			PlanMonthlyPrice:    nullDecimalPtr(a.PlanMonthlyPrice),
			PlanOnDemandPrice:   nullDecimalPtr(a.PlanOnDemandPrice),

			BaseAmount:       base,
			AdjustmentsTotal: adjusted,
			TotalDue:         base.Add(adjusted),

			Status: domain.PaymentStatusPending,
		}

		if p, ok := paymentByAthlete[a.ID]; ok {
			sum.Status = p.Status
			sum.PaidAmount = nullDecimalPtr(p.PaidAmount)
			sum.PaidAt = p.PaidAt
		}

		out = append(out, sum)
	}
	return out, nil
}

func (s *Service) ListAdjustments(ctx context.Context, month time.Time, athleteID string) ([]domain.AdjustmentResponse, error) {
	month = domain.MonthStart(month)

	var filter *snowflake.ID
	if strings.TrimSpace(athleteID) != "" {
		id, err := snowflake.ParseString(strings.TrimSpace(athleteID))
		if err != nil {
			return nil, domain.ErrInvalidAthleteID
		}
		filter = &id
	}

	items, err := s.repo.ListAdjustments(ctx, month, filter)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AdjustmentResponse, 0, len(items))
	for i := range items {
		out = append(out, toAdjustmentResponse(&items[i]))
	}
	return out, nil
}

func (s *Service) CreateAdjustment(ctx context.Context, req domain.CreateAdjustmentRequest) (snowflake.ID, error) {
	athleteID, err := snowflake.ParseString(strings.TrimSpace(req.AthleteID))
	if err != nil {
		return 0, domain.ErrInvalidAthleteID
	}

	athlete, err := s.repo.FindAthlete(ctx, athleteID)
	if err != nil {
		return 0, err
	}
	if athlete == nil {
		return 0, domain.ErrAthleteNotFound
	}

	adjustment := domain.Adjustment{
		ID:           s.genID.Generate(),
		AthleteID:    athleteID,
		AppliesMonth: domain.MonthStart(req.AppliesMonth),
		Amount:       req.Amount,
		Reason:       req.Reason,
		CreatedAt:    s.clock.Now(ctx),
	}

	if req.RelatedSessionID != nil && strings.TrimSpace(*req.RelatedSessionID) != "" {
		sessionID, err := snowflake.ParseString(strings.TrimSpace(*req.RelatedSessionID))
		if err != nil {
			return 0, domain.ErrInvalidSessionID
		}
		adjustment.RelatedSessionID = &sessionID
	}

	if err := s.repo.InsertAdjustment(ctx, &adjustment); err != nil {
		return 0, err
	}

	s.log.Info("adjustment created",
		zap.String("adjustment_id", adjustment.ID.String()),
		zap.String("athlete_id", athleteID.String()),
		zap.String("amount", adjustment.Amount.String()),
	)
	return adjustment.ID, nil
}

func (s *Service) DeleteAdjustment(ctx context.Context, id string) error {
	adjustmentID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidAdjustmentID
	}

	existing, err := s.repo.FindAdjustmentByID(ctx, adjustmentID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrAdjustmentNotFound
	}

	return s.repo.DeleteAdjustment(ctx, adjustmentID)
}

func (s *Service) MarkPaid(ctx context.Context, req domain.MarkPaidRequest) error {
	athleteID, err := snowflake.ParseString(strings.TrimSpace(req.AthleteID))
	if err != nil {
		return domain.ErrInvalidAthleteID
	}

	athlete, err := s.repo.FindAthlete(ctx, athleteID)
	if err != nil {
		return err
	}
	if athlete == nil {
		return domain.ErrAthleteNotFound
	}

	now := s.clock.Now(ctx)
	payment := domain.Payment{
		ID:        s.genID.Generate(),
		AthleteID: athleteID,
		Month:     domain.MonthStart(req.Month),
		Status:    domain.PaymentStatusPaid,
		PaidAt:    &now,
		CreatedAt: now,
	}
	if req.PaidAmount != nil {
		payment.PaidAmount = decimal.NewNullDecimal(*req.PaidAmount)
	}

	if err := s.repo.UpsertPayment(ctx, &payment); err != nil {
		return err
	}

	s.log.Info("payment marked paid",
		zap.String("athlete_id", athleteID.String()),
		zap.Time("month", payment.Month),
	)
	return nil
}

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func toAdjustmentResponse(a *domain.Adjustment) domain.AdjustmentResponse {
	resp := domain.AdjustmentResponse{
		ID:           a.ID.String(),
		AthleteID:    a.AthleteID.String(),
		AppliesMonth: a.AppliesMonth,
		Amount:       a.Amount,
		Reason:       a.Reason,
		CreatedAt:    a.CreatedAt,
	}
	if a.RelatedSessionID != nil {
		id := a.RelatedSessionID.String()
		resp.RelatedSessionID = &id
	}
	return resp
}
