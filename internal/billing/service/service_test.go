package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	athletedomain "github.com/strongfit/studio/internal/athlete/domain"
	"github.com/strongfit/studio/internal/billing/domain"
	"github.com/strongfit/studio/internal/billing/repository"
	sessiondomain "github.com/strongfit/studio/internal/trainingsession/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now(ctx context.Context) time.Time {
	return c.t
}

func newTestService(t *testing.T) (*Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&athletedomain.Athlete{},
		&sessiondomain.TrainingSession{},
		&domain.Adjustment{},
		&domain.Payment{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := &Service{
		db:    db,
		log:   zap.NewNop(),
		clock: fixedClock{t: time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)},
		genID: node,
		repo:  repository.NewRepository(db),
	}
	return svc, db, node
}

func i32ptr(v int32) *int32 {
	return &v
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createAthlete(t *testing.T, db *gorm.DB, node *snowflake.Node, planType string, spw *int32, monthlyPrice, onDemandPrice *decimal.Decimal) athletedomain.Athlete {
	t.Helper()

	a := athletedomain.Athlete{
		ID:                  node.Generate(),
		FirstName:           "Test",
		LastName:            "Athlete",
		PlanType:            planType,
		PlanSessionsPerWeek: spw,
	}
	if monthlyPrice != nil {
		a.PlanMonthlyPrice = decimal.NewNullDecimal(*monthlyPrice)
	}
	if onDemandPrice != nil {
		a.PlanOnDemandPrice = decimal.NewNullDecimal(*onDemandPrice)
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func createSession(t *testing.T, db *gorm.DB, node *snowflake.Node, athleteID snowflake.ID, date time.Time, status sessiondomain.Status) sessiondomain.TrainingSession {
	t.Helper()

	ts := sessiondomain.TrainingSession{
		ID:          node.Generate(),
		AthleteID:   athleteID,
		SessionName: "Workout",
		SessionDate: date,
		SessionTime: "18:00:00",
		Status:      status,
		CreatedDate: date,
	}
	require.NoError(t, db.Create(&ts).Error)
	return ts
}

func summaryFor(t *testing.T, summaries []domain.Summary, athleteID snowflake.ID) domain.Summary {
	t.Helper()
	for _, s := range summaries {
		if s.AthleteID == athleteID.String() {
			return s
		}
	}
	t.Fatalf("no summary for athlete %s", athleteID)
	return domain.Summary{}
}

func TestMonthlyPlanBaseAmount(t *testing.T) {
	svc, db, node := newTestService(t)
	price := money("200.00")
	a := createAthlete(t, db, node, "monthly", i32ptr(4), &price, nil)

	summaries, err := svc.ListSummaries(context.Background(), time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	sum := summaryFor(t, summaries, a.ID)
	assert.True(t, sum.BaseAmount.Equal(money("200.00")), sum.BaseAmount.String())
	assert.True(t, sum.TotalDue.Equal(money("200.00")), sum.TotalDue.String())
	assert.Equal(t, domain.PaymentStatusPending, sum.Status)
}

func TestOnDemandBaseAmountCountsCompletedSessions(t *testing.T) {
	svc, db, node := newTestService(t)
	price := money("25.00")
	a := createAthlete(t, db, node, "on_demand", nil, nil, &price)

	june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 6; day++ {
		createSession(t, db, node, a.ID, june.AddDate(0, 0, day*2), sessiondomain.StatusCompleted)
	}
	// Neither of these counts toward the base.
	createSession(t, db, node, a.ID, june.AddDate(0, 0, 20), sessiondomain.StatusScheduled)
	createSession(t, db, node, a.ID, june.AddDate(0, 0, 21), sessiondomain.StatusCancelled)
	// Completed in another month.
	createSession(t, db, node, a.ID, june.AddDate(0, -1, 5), sessiondomain.StatusCompleted)

	summaries, err := svc.ListSummaries(context.Background(), june)
	require.NoError(t, err)

	sum := summaryFor(t, summaries, a.ID)
	assert.True(t, sum.BaseAmount.Equal(money("150.00")), sum.BaseAmount.String())
}

func TestOnDemandZeroPriceShortCircuits(t *testing.T) {
	svc, db, node := newTestService(t)
	zero := money("0.00")
	a := createAthlete(t, db, node, "on_demand", nil, nil, &zero)

	june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	createSession(t, db, node, a.ID, june.AddDate(0, 0, 3), sessiondomain.StatusCompleted)

	summaries, err := svc.ListSummaries(context.Background(), june)
	require.NoError(t, err)

	sum := summaryFor(t, summaries, a.ID)
	assert.True(t, sum.BaseAmount.IsZero(), sum.BaseAmount.String())
}

func TestUnknownPlanTypeResolvesZero(t *testing.T) {
	svc, db, node := newTestService(t)
	price := money("200.00")
	a := createAthlete(t, db, node, "premium", nil, &price, &price)

	summaries, err := svc.ListSummaries(context.Background(), time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	sum := summaryFor(t, summaries, a.ID)
	assert.True(t, sum.BaseAmount.IsZero(), sum.BaseAmount.String())
	assert.Equal(t, "premium", sum.PlanType)
}

func TestGenerateCreditsMonthlyPlan(t *testing.T) {
	svc, db, node := newTestService(t)
	price := money("200.00")
	a := createAthlete(t, db, node, "monthly", i32ptr(4), &price, nil)

	// Cancelled during May; credit lands in June.
	createSession(t, db, node, a.ID, time.Date(2025, time.May, 14, 0, 0, 0, 0, time.UTC), sessiondomain.StatusCancelled)

	june := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	created, err := svc.GenerateCredits(context.Background(), june, "")
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	adjustments, err := svc.ListAdjustments(context.Background(), june, "")
	require.NoError(t, err)
	require.Len(t, adjustments, 1)
	assert.True(t, adjustments[0].Amount.Equal(money("-12.50")), adjustments[0].Amount.String())
	require.NotNil(t, adjustments[0].Reason)
	assert.Equal(t, "credit for session cancelled in prior month", *adjustments[0].Reason)
	require.NotNil(t, adjustments[0].RelatedSessionID)

	summaries, err := svc.ListSummaries(context.Background(), june)
	require.NoError(t, err)
	sum := summaryFor(t, summaries, a.ID)
	assert.True(t, sum.AdjustmentsTotal.Equal(money("-12.50")), sum.AdjustmentsTotal.String())
	assert.True(t, sum.TotalDue.Equal(money("187.50")), sum.TotalDue.String())
}

func TestGenerateCreditsIsIdempotent(t *testing.T) {
	svc, db, node := newTestService(t)
	price := money("25.00")
	a := createAthlete(t, db, node, "on_demand", nil, nil, &price)

	createSession(t, db, node, a.ID, time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC), sessiondomain.StatusCancelled)

	june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.GenerateCredits(context.Background(), june, "")
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	createdAgain, err := svc.GenerateCredits(context.Background(), june, "")
	require.NoError(t, err)
	assert.Equal(t, 0, createdAgain)

	adjustments, err := svc.ListAdjustments(context.Background(), june, "")
	require.NoError(t, err)
	assert.Len(t, adjustments, 1)
	assert.True(t, adjustments[0].Amount.Equal(money("-25.00")), adjustments[0].Amount.String())
}

func TestGenerateCreditsSkipsZeroWorth(t *testing.T) {
	svc, db, node := newTestService(t)

	zero := money("0.00")
	free := createAthlete(t, db, node, "on_demand", nil, nil, &zero)
	createSession(t, db, node, free.ID, time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC), sessiondomain.StatusCancelled)

	// Monthly plan with no sessions_per_week cannot price one session.
	price := money("200.00")
	noSPW := createAthlete(t, db, node, "monthly", nil, &price, nil)
	createSession(t, db, node, noSPW.ID, time.Date(2025, time.May, 6, 0, 0, 0, 0, time.UTC), sessiondomain.StatusCancelled)

	june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.GenerateCredits(context.Background(), june, "")
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestGenerateCreditsFiltersByAthlete(t *testing.T) {
	svc, db, node := newTestService(t)
	price := money("25.00")
	a := createAthlete(t, db, node, "on_demand", nil, nil, &price)
	b := createAthlete(t, db, node, "on_demand", nil, nil, &price)

	createSession(t, db, node, a.ID, time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC), sessiondomain.StatusCancelled)
	createSession(t, db, node, b.ID, time.Date(2025, time.May, 6, 0, 0, 0, 0, time.UTC), sessiondomain.StatusCancelled)

	june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.GenerateCredits(context.Background(), june, a.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	adjustments, err := svc.ListAdjustments(context.Background(), june, "")
	require.NoError(t, err)
	require.Len(t, adjustments, 1)
	assert.Equal(t, a.ID.String(), adjustments[0].AthleteID)
}

func TestTotalDueCanGoNegative(t *testing.T) {
	svc, db, node := newTestService(t)
	price := money("200.00")
	a := createAthlete(t, db, node, "monthly", i32ptr(4), &price, nil)

	june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateAdjustment(context.Background(), domain.CreateAdjustmentRequest{
		AthleteID:    a.ID.String(),
		AppliesMonth: june,
		Amount:       money("-300.00"),
	})
	require.NoError(t, err)

	summaries, err := svc.ListSummaries(context.Background(), june)
	require.NoError(t, err)
	sum := summaryFor(t, summaries, a.ID)
	assert.True(t, sum.TotalDue.Equal(money("-100.00")), sum.TotalDue.String())
}

func TestMarkPaidIsIdempotentUpsert(t *testing.T) {
	svc, db, node := newTestService(t)
	price := money("200.00")
	a := createAthlete(t, db, node, "monthly", i32ptr(4), &price, nil)

	june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	first := money("200.00")
	require.NoError(t, svc.MarkPaid(context.Background(), domain.MarkPaidRequest{
		AthleteID:  a.ID.String(),
		Month:      june,
		PaidAmount: &first,
	}))

	second := money("187.50")
	require.NoError(t, svc.MarkPaid(context.Background(), domain.MarkPaidRequest{
		AthleteID:  a.ID.String(),
		Month:      time.Date(2025, time.June, 28, 0, 0, 0, 0, time.UTC),
		PaidAmount: &second,
	}))

	var rows []domain.Payment
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.PaymentStatusPaid, rows[0].Status)
	require.True(t, rows[0].PaidAmount.Valid)
	assert.True(t, rows[0].PaidAmount.Decimal.Equal(money("187.50")), rows[0].PaidAmount.Decimal.String())

	summaries, err := svc.ListSummaries(context.Background(), june)
	require.NoError(t, err)
	sum := summaryFor(t, summaries, a.ID)
	assert.Equal(t, domain.PaymentStatusPaid, sum.Status)
}

func TestMonthInputInsensitivity(t *testing.T) {
	svc, db, node := newTestService(t)
	price := money("200.00")
	a := createAthlete(t, db, node, "monthly", i32ptr(4), &price, nil)

	_, err := svc.CreateAdjustment(context.Background(), domain.CreateAdjustmentRequest{
		AthleteID:    a.ID.String(),
		AppliesMonth: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		Amount:       money("10.00"),
	})
	require.NoError(t, err)

	for _, day := range []int{1, 15, 30} {
		month := time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
		summaries, err := svc.ListSummaries(context.Background(), month)
		require.NoError(t, err)
		sum := summaryFor(t, summaries, a.ID)
		assert.True(t, sum.TotalDue.Equal(money("210.00")), "day %d: %s", day, sum.TotalDue.String())
	}
}

func TestDeleteAdjustmentRemovesContribution(t *testing.T) {
	svc, db, node := newTestService(t)
	price := money("200.00")
	a := createAthlete(t, db, node, "monthly", i32ptr(4), &price, nil)

	june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	id, err := svc.CreateAdjustment(context.Background(), domain.CreateAdjustmentRequest{
		AthleteID:    a.ID.String(),
		AppliesMonth: june,
		Amount:       money("50.00"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAdjustment(context.Background(), id.String()))
	assert.ErrorIs(t, svc.DeleteAdjustment(context.Background(), id.String()), domain.ErrAdjustmentNotFound)

	summaries, err := svc.ListSummaries(context.Background(), june)
	require.NoError(t, err)
	sum := summaryFor(t, summaries, a.ID)
	assert.True(t, sum.TotalDue.Equal(money("200.00")), sum.TotalDue.String())
}

func TestCreateAdjustmentUnknownAthlete(t *testing.T) {
	svc, _, node := newTestService(t)

	_, err := svc.CreateAdjustment(context.Background(), domain.CreateAdjustmentRequest{
		AthleteID:    node.Generate().String(),
		AppliesMonth: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		Amount:       money("10.00"),
	})
	assert.ErrorIs(t, err, domain.ErrAthleteNotFound)
}
