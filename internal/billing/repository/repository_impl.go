package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	athletedomain "github.com/strongfit/studio/internal/athlete/domain"
	"github.com/strongfit/studio/internal/billing/domain"
	sessiondomain "github.com/strongfit/studio/internal/trainingsession/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) ListAthletes(ctx context.Context) ([]athletedomain.Athlete, error) {
	var items []athletedomain.Athlete
	err := r.db.WithContext(ctx).
		Model(&athletedomain.Athlete{}).
		Order("first_name ASC, last_name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindAthlete(ctx context.Context, id snowflake.ID) (*athletedomain.Athlete, error) {
	var a athletedomain.Athlete
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&a).Error
	if err != nil {
		return nil, err
	}
	if a.ID == 0 {
		return nil, nil
	}
	return &a, nil
}

func (r *repo) CountSessionsByStatus(ctx context.Context, athleteID snowflake.ID, from, to time.Time, status sessiondomain.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&sessiondomain.TrainingSession{}).
		Where("athlete_id = ?", athleteID).
		Where("session_date BETWEEN ? AND ?", from, to).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repo) ListSessionsByStatus(ctx context.Context, status sessiondomain.Status, from, to time.Time, athleteID *snowflake.ID) ([]sessiondomain.TrainingSession, error) {
	query := r.db.WithContext(ctx).
		Model(&sessiondomain.TrainingSession{}).
		Where("status = ?", status).
		Where("session_date BETWEEN ? AND ?", from, to)

	if athleteID != nil {
		query = query.Where("athlete_id = ?", *athleteID)
	}

	var items []sessiondomain.TrainingSession
	err := query.
		Order("session_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) InsertAdjustment(ctx context.Context, a *domain.Adjustment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repo) FindAdjustmentByID(ctx context.Context, id snowflake.ID) (*domain.Adjustment, error) {
	var a domain.Adjustment
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&a).Error
	if err != nil {
		return nil, err
	}
	if a.ID == 0 {
		return nil, nil
	}
	return &a, nil
}

func (r *repo) DeleteAdjustment(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Adjustment{}).Error
}

func (r *repo) ListAdjustments(ctx context.Context, month time.Time, athleteID *snowflake.ID) ([]domain.Adjustment, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.Adjustment{}).
		Where("applies_month = ?", month)

	if athleteID != nil {
		query = query.Where("athlete_id = ?", *athleteID)
	}

	var items []domain.Adjustment
	err := query.
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) SumAdjustmentsByAthlete(ctx context.Context, month time.Time) (map[snowflake.ID]decimal.Decimal, error) {
	var rows []struct {
		AthleteID snowflake.ID
		Total     decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Adjustment{}).
		Select("athlete_id, SUM(amount) AS total").
		Where("applies_month = ?", month).
		Group("athlete_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[snowflake.ID]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.AthleteID] = row.Total
	}
	return totals, nil
}

func (r *repo) AdjustmentExistsForSession(ctx context.Context, sessionID snowflake.ID, month time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Adjustment{}).
		Where("related_session_id = ?", sessionID).
		Where("applies_month = ?", month).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) ListPaymentsByMonth(ctx context.Context, month time.Time) ([]domain.Payment, error) {
	var items []domain.Payment
	err := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("month = ?", month).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpsertPayment(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "athlete_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "paid_amount", "paid_at"}),
		}).
		Create(p).Error
}
