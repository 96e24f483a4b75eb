package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	sessiondomain "github.com/strongfit/studio/internal/trainingsession/domain"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) sessiondomain.Repository {
	return &repo{db: db}
}

func (r *repo) List(ctx context.Context, filter sessiondomain.ListFilter) ([]sessiondomain.SessionWithAthlete, error) {
	query := r.db.WithContext(ctx).
		Table("training_sessions AS ts").
		Select("ts.*, a.first_name AS athlete_first_name, a.last_name AS athlete_last_name").
		Joins("JOIN athletes a ON ts.athlete_id = a.id")

	switch {
	case filter.Start != nil && filter.End != nil:
		query = query.Where("ts.session_date BETWEEN ? AND ?", *filter.Start, *filter.End)
	case filter.Start != nil:
		query = query.Where("ts.session_date >= ?", *filter.Start)
	case filter.End != nil:
		query = query.Where("ts.session_date <= ?", *filter.End)
	}

	if filter.AthleteID != nil {
		query = query.Where("ts.athlete_id = ?", *filter.AthleteID)
	}
	if filter.Status != nil {
		query = query.Where("ts.status = ?", *filter.Status)
	}

	var items []sessiondomain.SessionWithAthlete
	err := query.
		Order("ts.session_date ASC, ts.session_time ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*sessiondomain.TrainingSession, error) {
	var ts sessiondomain.TrainingSession
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&ts).Error
	if err != nil {
		return nil, err
	}
	if ts.ID == 0 {
		return nil, nil
	}
	return &ts, nil
}

func (r *repo) Insert(ctx context.Context, ts *sessiondomain.TrainingSession) error {
	return r.db.WithContext(ctx).Create(ts).Error
}

func (r *repo) Update(ctx context.Context, id snowflake.ID, assignments map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&sessiondomain.TrainingSession{}).
		Where("id = ?", id).
		Updates(assignments).Error
}

func (r *repo) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&sessiondomain.TrainingSession{}).Error
}

func (r *repo) CountByStatus(ctx context.Context, athleteID snowflake.ID, from, to time.Time, status sessiondomain.Status) (int64, error) {
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

func (r *repo) ListByStatus(ctx context.Context, status sessiondomain.Status, from, to time.Time, athleteID *snowflake.ID) ([]sessiondomain.TrainingSession, error) {
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
