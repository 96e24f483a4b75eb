package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	evaluationdomain "github.com/strongfit/studio/internal/evaluation/domain"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) evaluationdomain.Repository {
	return &repo{db: db}
}

func (r *repo) List(ctx context.Context, filter evaluationdomain.ListFilter) ([]evaluationdomain.EvaluationWithAthlete, error) {
	query := r.db.WithContext(ctx).
		Table("evaluations AS e").
		Select("e.*, a.first_name AS athlete_first_name, a.last_name AS athlete_last_name").
		Joins("JOIN athletes a ON e.athlete_id = a.id")

	if filter.AthleteID != nil {
		query = query.Where("e.athlete_id = ?", *filter.AthleteID)
	}

	switch {
	case filter.Start != nil && filter.End != nil:
		query = query.Where("e.evaluation_date BETWEEN ? AND ?", *filter.Start, *filter.End)
	case filter.Start != nil:
		query = query.Where("e.evaluation_date >= ?", *filter.Start)
	case filter.End != nil:
		query = query.Where("e.evaluation_date <= ?", *filter.End)
	}

	var items []evaluationdomain.EvaluationWithAthlete
	err := query.
		Order("e.evaluation_date DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*evaluationdomain.Evaluation, error) {
	var e evaluationdomain.Evaluation
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&e).Error
	if err != nil {
		return nil, err
	}
	if e.ID == 0 {
		return nil, nil
	}
	return &e, nil
}

func (r *repo) Insert(ctx context.Context, e *evaluationdomain.Evaluation) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repo) Update(ctx context.Context, id snowflake.ID, assignments map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&evaluationdomain.Evaluation{}).
		Where("id = ?", id).
		Updates(assignments).Error
}

func (r *repo) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&evaluationdomain.Evaluation{}).Error
}
