package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	athletedomain "github.com/strongfit/studio/internal/athlete/domain"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) athletedomain.Repository {
	return &repo{db: db}
}

func (r *repo) List(ctx context.Context) ([]athletedomain.Athlete, error) {
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

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*athletedomain.Athlete, error) {
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

func (r *repo) Insert(ctx context.Context, a *athletedomain.Athlete) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repo) Update(ctx context.Context, id snowflake.ID, assignments map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&athletedomain.Athlete{}).
		Where("id = ?", id).
		Updates(assignments).Error
}

func (r *repo) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&athletedomain.Athlete{}).Error
}
