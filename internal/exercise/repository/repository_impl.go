package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	exercisedomain "github.com/strongfit/studio/internal/exercise/domain"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) exercisedomain.Repository {
	return &repo{db: db}
}

func (r *repo) List(ctx context.Context) ([]exercisedomain.Exercise, error) {
	var items []exercisedomain.Exercise
	err := r.db.WithContext(ctx).
		Model(&exercisedomain.Exercise{}).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*exercisedomain.Exercise, error) {
	var e exercisedomain.Exercise
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

func (r *repo) Insert(ctx context.Context, e *exercisedomain.Exercise) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repo) Update(ctx context.Context, id snowflake.ID, assignments map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&exercisedomain.Exercise{}).
		Where("id = ?", id).
		Updates(assignments).Error
}

func (r *repo) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&exercisedomain.Exercise{}).Error
}
