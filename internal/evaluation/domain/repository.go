package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

type ListFilter struct {
	AthleteID *snowflake.ID
	Start     *time.Time
	End       *time.Time
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]EvaluationWithAthlete, error)
	FindByID(ctx context.Context, id snowflake.ID) (*Evaluation, error)
	Insert(ctx context.Context, e *Evaluation) error
	Update(ctx context.Context, id snowflake.ID, assignments map[string]any) error
	Delete(ctx context.Context, id snowflake.ID) error
}
