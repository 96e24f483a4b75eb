package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

// ListFilter narrows a session listing. Nil bounds leave that side of the
// date range open.
type ListFilter struct {
	Start     *time.Time
	End       *time.Time
	AthleteID *snowflake.ID
	Status    *Status
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]SessionWithAthlete, error)
	FindByID(ctx context.Context, id snowflake.ID) (*TrainingSession, error)
	Insert(ctx context.Context, ts *TrainingSession) error
	Update(ctx context.Context, id snowflake.ID, assignments map[string]any) error
	Delete(ctx context.Context, id snowflake.ID) error

	// CountByStatus returns how many of an athlete's sessions in the
	// inclusive date range carry the given status.
	CountByStatus(ctx context.Context, athleteID snowflake.ID, from, to time.Time, status Status) (int64, error)

	// ListByStatus returns sessions with the given status in the inclusive
	// date range, optionally scoped to one athlete, ordered by date asc.
	ListByStatus(ctx context.Context, status Status, from, to time.Time, athleteID *snowflake.ID) ([]TrainingSession, error)
}
