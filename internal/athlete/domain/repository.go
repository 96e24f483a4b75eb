package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	List(ctx context.Context) ([]Athlete, error)
	FindByID(ctx context.Context, id snowflake.ID) (*Athlete, error)
	Insert(ctx context.Context, a *Athlete) error
	Update(ctx context.Context, id snowflake.ID, assignments map[string]any) error
	Delete(ctx context.Context, id snowflake.ID) error
}
