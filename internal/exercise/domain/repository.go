package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	List(ctx context.Context) ([]Exercise, error)
	FindByID(ctx context.Context, id snowflake.ID) (*Exercise, error)
	Insert(ctx context.Context, e *Exercise) error
	Update(ctx context.Context, id snowflake.ID, assignments map[string]any) error
	Delete(ctx context.Context, id snowflake.ID) error
}
