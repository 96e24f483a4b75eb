package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	exercisedomain "github.com/strongfit/studio/internal/exercise/domain"
	"github.com/strongfit/studio/internal/exercise/repository"
	"github.com/strongfit/studio/pkg/field"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	repo  exercisedomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

func NewService(p ServiceParam) exercisedomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("exercise.service"),

		genID: p.GenID,
		repo:  repository.NewRepository(p.DB),
	}
}

func (s *Service) List(ctx context.Context) ([]exercisedomain.Response, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]exercisedomain.Response, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, req exercisedomain.CreateRequest) (snowflake.ID, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return 0, exercisedomain.ErrInvalidName
	}

	e := exercisedomain.Exercise{
		ID:           s.genID.Generate(),
		Name:         name,
		Category:     req.Category,
		MuscleGroups: req.MuscleGroups,
		Equipment:    req.Equipment,
		Difficulty:   req.Difficulty,
		Description:  req.Description,
		Instructions: req.Instructions,
		VideoURL:     req.VideoURL,
	}

	if err := s.repo.Insert(ctx, &e); err != nil {
		return 0, err
	}
	return e.ID, nil
}

func (s *Service) Update(ctx context.Context, id string, req exercisedomain.UpdateRequest) error {
	exerciseID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return exercisedomain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, exerciseID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exercisedomain.ErrNotFound
	}

	assignments := map[string]any{}
	if req.Name.IsSet() {
		v, ok := req.Name.Value()
		if !ok || strings.TrimSpace(v) == "" {
			return exercisedomain.ErrInvalidName
		}
		assignments["name"] = strings.TrimSpace(v)
	}
	setOpt(assignments, "category", req.Category)
	setOpt(assignments, "muscle_groups", req.MuscleGroups)
	setOpt(assignments, "equipment", req.Equipment)
	setOpt(assignments, "difficulty", req.Difficulty)
	setOpt(assignments, "description", req.Description)
	setOpt(assignments, "instructions", req.Instructions)
	setOpt(assignments, "video_url", req.VideoURL)

	if len(assignments) == 0 {
		return exercisedomain.ErrNothingToApply
	}

	return s.repo.Update(ctx, exerciseID, assignments)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	exerciseID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return exercisedomain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, exerciseID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exercisedomain.ErrNotFound
	}

	return s.repo.Delete(ctx, exerciseID)
}

func setOpt[T any](assignments map[string]any, column string, opt field.Opt[T]) {
	if !opt.IsSet() {
		return
	}
	if v, ok := opt.Value(); ok {
		assignments[column] = v
	} else {
		assignments[column] = nil
	}
}

func toResponse(e *exercisedomain.Exercise) exercisedomain.Response {
	return exercisedomain.Response{
		ID:           e.ID.String(),
		Name:         e.Name,
		Category:     e.Category,
		MuscleGroups: e.MuscleGroups,
		Equipment:    e.Equipment,
		Difficulty:   e.Difficulty,
		Description:  e.Description,
		Instructions: e.Instructions,
		VideoURL:     e.VideoURL,
		CreatedAt:    e.CreatedAt,
	}
}
