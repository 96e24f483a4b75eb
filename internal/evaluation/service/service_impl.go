package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/strongfit/studio/internal/clock"
	evaluationdomain "github.com/strongfit/studio/internal/evaluation/domain"
	"github.com/strongfit/studio/internal/evaluation/repository"
	"github.com/strongfit/studio/pkg/field"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock

	genID *snowflake.Node
	repo  evaluationdomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
}

func NewService(p ServiceParam) evaluationdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("evaluation.service"),
		clock: p.Clock,

		genID: p.GenID,
		repo:  repository.NewRepository(p.DB),
	}
}

func (s *Service) List(ctx context.Context, req evaluationdomain.ListRequest) ([]evaluationdomain.Response, error) {
	filter := evaluationdomain.ListFilter{
		Start: req.Start,
		End:   req.End,
	}
	if strings.TrimSpace(req.AthleteID) != "" {
		id, err := snowflake.ParseString(strings.TrimSpace(req.AthleteID))
		if err != nil {
			return nil, evaluationdomain.ErrInvalidAthlete
		}
		filter.AthleteID = &id
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]evaluationdomain.Response, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, req evaluationdomain.CreateRequest) (snowflake.ID, error) {
	athleteID, err := snowflake.ParseString(strings.TrimSpace(req.AthleteID))
	if err != nil {
		return 0, evaluationdomain.ErrInvalidAthlete
	}

	e := evaluationdomain.Evaluation{
		ID:               s.genID.Generate(),
		AthleteID:        athleteID,
		EvaluationDate:   dateOnly(req.EvaluationDate),
		Weight:           req.Weight,
		MusclePercentage: req.MusclePercentage,
		FatPercentage:    req.FatPercentage,
		BonePercentage:   req.BonePercentage,
		WaterPercentage:  req.WaterPercentage,
		Notes:            req.Notes,
		CreatedDate:      dateOnly(s.clock.Now(ctx)),
	}

	if err := s.repo.Insert(ctx, &e); err != nil {
		return 0, err
	}
	return e.ID, nil
}

func (s *Service) Update(ctx context.Context, id string, req evaluationdomain.UpdateRequest) error {
	evaluationID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return evaluationdomain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, evaluationID)
	if err != nil {
		return err
	}
	if existing == nil {
		return evaluationdomain.ErrNotFound
	}

	assignments := map[string]any{}

	if req.AthleteID.IsSet() {
		v, ok := req.AthleteID.Value()
		if !ok {
			return evaluationdomain.ErrInvalidAthlete
		}
		athleteID, err := snowflake.ParseString(strings.TrimSpace(v))
		if err != nil {
			return evaluationdomain.ErrInvalidAthlete
		}
		assignments["athlete_id"] = athleteID
	}
	if req.EvaluationDate.IsSet() {
		if v, ok := req.EvaluationDate.Value(); ok {
			assignments["evaluation_date"] = dateOnly(v)
		}
	}
	setOpt(assignments, "weight", req.Weight)
	setOpt(assignments, "muscle_percentage", req.MusclePercentage)
	setOpt(assignments, "fat_percentage", req.FatPercentage)
	setOpt(assignments, "bone_percentage", req.BonePercentage)
	setOpt(assignments, "water_percentage", req.WaterPercentage)
	setOpt(assignments, "notes", req.Notes)

	if len(assignments) == 0 {
		return evaluationdomain.ErrNothingToApply
	}

	return s.repo.Update(ctx, evaluationID, assignments)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	evaluationID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return evaluationdomain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, evaluationID)
	if err != nil {
		return err
	}
	if existing == nil {
		return evaluationdomain.ErrNotFound
	}

	return s.repo.Delete(ctx, evaluationID)
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

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toResponse(item *evaluationdomain.EvaluationWithAthlete) evaluationdomain.Response {
	return evaluationdomain.Response{
		ID:               item.ID.String(),
		AthleteID:        item.AthleteID.String(),
		EvaluationDate:   item.EvaluationDate,
		Weight:           item.Weight,
		MusclePercentage: item.MusclePercentage,
		FatPercentage:    item.FatPercentage,
		BonePercentage:   item.BonePercentage,
		WaterPercentage:  item.WaterPercentage,
		Notes:            item.Notes,
		CreatedDate:      item.CreatedDate,

		AthleteFirstName: item.AthleteFirstName,
		AthleteLastName:  item.AthleteLastName,
	}
}
