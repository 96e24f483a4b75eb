package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	athletedomain "github.com/strongfit/studio/internal/athlete/domain"
	"github.com/strongfit/studio/internal/athlete/repository"
	"github.com/strongfit/studio/pkg/field"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	repo  athletedomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

func NewService(p ServiceParam) athletedomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("athlete.service"),

		genID: p.GenID,
		repo:  repository.NewRepository(p.DB),
	}
}

func (s *Service) List(ctx context.Context) ([]athletedomain.Response, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]athletedomain.Response, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*athletedomain.Response, error) {
	athleteID, err := parseID(id)
	if err != nil {
		return nil, athletedomain.ErrInvalidID
	}

	a, err := s.repo.FindByID(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, athletedomain.ErrNotFound
	}

	resp := toResponse(a)
	return &resp, nil
}

func (s *Service) Create(ctx context.Context, req athletedomain.CreateRequest) (snowflake.ID, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return 0, athletedomain.ErrInvalidName
	}

	planType := "monthly"
	if req.PlanType != nil && strings.TrimSpace(*req.PlanType) != "" {
		planType = strings.ToLower(strings.TrimSpace(*req.PlanType))
	}

	a := athletedomain.Athlete{
		ID:                s.genID.Generate(),
		FirstName:         firstName,
		LastName:          lastName,
		Email:             req.Email,
		Phone:             req.Phone,
		BirthDate:         req.BirthDate,
		Gender:            req.Gender,
		Weight:            req.Weight,
		Height:            req.Height,
		FitnessLevel:      req.FitnessLevel,
		Goals:             athletedomain.GoalsToText(req.Goals),
		MedicalConditions: req.MedicalConditions,
		Notes:             req.Notes,

		PlanType:            planType,
		PlanSessionsPerWeek: req.PlanSessionsPerWeek,
	}
	if req.PlanMonthlyPrice != nil {
		a.PlanMonthlyPrice.Decimal = *req.PlanMonthlyPrice
		a.PlanMonthlyPrice.Valid = true
	}
	if req.PlanOnDemandPrice != nil {
		a.PlanOnDemandPrice.Decimal = *req.PlanOnDemandPrice
		a.PlanOnDemandPrice.Valid = true
	}

	if err := s.repo.Insert(ctx, &a); err != nil {
		return 0, err
	}

	s.log.Info("athlete created", zap.String("athlete_id", a.ID.String()))
	return a.ID, nil
}

func (s *Service) Update(ctx context.Context, id string, req athletedomain.UpdateRequest) error {
	athleteID, err := parseID(id)
	if err != nil {
		return athletedomain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, athleteID)
	if err != nil {
		return err
	}
	if existing == nil {
		return athletedomain.ErrNotFound
	}

	assignments, err := buildAssignments(req)
	if err != nil {
		return err
	}
	if len(assignments) == 0 {
		return athletedomain.ErrNothingToApply
	}

	return s.repo.Update(ctx, athleteID, assignments)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	athleteID, err := parseID(id)
	if err != nil {
		return athletedomain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, athleteID)
	if err != nil {
		return err
	}
	if existing == nil {
		return athletedomain.ErrNotFound
	}

	return s.repo.Delete(ctx, athleteID)
}

// buildAssignments maps the explicitly provided fields of a partial update to
// column assignments. Explicit null clears nullable columns; the two name
// columns are not nullable and reject it.
func buildAssignments(req athletedomain.UpdateRequest) (map[string]any, error) {
	assignments := map[string]any{}

	if req.FirstName.IsSet() {
		v, ok := req.FirstName.Value()
		if !ok || strings.TrimSpace(v) == "" {
			return nil, athletedomain.ErrInvalidName
		}
		assignments["first_name"] = strings.TrimSpace(v)
	}
	if req.LastName.IsSet() {
		v, ok := req.LastName.Value()
		if !ok || strings.TrimSpace(v) == "" {
			return nil, athletedomain.ErrInvalidName
		}
		assignments["last_name"] = strings.TrimSpace(v)
	}

	setOpt(assignments, "email", req.Email)
	setOpt(assignments, "phone", req.Phone)
	setOpt(assignments, "birth_date", req.BirthDate)
	setOpt(assignments, "gender", req.Gender)
	setOpt(assignments, "weight", req.Weight)
	setOpt(assignments, "height", req.Height)
	setOpt(assignments, "fitness_level", req.FitnessLevel)
	setOpt(assignments, "medical_conditions", req.MedicalConditions)
	setOpt(assignments, "notes", req.Notes)
	setOpt(assignments, "plan_sessions_per_week", req.PlanSessionsPerWeek)
	setOpt(assignments, "plan_monthly_price", req.PlanMonthlyPrice)
	setOpt(assignments, "plan_on_demand_price", req.PlanOnDemandPrice)

	if req.Goals.IsSet() {
		if v, ok := req.Goals.Value(); ok {
			assignments["goals"] = athletedomain.GoalsToText(v)
		} else {
			assignments["goals"] = nil
		}
	}

	if req.PlanType.IsSet() {
		if v, ok := req.PlanType.Value(); ok {
			assignments["plan_type"] = strings.ToLower(strings.TrimSpace(v))
		} else {
			assignments["plan_type"] = "monthly"
		}
	}

	return assignments, nil
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

func toResponse(a *athletedomain.Athlete) athletedomain.Response {
	resp := athletedomain.Response{
		ID:                a.ID.String(),
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		Email:             a.Email,
		Phone:             a.Phone,
		BirthDate:         a.BirthDate,
		Gender:            a.Gender,
		Weight:            a.Weight,
		Height:            a.Height,
		FitnessLevel:      a.FitnessLevel,
		Goals:             athletedomain.GoalsToList(a.Goals),
		MedicalConditions: a.MedicalConditions,
		Notes:             a.Notes,

		PlanType:            a.PlanType,
		PlanSessionsPerWeek: a.PlanSessionsPerWeek,

		CreatedAt: a.CreatedAt,
	}
	if a.PlanMonthlyPrice.Valid {
		v := a.PlanMonthlyPrice.Decimal
		resp.PlanMonthlyPrice = &v
	}
	if a.PlanOnDemandPrice.Valid {
		v := a.PlanOnDemandPrice.Decimal
		resp.PlanOnDemandPrice = &v
	}
	return resp
}

func parseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}
