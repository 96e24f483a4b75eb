package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/strongfit/studio/internal/clock"
	sessiondomain "github.com/strongfit/studio/internal/trainingsession/domain"
	"github.com/strongfit/studio/internal/trainingsession/repository"
	"gorm.io/datatypes"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock

	genID *snowflake.Node
	repo  sessiondomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
}

func NewService(p ServiceParam) sessiondomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("trainingsession.service"),
		clock: p.Clock,

		genID: p.GenID,
		repo:  repository.NewRepository(p.DB),
	}
}

func (s *Service) List(ctx context.Context, req sessiondomain.ListRequest) ([]sessiondomain.Response, error) {
	filter := sessiondomain.ListFilter{
		Start: req.Start,
		End:   req.End,
	}
	if strings.TrimSpace(req.AthleteID) != "" {
		id, err := snowflake.ParseString(strings.TrimSpace(req.AthleteID))
		if err != nil {
			return nil, sessiondomain.ErrInvalidAthlete
		}
		filter.AthleteID = &id
	}
	if status := strings.TrimSpace(req.Status); status != "" {
		st := sessiondomain.Status(status)
		filter.Status = &st
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]sessiondomain.Response, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, req sessiondomain.CreateRequest) (snowflake.ID, error) {
	athleteID, err := snowflake.ParseString(strings.TrimSpace(req.AthleteID))
	if err != nil {
		return 0, sessiondomain.ErrInvalidAthlete
	}

	name := strings.TrimSpace(req.SessionName)
	if name == "" {
		return 0, sessiondomain.ErrInvalidName
	}

	sessionTime, err := normalizeSessionTime(req.SessionTime)
	if err != nil {
		return 0, err
	}

	status := sessiondomain.StatusScheduled
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		status = sessiondomain.Status(strings.TrimSpace(*req.Status))
	}

	exercises := req.Exercises
	if exercises == nil {
		exercises = []map[string]any{}
	}
	exercisesJSON, err := json.Marshal(exercises)
	if err != nil {
		return 0, err
	}

	ts := sessiondomain.TrainingSession{
		ID:           s.genID.Generate(),
		AthleteID:    athleteID,
		SessionName:  name,
		SessionDate:  dateOnly(req.SessionDate),
		SessionTime:  sessionTime,
		Duration:     req.Duration,
		SessionType:  req.SessionType,
		SessionNotes: req.SessionNotes,
		Status:       status,
		Exercises:    datatypes.JSON(exercisesJSON),
		CreatedDate:  dateOnly(s.clock.Now(ctx)),
	}

	if err := s.repo.Insert(ctx, &ts); err != nil {
		return 0, err
	}

	s.log.Info("training session created",
		zap.String("session_id", ts.ID.String()),
		zap.String("athlete_id", athleteID.String()),
	)
	return ts.ID, nil
}

func (s *Service) Update(ctx context.Context, id string, req sessiondomain.UpdateRequest) error {
	sessionID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return sessiondomain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if existing == nil {
		return sessiondomain.ErrNotFound
	}

	assignments := map[string]any{}

	if req.AthleteID.IsSet() {
		v, ok := req.AthleteID.Value()
		if !ok {
			return sessiondomain.ErrInvalidAthlete
		}
		athleteID, err := snowflake.ParseString(strings.TrimSpace(v))
		if err != nil {
			return sessiondomain.ErrInvalidAthlete
		}
		assignments["athlete_id"] = athleteID
	}
	if req.SessionName.IsSet() {
		v, ok := req.SessionName.Value()
		if !ok || strings.TrimSpace(v) == "" {
			return sessiondomain.ErrInvalidName
		}
		assignments["session_name"] = strings.TrimSpace(v)
	}
	if req.SessionDate.IsSet() {
		v, ok := req.SessionDate.Value()
		if !ok {
			return sessiondomain.ErrNothingToApply
		}
		assignments["session_date"] = dateOnly(v)
	}
	if req.SessionTime.IsSet() {
		v, ok := req.SessionTime.Value()
		if !ok {
			return sessiondomain.ErrInvalidTime
		}
		normalized, err := normalizeSessionTime(v)
		if err != nil {
			return err
		}
		assignments["session_time"] = normalized
	}
	if req.Duration.IsSet() {
		if v, ok := req.Duration.Value(); ok {
			assignments["duration"] = v
		} else {
			assignments["duration"] = nil
		}
	}
	if req.SessionType.IsSet() {
		if v, ok := req.SessionType.Value(); ok {
			assignments["session_type"] = v
		} else {
			assignments["session_type"] = nil
		}
	}
	if req.SessionNotes.IsSet() {
		if v, ok := req.SessionNotes.Value(); ok {
			assignments["session_notes"] = v
		} else {
			assignments["session_notes"] = nil
		}
	}
	if req.Status.IsSet() {
		if v, ok := req.Status.Value(); ok && strings.TrimSpace(v) != "" {
			assignments["status"] = sessiondomain.Status(strings.TrimSpace(v))
		}
	}
	if req.Exercises.IsSet() {
		if v, ok := req.Exercises.Value(); ok {
			raw, err := json.Marshal(v)
			if err != nil {
				return err
			}
			assignments["exercises"] = datatypes.JSON(raw)
		} else {
			assignments["exercises"] = nil
		}
	}
	if req.CompletedAt.IsSet() {
		if v, ok := req.CompletedAt.Value(); ok {
			assignments["completed_at"] = v
		} else {
			assignments["completed_at"] = nil
		}
	}

	if len(assignments) == 0 {
		return sessiondomain.ErrNothingToApply
	}

	return s.repo.Update(ctx, sessionID, assignments)
}

func (s *Service) Complete(ctx context.Context, id string, completedData map[string]any) error {
	sessionID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return sessiondomain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if existing == nil {
		return sessiondomain.ErrNotFound
	}

	if completedData == nil {
		completedData = map[string]any{}
	}

	return s.repo.Update(ctx, sessionID, map[string]any{
		"status":         sessiondomain.StatusCompleted,
		"completed_data": datatypes.JSONMap(completedData),
		"completed_at":   s.clock.Now(ctx),
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	sessionID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return sessiondomain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if existing == nil {
		return sessiondomain.ErrNotFound
	}

	return s.repo.Delete(ctx, sessionID)
}

// normalizeSessionTime accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func normalizeSessionTime(value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", sessiondomain.ErrInvalidTime
	}
	if len(v) == 5 {
		v += ":00"
	}
	if _, err := time.Parse("15:04:05", v); err != nil {
		return "", sessiondomain.ErrInvalidTime
	}
	return v, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toResponse(item *sessiondomain.SessionWithAthlete) sessiondomain.Response {
	resp := sessiondomain.Response{
		ID:           item.ID.String(),
		AthleteID:    item.AthleteID.String(),
		SessionName:  item.SessionName,
		SessionDate:  item.SessionDate,
		SessionTime:  item.SessionTime,
		Duration:     item.Duration,
		SessionType:  item.SessionType,
		SessionNotes: item.SessionNotes,
		Status:       item.Status,
		CompletedAt:  item.CompletedAt,
		CreatedDate:  item.CreatedDate,

		AthleteFirstName: item.AthleteFirstName,
		AthleteLastName:  item.AthleteLastName,
	}

	if len(item.Exercises) > 0 {
		var exercises []map[string]any
		if err := json.Unmarshal(item.Exercises, &exercises); err == nil {
			resp.Exercises = exercises
		}
	}
	if resp.Exercises == nil {
		resp.Exercises = []map[string]any{}
	}
	if item.CompletedData != nil {
		resp.CompletedData = map[string]any(item.CompletedData)
	}
	return resp
}
