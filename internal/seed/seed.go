// Package seed inserts a small demo studio for local development. Running it
// against a database that already has athletes is a no-op.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	athletedomain "github.com/strongfit/studio/internal/athlete/domain"
	billingdomain "github.com/strongfit/studio/internal/billing/domain"
	evaluationdomain "github.com/strongfit/studio/internal/evaluation/domain"
	exercisedomain "github.com/strongfit/studio/internal/exercise/domain"
	sessiondomain "github.com/strongfit/studio/internal/trainingsession/domain"
	"gorm.io/gorm"
)

// EnsureDemoData seeds two athletes (one per plan type), a starter exercise
// catalog and a month of sessions across the three statuses.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&athletedomain.Athlete{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		monthly, onDemand, err := seedAthletes(tx, node)
		if err != nil {
			return err
		}
		if err := seedExercises(tx, node); err != nil {
			return err
		}
		if err := seedSessions(tx, node, monthly, onDemand); err != nil {
			return err
		}
		return seedEvaluation(tx, node, monthly)
	})
}

func seedAthletes(tx *gorm.DB, node *snowflake.Node) (monthly, onDemand snowflake.ID, err error) {
	spw := int32(4)
	email1 := "marta.silva@example.com"
	email2 := "joao.pereira@example.com"

	monthlyAthlete := athletedomain.Athlete{
		ID:                  node.Generate(),
		FirstName:           "Marta",
		LastName:            "Silva",
		Email:               &email1,
		PlanType:            string(billingdomain.PlanMonthly),
		PlanSessionsPerWeek: &spw,
		PlanMonthlyPrice:    decimal.NewNullDecimal(decimal.RequireFromString("200.00")),
		CreatedAt:           time.Now().UTC(),
	}
	onDemandAthlete := athletedomain.Athlete{
		ID:                node.Generate(),
		FirstName:         "Joao",
		LastName:          "Pereira",
		Email:             &email2,
		PlanType:          string(billingdomain.PlanOnDemand),
		PlanOnDemandPrice: decimal.NewNullDecimal(decimal.RequireFromString("25.00")),
		CreatedAt:         time.Now().UTC(),
	}

	if err := tx.Create(&monthlyAthlete).Error; err != nil {
		return 0, 0, err
	}
	if err := tx.Create(&onDemandAthlete).Error; err != nil {
		return 0, 0, err
	}
	return monthlyAthlete.ID, onDemandAthlete.ID, nil
}

func seedExercises(tx *gorm.DB, node *snowflake.Node) error {
	names := []struct {
		name     string
		category string
	}{
		{"Back Squat", "strength"},
		{"Deadlift", "strength"},
		{"Rowing Intervals", "conditioning"},
		{"Plank", "core"},
	}

	for _, n := range names {
		category := n.category
		ex := exercisedomain.Exercise{
			ID:        node.Generate(),
			Name:      n.name,
			Category:  &category,
			CreatedAt: time.Now().UTC(),
		}
		if err := tx.Create(&ex).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedSessions(tx *gorm.DB, node *snowflake.Node, monthly, onDemand snowflake.ID) error {
	now := time.Now().UTC()
	prevMonth := billingdomain.MonthStart(now).AddDate(0, -1, 0)

	type spec struct {
		athleteID snowflake.ID
		day       int
		status    sessiondomain.Status
	}

	var sessions []spec
	for day := 2; day <= 12; day += 2 {
		sessions = append(sessions, spec{onDemand, day, sessiondomain.StatusCompleted})
	}
	sessions = append(sessions,
		spec{monthly, 5, sessiondomain.StatusCompleted},
		spec{monthly, 12, sessiondomain.StatusCancelled},
		spec{onDemand, 20, sessiondomain.StatusCancelled},
		spec{monthly, 26, sessiondomain.StatusScheduled},
	)

	for i, sp := range sessions {
		completedAt := (*time.Time)(nil)
		if sp.status == sessiondomain.StatusCompleted {
			ts := prevMonth.AddDate(0, 0, sp.day-1).Add(18 * time.Hour)
			completedAt = &ts
		}
		session := sessiondomain.TrainingSession{
			ID:          node.Generate(),
			AthleteID:   sp.athleteID,
			SessionName: fmt.Sprintf("Session %d", i+1),
			SessionDate: prevMonth.AddDate(0, 0, sp.day-1),
			SessionTime: "18:00:00",
			Status:      sp.status,
			CompletedAt: completedAt,
			CreatedDate: prevMonth,
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedEvaluation(tx *gorm.DB, node *snowflake.Node, athleteID snowflake.ID) error {
	weight := 63.5
	muscle := 38.2
	fat := 21.4

	eval := evaluationdomain.Evaluation{
		ID:               node.Generate(),
		AthleteID:        athleteID,
		EvaluationDate:   time.Now().UTC().AddDate(0, 0, -7),
		Weight:           &weight,
		MusclePercentage: &muscle,
		FatPercentage:    &fat,
		CreatedDate:      time.Now().UTC(),
	}
	return tx.Create(&eval).Error
}
