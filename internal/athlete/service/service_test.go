package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	athletedomain "github.com/strongfit/studio/internal/athlete/domain"
	"github.com/strongfit/studio/internal/athlete/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&athletedomain.Athlete{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return &Service{
		db:    db,
		log:   zap.NewNop(),
		genID: node,
		repo:  repository.NewRepository(db),
	}, db
}

func TestCreateDefaultsToMonthlyPlan(t *testing.T) {
	svc, db := newTestService(t)

	id, err := svc.Create(context.Background(), athletedomain.CreateRequest{
		FirstName: "  Marta ",
		LastName:  "Silva",
		Goals:     []string{"strength", "", "mobility"},
	})
	require.NoError(t, err)

	var a athletedomain.Athlete
	require.NoError(t, db.First(&a, "id = ?", id).Error)
	assert.Equal(t, "Marta", a.FirstName)
	assert.Equal(t, "monthly", a.PlanType)
	require.NotNil(t, a.Goals)
	assert.Equal(t, "strength, mobility", *a.Goals)
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), athletedomain.CreateRequest{
		FirstName: "   ",
		LastName:  "Silva",
	})
	assert.ErrorIs(t, err, athletedomain.ErrInvalidName)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	svc, db := newTestService(t)

	phone := "+351111222333"
	notes := "prefers mornings"
	id, err := svc.Create(context.Background(), athletedomain.CreateRequest{
		FirstName: "Marta",
		LastName:  "Silva",
		Phone:     &phone,
		Notes:     &notes,
	})
	require.NoError(t, err)

	// Absent fields stay untouched, explicit null clears, values overwrite.
	var req athletedomain.UpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"phone": null, "notes": "evenings now"}`), &req))
	require.NoError(t, svc.Update(context.Background(), id.String(), req))

	var a athletedomain.Athlete
	require.NoError(t, db.First(&a, "id = ?", id).Error)
	assert.Equal(t, "Marta", a.FirstName)
	assert.Nil(t, a.Phone)
	require.NotNil(t, a.Notes)
	assert.Equal(t, "evenings now", *a.Notes)
}

func TestUpdateRejectsNullName(t *testing.T) {
	svc, _ := newTestService(t)

	id, err := svc.Create(context.Background(), athletedomain.CreateRequest{
		FirstName: "Marta",
		LastName:  "Silva",
	})
	require.NoError(t, err)

	var req athletedomain.UpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"first_name": null}`), &req))
	assert.ErrorIs(t, svc.Update(context.Background(), id.String(), req), athletedomain.ErrInvalidName)
}

func TestUpdateWithEmptyPayload(t *testing.T) {
	svc, _ := newTestService(t)

	id, err := svc.Create(context.Background(), athletedomain.CreateRequest{
		FirstName: "Marta",
		LastName:  "Silva",
	})
	require.NoError(t, err)

	var req athletedomain.UpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.ErrorIs(t, svc.Update(context.Background(), id.String(), req), athletedomain.ErrNothingToApply)
}

func TestUpdatePlanFields(t *testing.T) {
	svc, db := newTestService(t)

	id, err := svc.Create(context.Background(), athletedomain.CreateRequest{
		FirstName: "Joao",
		LastName:  "Pereira",
	})
	require.NoError(t, err)

	var req athletedomain.UpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"plan_type": "On_Demand", "plan_on_demand_price": "25.00"}`), &req))
	require.NoError(t, svc.Update(context.Background(), id.String(), req))

	var a athletedomain.Athlete
	require.NoError(t, db.First(&a, "id = ?", id).Error)
	assert.Equal(t, "on_demand", a.PlanType)
	require.True(t, a.PlanOnDemandPrice.Valid)
	assert.True(t, a.PlanOnDemandPrice.Decimal.Equal(decimal.RequireFromString("25.00")))
}

func TestGetUnknownAthlete(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), "999999999")
	assert.ErrorIs(t, err, athletedomain.ErrNotFound)

	_, err = svc.Get(context.Background(), "not-a-number")
	assert.ErrorIs(t, err, athletedomain.ErrInvalidID)
}
