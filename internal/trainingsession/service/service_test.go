package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	athletedomain "github.com/strongfit/studio/internal/athlete/domain"
	"github.com/strongfit/studio/internal/clock"
	sessiondomain "github.com/strongfit/studio/internal/trainingsession/domain"
	"github.com/strongfit/studio/internal/trainingsession/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now(ctx context.Context) time.Time {
	return c.t
}

var _ clock.Clock = fixedClock{}

func newTestService(t *testing.T) (*Service, *gorm.DB, snowflake.ID) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&athletedomain.Athlete{}, &sessiondomain.TrainingSession{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	a := athletedomain.Athlete{
		ID:        node.Generate(),
		FirstName: "Marta",
		LastName:  "Silva",
		PlanType:  "monthly",
	}
	require.NoError(t, db.Create(&a).Error)

	svc := &Service{
		db:    db,
		log:   zap.NewNop(),
		clock: fixedClock{t: time.Date(2025, time.June, 10, 18, 30, 0, 0, time.UTC)},
		genID: node,
		repo:  repository.NewRepository(db),
	}
	return svc, db, a.ID
}

func TestCreateNormalizesSessionTime(t *testing.T) {
	svc, db, athleteID := newTestService(t)

	id, err := svc.Create(context.Background(), sessiondomain.CreateRequest{
		AthleteID:   athleteID.String(),
		SessionName: "Leg day",
		SessionDate: time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
		SessionTime: "18:00",
	})
	require.NoError(t, err)

	var ts sessiondomain.TrainingSession
	require.NoError(t, db.First(&ts, "id = ?", id).Error)
	assert.Equal(t, "18:00:00", ts.SessionTime)
	assert.Equal(t, sessiondomain.StatusScheduled, ts.Status)
}

func TestCreateRejectsBadTime(t *testing.T) {
	svc, _, athleteID := newTestService(t)

	_, err := svc.Create(context.Background(), sessiondomain.CreateRequest{
		AthleteID:   athleteID.String(),
		SessionName: "Leg day",
		SessionDate: time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
		SessionTime: "25:99",
	})
	assert.ErrorIs(t, err, sessiondomain.ErrInvalidTime)
}

func TestCompleteStampsDataAndTime(t *testing.T) {
	svc, db, athleteID := newTestService(t)

	id, err := svc.Create(context.Background(), sessiondomain.CreateRequest{
		AthleteID:   athleteID.String(),
		SessionName: "Leg day",
		SessionDate: time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
		SessionTime: "18:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Complete(context.Background(), id.String(), map[string]any{
		"squat_kg": 80,
		"notes":    "solid",
	}))

	var ts sessiondomain.TrainingSession
	require.NoError(t, db.First(&ts, "id = ?", id).Error)
	assert.Equal(t, sessiondomain.StatusCompleted, ts.Status)
	require.NotNil(t, ts.CompletedAt)
	assert.Equal(t, time.Date(2025, time.June, 10, 18, 30, 0, 0, time.UTC), ts.CompletedAt.UTC())
	assert.Equal(t, "solid", ts.CompletedData["notes"])
}

func TestListFiltersByStatusAndRange(t *testing.T) {
	svc, _, athleteID := newTestService(t)

	mk := func(day int, status string) {
		st := status
		_, err := svc.Create(context.Background(), sessiondomain.CreateRequest{
			AthleteID:   athleteID.String(),
			SessionName: "Session",
			SessionDate: time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC),
			SessionTime: "18:00",
			Status:      &st,
		})
		require.NoError(t, err)
	}
	mk(5, "Completed")
	mk(12, "Cancelled")
	mk(20, "Completed")

	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	out, err := svc.List(context.Background(), sessiondomain.ListRequest{
		Start:  &start,
		End:    &end,
		Status: "Completed",
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Marta", out[0].AthleteFirstName)
}

func TestUpdatePartialPayload(t *testing.T) {
	svc, db, athleteID := newTestService(t)

	id, err := svc.Create(context.Background(), sessiondomain.CreateRequest{
		AthleteID:   athleteID.String(),
		SessionName: "Leg day",
		SessionDate: time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
		SessionTime: "18:00",
	})
	require.NoError(t, err)

	var req sessiondomain.UpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"session_notes": "bring straps", "duration": 60}`), &req))
	require.NoError(t, svc.Update(context.Background(), id.String(), req))

	var ts sessiondomain.TrainingSession
	require.NoError(t, db.First(&ts, "id = ?", id).Error)
	assert.Equal(t, "Leg day", ts.SessionName)
	require.NotNil(t, ts.SessionNotes)
	assert.Equal(t, "bring straps", *ts.SessionNotes)
	require.NotNil(t, ts.Duration)
	assert.Equal(t, int32(60), *ts.Duration)
}
