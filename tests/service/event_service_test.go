package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/repository"
	"github.com/stockflow/inventory-api/internal/service"
	"github.com/stockflow/inventory-api/tests/testutil"
)

func createEventService(db *gorm.DB) *service.EventService {
	return service.NewEventService(repository.NewEventRepository(db), zap.NewNop())
}

func TestEventService_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createEventService(db)

	first := testutil.CreateTestUser(t, db, "alice", domain.RoleStandardUser)
	second := testutil.CreateTestUser(t, db, "bob", domain.RoleStandardUser)

	start := time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
	dto, err := svc.Create(context.Background(), &domain.CreateEventRequest{
		Name:           "Annual stock count",
		StartTime:      start,
		EndTime:        start.Add(8 * time.Hour),
		Location:       "Main Warehouse",
		ParticipantIDs: []uuid.UUID{first.ID, second.ID},
	})

	require.NoError(t, err)
	assert.Equal(t, "Annual stock count", dto.Name)
	assert.Len(t, dto.Participants, 2)
}

func TestEventService_Create_UnknownParticipant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createEventService(db)

	user := testutil.CreateTestUser(t, db, "alice", domain.RoleStandardUser)

	start := time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), &domain.CreateEventRequest{
		Name:           "Annual stock count",
		StartTime:      start,
		EndTime:        start.Add(time.Hour),
		ParticipantIDs: []uuid.UUID{user.ID, uuid.New()},
	})

	assert.ErrorIs(t, err, service.ErrEventParticipantNotFound)
}

func TestEventService_Update_ReplacesParticipants(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createEventService(db)

	first := testutil.CreateTestUser(t, db, "alice", domain.RoleStandardUser)
	second := testutil.CreateTestUser(t, db, "bob", domain.RoleStandardUser)

	start := time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), &domain.CreateEventRequest{
		Name:           "Safety training",
		StartTime:      start,
		EndTime:        start.Add(2 * time.Hour),
		ParticipantIDs: []uuid.UUID{first.ID},
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &domain.UpdateEventRequest{
		Name:           "Safety training",
		StartTime:      start,
		EndTime:        start.Add(2 * time.Hour),
		ParticipantIDs: []uuid.UUID{second.ID},
	})
	require.NoError(t, err)
	require.Len(t, updated.Participants, 1)
	assert.Equal(t, second.ID, updated.Participants[0].ID)
}

func TestEventService_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createEventService(db)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrEventNotFound)
}
