package service_test

import (
	"context"
	"fmt"
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

func createTaskService(db *gorm.DB) *service.TaskService {
	return service.NewTaskService(
		repository.NewTaskRepository(db),
		repository.NewUserRepository(db),
		zap.NewNop(),
	)
}

func TestTaskService_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createTaskService(db)

	assignee := testutil.CreateTestUser(t, db, "worker", domain.RoleStandardUser)
	due := time.Now().UTC().Add(48 * time.Hour)

	dto, err := svc.Create(context.Background(), &domain.CreateTaskRequest{
		Title:        "Count pallets in aisle 4",
		Description:  "Quarterly stock count",
		DueDate:      due,
		AssignedToID: assignee.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Count pallets in aisle 4", dto.Title)
	assert.Equal(t, assignee.ID, dto.AssignedToID)
	assert.Equal(t, "Test User", dto.AssignedToName)
	assert.False(t, dto.Completed)
}

func TestTaskService_Create_UnknownAssignee(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createTaskService(db)

	_, err := svc.Create(context.Background(), &domain.CreateTaskRequest{
		Title:        "Orphan task",
		DueDate:      time.Now().UTC(),
		AssignedToID: uuid.New(),
	})

	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestTaskService_Update_Complete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createTaskService(db)

	assignee := testutil.CreateTestUser(t, db, "worker", domain.RoleStandardUser)
	due := time.Now().UTC().Add(24 * time.Hour)

	created, err := svc.Create(context.Background(), &domain.CreateTaskRequest{
		Title:        "Restock shelf B2",
		DueDate:      due,
		AssignedToID: assignee.ID,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &domain.UpdateTaskRequest{
		Title:        "Restock shelf B2",
		DueDate:      due,
		Completed:    true,
		AssignedToID: assignee.ID,
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
}

func TestTaskService_OrderCreatedHook(t *testing.T) {
	db := testutil.SetupTestDB(t)
	taskSvc := createTaskService(db)
	orderSvc := createOrderService(db)
	orderSvc.OnCreated(taskSvc.OrderCreatedHook())

	admin := testutil.CreateTestUser(t, db, "admin", domain.RoleAdministrator)
	testutil.CreateTestUser(t, db, "worker", domain.RoleStandardUser)

	order, err := orderSvc.Create(context.Background(), &domain.CreateOrderRequest{
		OrderDate: "2025-06-15",
	})
	require.NoError(t, err)

	var tasks []domain.Task
	require.NoError(t, db.Find(&tasks).Error)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, fmt.Sprintf("Follow up on order %s", order.ID), task.Title)
	assert.Contains(t, task.Description, "2025-06-15")
	assert.Equal(t, admin.ID, task.AssignedToID)
	assert.False(t, task.Completed)
	assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), task.DueDate, time.Minute)
}

func TestTaskService_OrderCreatedHook_EarliestAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	taskSvc := createTaskService(db)
	orderSvc := createOrderService(db)
	orderSvc.OnCreated(taskSvc.OrderCreatedHook())

	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	first := &domain.User{
		BaseModel:    domain.BaseModel{CreatedAt: base},
		Username:     "first_admin",
		Email:        "first_admin@example.com",
		PasswordHash: "irrelevant",
		Role:         domain.RoleAdministrator,
		IsActive:     true,
	}
	second := &domain.User{
		BaseModel:    domain.BaseModel{CreatedAt: base.Add(time.Hour)},
		Username:     "second_admin",
		Email:        "second_admin@example.com",
		PasswordHash: "irrelevant",
		Role:         domain.RoleAdministrator,
		IsActive:     true,
	}
	require.NoError(t, db.Create(second).Error)
	require.NoError(t, db.Create(first).Error)

	_, err := orderSvc.Create(context.Background(), &domain.CreateOrderRequest{OrderDate: "2025-06-15"})
	require.NoError(t, err)

	var tasks []domain.Task
	require.NoError(t, db.Find(&tasks).Error)
	require.Len(t, tasks, 1)
	assert.Equal(t, first.ID, tasks[0].AssignedToID)
}

func TestTaskService_OrderCreatedHook_NoAdministrator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	taskSvc := createTaskService(db)
	orderSvc := createOrderService(db)
	orderSvc.OnCreated(taskSvc.OrderCreatedHook())

	testutil.CreateTestUser(t, db, "worker", domain.RoleStandardUser)

	// Order creation must succeed even when no follow-up task can be assigned
	order, err := orderSvc.Create(context.Background(), &domain.CreateOrderRequest{OrderDate: "2025-06-15"})
	require.NoError(t, err)
	require.NotNil(t, order)

	var count int64
	require.NoError(t, db.Model(&domain.Task{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
