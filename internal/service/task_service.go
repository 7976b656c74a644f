package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/mapper"
	"github.com/stockflow/inventory-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrTaskNotFound is returned when a task is not found
var ErrTaskNotFound = errors.New("task not found")

// TaskService handles business logic for tasks
type TaskService struct {
	taskRepo *repository.TaskRepository
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

// NewTaskService creates a new task service instance
func NewTaskService(
	taskRepo *repository.TaskRepository,
	userRepo *repository.UserRepository,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create creates a new task
func (s *TaskService) Create(ctx context.Context, req *domain.CreateTaskRequest) (*domain.TaskDTO, error) {
	if _, err := s.userRepo.GetByID(ctx, req.AssignedToID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get assignee: %w", err)
	}

	task := &domain.Task{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		AssignedToID: req.AssignedToID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("task created",
		zap.String("task_id", task.ID.String()),
		zap.String("title", task.Title),
	)

	created, err := s.taskRepo.GetByID(ctx, task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}

	dto := mapper.TaskToDTO(created)
	return &dto, nil
}

// GetByID retrieves a task by ID
func (s *TaskService) GetByID(ctx context.Context, id uuid.UUID) (*domain.TaskDTO, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	dto := mapper.TaskToDTO(task)
	return &dto, nil
}

// Update updates an existing task
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateTaskRequest) (*domain.TaskDTO, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if req.AssignedToID != task.AssignedToID {
		if _, err := s.userRepo.GetByID(ctx, req.AssignedToID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to get assignee: %w", err)
		}
	}

	task.Title = req.Title
	task.Description = req.Description
	task.DueDate = req.DueDate
	task.Completed = req.Completed
	task.AssignedToID = req.AssignedToID
	task.AssignedTo = nil

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	updated, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}

	dto := mapper.TaskToDTO(updated)
	return &dto, nil
}

// Delete deletes a task
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.taskRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to get task: %w", err)
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("task deleted", zap.String("task_id", id.String()))
	return nil
}

// List returns a paginated list of tasks, optionally filtered by title substring
func (s *TaskService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	tasks, total, err := s.taskRepo.ListWithSortConfig(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return paginate(mapper.TasksToDTOs(tasks), total, page, pageSize), nil
}

// OrderCreatedHook returns a hook that opens a follow-up task for each new
// order. The task is assigned to the earliest created Administrator and is
// due one day after creation. When no Administrator exists the hook does
// nothing; order creation is never blocked by this side effect.
func (s *TaskService) OrderCreatedHook() OrderCreatedHook {
	return func(ctx context.Context, order *domain.Order) {
		admin, err := s.userRepo.FirstByRole(ctx, domain.RoleAdministrator)
		if err != nil {
			s.logger.Error("failed to look up administrator for order follow-up task",
				zap.String("order_id", order.ID.String()),
				zap.Error(err),
			)
			return
		}
		if admin == nil {
			s.logger.Warn("no administrator found, skipping order follow-up task",
				zap.String("order_id", order.ID.String()),
			)
			return
		}

		task := &domain.Task{
			Title:        fmt.Sprintf("Follow up on order %s", order.ID),
			Description:  fmt.Sprintf("Verify supplier confirmation for order placed on %s.", order.OrderDate.Format(domain.DateFormat)),
			DueDate:      time.Now().UTC().Add(24 * time.Hour),
			AssignedToID: admin.ID,
		}

		if err := s.taskRepo.Create(ctx, task); err != nil {
			s.logger.Error("failed to create order follow-up task",
				zap.String("order_id", order.ID.String()),
				zap.Error(err),
			)
			return
		}

		s.logger.Info("order follow-up task created",
			zap.String("order_id", order.ID.String()),
			zap.String("task_id", task.ID.String()),
			zap.String("assigned_to", admin.Username),
		)
	}
}
