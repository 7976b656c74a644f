package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/mapper"
	"github.com/stockflow/inventory-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrEventNotFound is returned when an event is not found
var ErrEventNotFound = errors.New("event not found")

// ErrEventParticipantNotFound is returned when a participant ID does not match a user
var ErrEventParticipantNotFound = errors.New("event participant not found")

// EventService handles business logic for events
type EventService struct {
	eventRepo *repository.EventRepository
	logger    *zap.Logger
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo *repository.EventRepository, logger *zap.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// resolveParticipants loads the users for the given IDs, failing when any ID is unknown
func (s *EventService) resolveParticipants(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	users, err := s.eventRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	if len(users) != len(ids) {
		return nil, ErrEventParticipantNotFound
	}
	return users, nil
}

// Create creates a new event with its participants
func (s *EventService) Create(ctx context.Context, req *domain.CreateEventRequest) (*domain.EventDTO, error) {
	participants, err := s.resolveParticipants(ctx, req.ParticipantIDs)
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		Name:         req.Name,
		Description:  req.Description,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Location:     req.Location,
		Participants: participants,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info("event created",
		zap.String("event_id", event.ID.String()),
		zap.String("name", event.Name),
		zap.Int("participants", len(participants)),
	)

	dto := mapper.EventToDTO(event)
	return &dto, nil
}

// GetByID retrieves an event by ID
func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*domain.EventDTO, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	dto := mapper.EventToDTO(event)
	return &dto, nil
}

// Update updates an existing event and replaces its participant set
func (s *EventService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateEventRequest) (*domain.EventDTO, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	participants, err := s.resolveParticipants(ctx, req.ParticipantIDs)
	if err != nil {
		return nil, err
	}

	event.Name = req.Name
	event.Description = req.Description
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime
	event.Location = req.Location

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	if err := s.eventRepo.ReplaceParticipants(ctx, event, participants); err != nil {
		return nil, fmt.Errorf("failed to update event participants: %w", err)
	}

	updated, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload event: %w", err)
	}

	dto := mapper.EventToDTO(updated)
	return &dto, nil
}

// Delete deletes an event
func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.eventRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to get event: %w", err)
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.logger.Info("event deleted", zap.String("event_id", id.String()))
	return nil
}

// List returns a paginated list of events, optionally filtered by name substring
func (s *EventService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	events, total, err := s.eventRepo.ListWithSortConfig(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return paginate(mapper.EventsToDTOs(events), total, page, pageSize), nil
}
