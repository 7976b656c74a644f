package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
	"gorm.io/gorm"
)

// eventSortableFields maps API field names to database column names for events
var eventSortableFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
	"startTime": "start_time",
	"endTime":   "end_time",
}

// EventRepository handles event data access operations
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository instance
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event with its participant associations
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetByID retrieves an event by its ID with participants preloaded
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var event domain.Event
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Where("id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update updates an existing event. Participant associations are updated separately
// via ReplaceParticipants.
func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Omit("Participants").Save(event).Error
}

// ReplaceParticipants replaces the participant set of an event
func (r *EventRepository) ReplaceParticipants(ctx context.Context, event *domain.Event, participants []domain.User) error {
	return r.db.WithContext(ctx).Model(event).Association("Participants").Replace(participants)
}

// Delete deletes an event and clears its participant associations
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Participants").Delete(&domain.Event{BaseModel: domain.BaseModel{ID: id}}).Error
}

// List returns a paginated list of events, optionally filtered by name substring
func (r *EventRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.Event, int64, error) {
	return r.ListWithSortConfig(ctx, page, pageSize, search, DefaultSortConfig())
}

// ListWithSortConfig returns a paginated list of events with sort options
func (r *EventRepository) ListWithSortConfig(ctx context.Context, page, pageSize int, search string, sort SortConfig) ([]domain.Event, int64, error) {
	var events []domain.Event
	var total int64

	page, pageSize = NormalizePage(page, pageSize)

	query := r.db.WithContext(ctx).Model(&domain.Event{}).Preload("Participants")
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", SearchPattern(search))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := BuildOrderClause(sort, eventSortableFields, "created_at")

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order(orderClause).Find(&events).Error

	return events, total, err
}

// GetUsersByIDs returns the users matching the given IDs
func (r *EventRepository) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	var users []domain.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}
