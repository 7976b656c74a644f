package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/service"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	taskService *service.TaskService
	logger      *zap.Logger
}

// NewTaskHandler creates a new task handler instance
func NewTaskHandler(taskService *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// List returns a paginated list of tasks. Searches match the task title.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.taskService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list tasks")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Search finds tasks whose title contains the query substring. An empty
// query returns the unfiltered listing.
func (h *TaskHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.taskService.List(r.Context(), page, pageSize, r.URL.Query().Get("query"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "search tasks")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *TaskHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get task")
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	task, err := h.taskService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create task")
		return
	}

	w.Header().Set("Location", "/api/v1/tasks/"+task.ID.String())
	respondJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	task, err := h.taskService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update task")
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
