package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/careerhive/jobmatch/internal/domain"
)

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewInvalidRequestError("invalid request body"))
		return
	}

	var dueDate time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			h.handleError(w, domain.NewInvalidRequestError("due_date must be RFC3339"))
			return
		}
		dueDate = parsed
	}

	task, err := h.taskService.CreateTask(r.Context(), &domain.Task{
		BusinessID:  req.BusinessID,
		Name:        req.Name,
		Importance:  domain.Importance(req.Importance),
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     dueDate,
		Status:      domain.TaskStatus(req.Status),
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, CreateTaskResponse{
		Task: domainTaskToHTTP(task),
	})
}

func (h *Handler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("taskID")

	var req UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewInvalidRequestError("invalid request body"))
		return
	}

	task, err := h.taskService.UpdateTaskStatus(r.Context(), taskID, domain.TaskStatus(req.Status))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, CreateTaskResponse{
		Task: domainTaskToHTTP(task),
	})
}

func (h *Handler) GetPersonTasks(w http.ResponseWriter, r *http.Request) {
	personID := r.URL.Query().Get("person_id")

	tasks, err := h.taskService.TasksForPerson(r.Context(), personID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, TasksResponse{
		Tasks: domainTasksToHTTP(tasks),
	})
}

func (h *Handler) GetBusinessTasks(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")

	tasks, err := h.taskService.TasksForBusiness(r.Context(), businessID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, TasksResponse{
		Tasks: domainTasksToHTTP(tasks),
	})
}
