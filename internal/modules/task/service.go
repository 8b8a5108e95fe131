package task

import (
	"context"
	"time"

	"crm/internal/domain"
)

// Service owns task assignment: tasks may only reference a lead owned by
// their creator, due dates may not lie in the past, and completing a task
// deletes it.
type Service struct {
	tasks TaskRepositoryInterface
	leads LeadReader
}

func NewService(tasks TaskRepositoryInterface, leads LeadReader) *Service {
	return &Service{
		tasks: tasks,
		leads: leads,
	}
}

func (s *Service) CreateTask(ctx context.Context, req CreateTaskRequest, owner *domain.User) (*domain.Task, error) {
	status := req.Status
	if status == "" {
		status = domain.TaskTodo
	}
	if !domain.ValidTaskStatus(status) {
		return nil, ErrInvalidStatus
	}

	if req.DueDate != nil && req.DueDate.Before(time.Now()) {
		return nil, ErrPastDueDate
	}

	ownLeads, err := s.leads.GetByAssignedTo(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	if len(ownLeads) == 0 {
		return nil, ErrNoLeads
	}

	leadOwned := false
	for _, l := range ownLeads {
		if l.ID == req.RelatedLeadID {
			leadOwned = true
			break
		}
	}
	if !leadOwned {
		return nil, ErrLeadNotOwned
	}

	now := time.Now()
	t := &domain.Task{
		Title:         req.Title,
		Description:   req.Description,
		Status:        status,
		DueDate:       req.DueDate,
		AssignedToID:  owner.ID,
		RelatedLeadID: req.RelatedLeadID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetMyTasks returns the owner's tasks with the related lead joined in
// memory. A task whose lead was converted and deleted keeps empty lead
// fields rather than failing the whole listing.
func (s *Service) GetMyTasks(ctx context.Context, owner *domain.User) ([]TaskView, error) {
	tasks, err := s.tasks.GetByAssignedTo(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	ownLeads, err := s.leads.GetByAssignedTo(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	leadsByID := make(map[int64]domain.Lead, len(ownLeads))
	for _, l := range ownLeads {
		leadsByID[l.ID] = l
	}

	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		view := TaskView{
			ID:             t.ID,
			Title:          t.Title,
			Description:    t.Description,
			Status:         t.Status,
			DueDate:        t.DueDate,
			AssignedToName: owner.Name,
		}
		if l, ok := leadsByID[t.RelatedLeadID]; ok {
			view.RelatedLeadName = l.Name
			view.RelatedCompany = l.Company
		}
		views = append(views, view)
	}
	return views, nil
}

type UpdateTaskResult struct {
	Completed bool
	Task      *domain.Task
}

// UpdateTask applies a partial update to one of the owner's tasks. Patching
// the status to completed deletes the task; no completed record is kept.
func (s *Service) UpdateTask(ctx context.Context, patch UpdateTaskRequest, owner *domain.User) (*UpdateTaskResult, error) {
	tasks, err := s.tasks.GetByAssignedTo(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	var existing *domain.Task
	for i := range tasks {
		if tasks[i].ID == patch.ID {
			existing = &tasks[i]
			break
		}
	}
	if existing == nil {
		return nil, ErrTaskNotFound
	}

	if patch.Status != nil && *patch.Status == domain.TaskCompleted {
		if err := s.tasks.Delete(ctx, existing); err != nil {
			return nil, err
		}
		return &UpdateTaskResult{Completed: true}, nil
	}

	if patch.Title != nil {
		existing.Title = *patch.Title
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.Status != nil {
		if !domain.ValidTaskStatus(*patch.Status) {
			return nil, ErrInvalidStatus
		}
		existing.Status = *patch.Status
	}
	if patch.DueDate != nil {
		if patch.DueDate.Before(time.Now()) {
			return nil, ErrPastDueDate
		}
		existing.DueDate = patch.DueDate
	}
	existing.UpdatedAt = time.Now()

	if err := s.tasks.Update(ctx, existing); err != nil {
		return nil, err
	}
	return &UpdateTaskResult{Task: existing}, nil
}
