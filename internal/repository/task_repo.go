package repository

import (
	"context"
	"time"

	"crm/internal/domain"

	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	Title         string     `gorm:"column:title"`
	Description   *string    `gorm:"column:description"`
	Status        string     `gorm:"column:status"`
	DueDate       *time.Time `gorm:"column:due_date"`
	AssignedToID  int64      `gorm:"column:assigned_to_id"`
	RelatedLeadID int64      `gorm:"column:related_lead_id"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (taskModel) TableName() string { return "tasks" }

func toDomainTask(m taskModel) *domain.Task {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	return &domain.Task{
		ID:            m.ID,
		Title:         m.Title,
		Description:   description,
		Status:        domain.TaskStatus(m.Status),
		DueDate:       m.DueDate,
		AssignedToID:  m.AssignedToID,
		RelatedLeadID: m.RelatedLeadID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toTaskModel(t *domain.Task) taskModel {
	return taskModel{
		ID:            t.ID,
		Title:         t.Title,
		Description:   nullable(t.Description),
		Status:        string(t.Status),
		DueDate:       t.DueDate,
		AssignedToID:  t.AssignedToID,
		RelatedLeadID: t.RelatedLeadID,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	m := toTaskModel(t)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainTask(m)
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	m := toTaskModel(t)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainTask(m)
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, t *domain.Task) error {
	res := r.db.WithContext(ctx).Delete(&taskModel{}, t.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepository) GetByAssignedTo(ctx context.Context, userID int64) ([]domain.Task, error) {
	var models []taskModel
	tx := r.db.WithContext(ctx).Where("assigned_to_id = ?", userID).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	tasks := make([]domain.Task, 0, len(models))
	for _, m := range models {
		tasks = append(tasks, *toDomainTask(m))
	}
	return tasks, nil
}
