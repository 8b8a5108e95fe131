package repository

import (
	"context"
	"time"

	"crm/internal/domain"

	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

type leadModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	Phone        string    `gorm:"column:phone"`
	Company      *string   `gorm:"column:company"`
	Status       string    `gorm:"column:status"`
	AssignedToID int64     `gorm:"column:assigned_to_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (leadModel) TableName() string { return "leads" }

func toDomainLead(m leadModel) *domain.Lead {
	var company string
	if m.Company != nil {
		company = *m.Company
	}

	return &domain.Lead{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Company:      company,
		Status:       domain.LeadStatus(m.Status),
		AssignedToID: m.AssignedToID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toLeadModel(l *domain.Lead) leadModel {
	return leadModel{
		ID:           l.ID,
		Name:         l.Name,
		Email:        l.Email,
		Phone:        l.Phone,
		Company:      nullable(l.Company),
		Status:       string(l.Status),
		AssignedToID: l.AssignedToID,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	m := toLeadModel(l)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = *toDomainLead(m)
	return nil
}

func (r *LeadRepository) Update(ctx context.Context, l *domain.Lead) error {
	m := toLeadModel(l)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = *toDomainLead(m)
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, l *domain.Lead) error {
	return r.db.WithContext(ctx).Delete(&leadModel{}, l.ID).Error
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	var m leadModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainLead(m), nil
}

func (r *LeadRepository) GetByAssignedTo(ctx context.Context, userID int64) ([]domain.Lead, error) {
	var models []leadModel
	tx := r.db.WithContext(ctx).Where("assigned_to_id = ?", userID).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	leads := make([]domain.Lead, 0, len(models))
	for _, m := range models {
		leads = append(leads, *toDomainLead(m))
	}
	return leads, nil
}

func (r *LeadRepository) GetAll(ctx context.Context) ([]domain.Lead, error) {
	var models []leadModel
	tx := r.db.WithContext(ctx).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	leads := make([]domain.Lead, 0, len(models))
	for _, m := range models {
		leads = append(leads, *toDomainLead(m))
	}
	return leads, nil
}

// ConvertAndDelete creates the client and removes the lead in one
// transaction. Used by the self-service conversion path: either both writes
// land or neither does.
func (r *LeadRepository) ConvertAndDelete(ctx context.Context, l *domain.Lead, c *domain.Client) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cm := toClientModel(c)
		if err := tx.Create(&cm).Error; err != nil {
			return err
		}

		res := tx.Delete(&leadModel{}, l.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// a concurrent request already converted or removed this lead
			return gorm.ErrRecordNotFound
		}

		*c = *toDomainClient(cm)
		return nil
	})
}

// ConvertAndRetain creates the client and marks the lead converted without
// deleting it, in one transaction. Used by the manager approval path.
func (r *LeadRepository) ConvertAndRetain(ctx context.Context, l *domain.Lead, c *domain.Client) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cm := toClientModel(c)
		if err := tx.Create(&cm).Error; err != nil {
			return err
		}

		res := tx.Model(&leadModel{}).
			Where("id = ? AND status = ?", l.ID, string(domain.LeadApprovalPending)).
			Updates(map[string]any{
				"status":     string(domain.LeadConverted),
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// lead left approval_pending between read and write; roll back the client
			return gorm.ErrRecordNotFound
		}

		l.Status = domain.LeadConverted
		*c = *toDomainClient(cm)
		return nil
	})
}
