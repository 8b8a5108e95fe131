package repository

import (
	"context"
	"time"

	"crm/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

type clientModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	Phone        string    `gorm:"column:phone"`
	Company      *string   `gorm:"column:company"`
	Address      *string   `gorm:"column:address"`
	AssignedToID int64     `gorm:"column:assigned_to_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (clientModel) TableName() string { return "clients" }

func toDomainClient(m clientModel) *domain.Client {
	var company, address string
	if m.Company != nil {
		company = *m.Company
	}
	if m.Address != nil {
		address = *m.Address
	}

	return &domain.Client{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Company:      company,
		Address:      address,
		AssignedToID: m.AssignedToID,
		CreatedAt:    m.CreatedAt,
	}
}

func toClientModel(c *domain.Client) clientModel {
	return clientModel{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Company:      nullable(c.Company),
		Address:      nullable(c.Address),
		AssignedToID: c.AssignedToID,
		CreatedAt:    c.CreatedAt,
	}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	m := toClientModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainClient(m)
	return nil
}

func (r *ClientRepository) GetByAssignedTo(ctx context.Context, userID int64) ([]domain.Client, error) {
	var models []clientModel
	tx := r.db.WithContext(ctx).Where("assigned_to_id = ?", userID).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	clients := make([]domain.Client, 0, len(models))
	for _, m := range models {
		clients = append(clients, *toDomainClient(m))
	}
	return clients, nil
}

func (r *ClientRepository) GetAll(ctx context.Context) ([]domain.Client, error) {
	var models []clientModel
	tx := r.db.WithContext(ctx).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	clients := make([]domain.Client, 0, len(models))
	for _, m := range models {
		clients = append(clients, *toDomainClient(m))
	}
	return clients, nil
}
