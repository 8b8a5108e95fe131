package repository

import (
	"context"
	"strings"
	"time"

	"crm/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Username     string    `gorm:"column:username"`
	PasswordHash string    `gorm:"column:password_hash"`
	Email        string    `gorm:"column:email"`
	Phone        *string   `gorm:"column:phone"`
	Address      *string   `gorm:"column:address"`
	Role         string    `gorm:"column:role"`
	Position     *string   `gorm:"column:position"`
	Department   *string   `gorm:"column:department"`
	ManagerID    *int64    `gorm:"column:manager_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var phone, address, position, department string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.Address != nil {
		address = *m.Address
	}
	if m.Position != nil {
		position = *m.Position
	}
	if m.Department != nil {
		department = *m.Department
	}

	return &domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Email:        m.Email,
		Phone:        phone,
		Address:      address,
		Role:         domain.Role(m.Role),
		Position:     position,
		Department:   department,
		ManagerID:    m.ManagerID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	username := strings.TrimSpace(strings.ToLower(u.Username))

	return userModel{
		ID:           u.ID,
		Name:         u.Name,
		Username:     username,
		PasswordHash: u.PasswordHash,
		Email:        strings.TrimSpace(strings.ToLower(u.Email)),
		Phone:        nullable(u.Phone),
		Address:      nullable(u.Address),
		Role:         string(u.Role),
		Position:     nullable(u.Position),
		Department:   nullable(u.Department),
		ManagerID:    u.ManagerID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	s := v
	return &s
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(username) = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("LOWER(username) = ?", strings.ToLower(strings.TrimSpace(username))).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	var models []userModel
	tx := r.db.WithContext(ctx).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	users := make([]domain.User, 0, len(models))
	for _, m := range models {
		users = append(users, *toDomainUser(m))
	}
	return users, nil
}

// GetTeamMembers returns users whose manager reference points at managerID.
func (r *UserRepository) GetTeamMembers(ctx context.Context, managerID int64) ([]domain.User, error) {
	var models []userModel
	tx := r.db.WithContext(ctx).Where("manager_id = ?", managerID).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	users := make([]domain.User, 0, len(models))
	for _, m := range models {
		users = append(users, *toDomainUser(m))
	}
	return users, nil
}
