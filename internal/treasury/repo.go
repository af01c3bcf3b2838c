package treasury

import (
	"context"

	"github.com/google/uuid"
	"github.com/questforge/questledger-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates house treasury persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a treasury repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the transaction handle.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindHouseByUserID loads the house owned by the given user.
func (r *Repository) FindHouseByUserID(ctx context.Context, userID uuid.UUID) (*models.House, error) {
	var record models.House
	if err := r.db.WithContext(ctx).First(&record, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// CreateHouse inserts a house with a starting balance.
func (r *Repository) CreateHouse(ctx context.Context, userID uuid.UUID, name string, gold int) (*models.House, error) {
	record := &models.House{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
		Gold:   gold,
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// CreditGold adds the amount to the house balance.
func (r *Repository) CreditGold(ctx context.Context, houseID uuid.UUID, amount int) error {
	if amount <= 0 {
		return gorm.ErrInvalidValue
	}
	result := r.db.WithContext(ctx).
		Model(&models.House{}).
		Where("id = ?", houseID).
		Update("gold", gorm.Expr("gold + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
