package items

import (
	"context"

	"github.com/google/uuid"
	"github.com/questforge/questledger-backend/pkg/db/models"
	"github.com/questforge/questledger-backend/pkg/enums"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository constructs an item repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) CreatePotion(ctx context.Context, record *models.Potion) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) CreateScroll(ctx context.Context, record *models.SpellScroll) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindPotionByID(ctx context.Context, id uuid.UUID) (*models.Potion, error) {
	var record models.Potion
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) FindScrollByID(ctx context.Context, id uuid.UUID) (*models.SpellScroll, error) {
	var record models.SpellScroll
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdatePotion persists the consumption-related columns of a loaded row.
func (r *repository) UpdatePotion(ctx context.Context, record *models.Potion) error {
	return r.db.WithContext(ctx).
		Model(&models.Potion{}).
		Where("id = ?", record.ID).
		Select("crafted_outcome", "consumed_by", "consumed_at", "used_amount", "remaining_amount", "is_fully_consumed", "updated_at").
		Updates(record).Error
}

func (r *repository) UpdateScroll(ctx context.Context, record *models.SpellScroll) error {
	return r.db.WithContext(ctx).
		Model(&models.SpellScroll{}).
		Where("id = ?", record.ID).
		Select("consumed_by", "consumed_at", "used_amount", "remaining_amount", "is_fully_consumed", "updated_at").
		Updates(record).Error
}

func (r *repository) DeletePotion(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Potion{}, "id = ?", id).Error
}

func (r *repository) DeleteScroll(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.SpellScroll{}, "id = ?", id).Error
}

func (r *repository) CreateOwnership(ctx context.Context, userID uuid.UUID, kind enums.ItemKind, itemID uuid.UUID) error {
	if userID == uuid.Nil || itemID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	record := &models.ItemOwnership{
		ID:       uuid.New(),
		UserID:   userID,
		ItemKind: kind,
		ItemID:   itemID,
	}
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindOwnership(ctx context.Context, kind enums.ItemKind, itemID uuid.UUID) (*models.ItemOwnership, error) {
	var record models.ItemOwnership
	err := r.db.WithContext(ctx).
		First(&record, "item_kind = ? AND item_id = ?", kind, itemID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) ListOwnerships(ctx context.Context, userID uuid.UUID) ([]models.ItemOwnership, error) {
	var records []models.ItemOwnership
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) DeleteOwnership(ctx context.Context, kind enums.ItemKind, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("item_kind = ? AND item_id = ?", kind, itemID).
		Delete(&models.ItemOwnership{}).Error
}

func (r *repository) ListPotionsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Potion, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var records []models.Potion
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("crafted_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) ListScrollsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.SpellScroll, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var records []models.SpellScroll
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("crafted_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
