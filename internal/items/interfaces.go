package items

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/questforge/questledger-backend/internal/mastery"
	"github.com/questforge/questledger-backend/internal/treasury"
	"github.com/questforge/questledger-backend/pkg/db/models"
	"github.com/questforge/questledger-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository abstracts instance and ownership persistence so services can be
// tested without a database and rebound inside transactions.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreatePotion(ctx context.Context, record *models.Potion) error
	CreateScroll(ctx context.Context, record *models.SpellScroll) error
	FindPotionByID(ctx context.Context, id uuid.UUID) (*models.Potion, error)
	FindScrollByID(ctx context.Context, id uuid.UUID) (*models.SpellScroll, error)
	UpdatePotion(ctx context.Context, record *models.Potion) error
	UpdateScroll(ctx context.Context, record *models.SpellScroll) error
	DeletePotion(ctx context.Context, id uuid.UUID) error
	DeleteScroll(ctx context.Context, id uuid.UUID) error

	CreateOwnership(ctx context.Context, userID uuid.UUID, kind enums.ItemKind, itemID uuid.UUID) error
	FindOwnership(ctx context.Context, kind enums.ItemKind, itemID uuid.UUID) (*models.ItemOwnership, error)
	ListOwnerships(ctx context.Context, userID uuid.UUID) ([]models.ItemOwnership, error)
	DeleteOwnership(ctx context.Context, kind enums.ItemKind, itemID uuid.UUID) error

	ListPotionsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Potion, error)
	ListScrollsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.SpellScroll, error)
}

// TxRunner executes fn inside a database transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// TemplateCatalog is the read-only template lookup the item lifecycle needs.
type TemplateCatalog interface {
	FindPotionTemplateByID(ctx context.Context, id uuid.UUID) (*models.PotionTemplate, error)
	FindSpellTemplateByID(ctx context.Context, id uuid.UUID) (*models.SpellTemplate, error)
}

// MasteryLedger is the slice of the mastery repository the item lifecycle
// needs, rebindable into the enclosing transaction.
type MasteryLedger interface {
	ApplyAward(ctx context.Context, characterID uuid.UUID, potionTemplateID, spellTemplateID *uuid.UUID, points int, now time.Time) (*models.MasteryRecord, error)
	WithTx(tx *gorm.DB) MasteryLedger
}

// TreasuryLedger is the slice of the treasury repository sales need,
// rebindable into the enclosing transaction.
type TreasuryLedger interface {
	FindHouseByUserID(ctx context.Context, userID uuid.UUID) (*models.House, error)
	CreditGold(ctx context.Context, houseID uuid.UUID, amount int) error
	WithTx(tx *gorm.DB) TreasuryLedger
}

type masteryLedgerAdapter struct {
	repo *mastery.Repository
}

// NewMasteryLedger wraps the mastery repository for use inside item transactions.
func NewMasteryLedger(repo *mastery.Repository) MasteryLedger {
	return masteryLedgerAdapter{repo: repo}
}

func (a masteryLedgerAdapter) ApplyAward(ctx context.Context, characterID uuid.UUID, potionTemplateID, spellTemplateID *uuid.UUID, points int, now time.Time) (*models.MasteryRecord, error) {
	return a.repo.ApplyAward(ctx, characterID, potionTemplateID, spellTemplateID, points, now)
}

func (a masteryLedgerAdapter) WithTx(tx *gorm.DB) MasteryLedger {
	return masteryLedgerAdapter{repo: a.repo.WithTx(tx)}
}

type treasuryLedgerAdapter struct {
	repo *treasury.Repository
}

// NewTreasuryLedger wraps the treasury repository for use inside sale transactions.
func NewTreasuryLedger(repo *treasury.Repository) TreasuryLedger {
	return treasuryLedgerAdapter{repo: repo}
}

func (a treasuryLedgerAdapter) FindHouseByUserID(ctx context.Context, userID uuid.UUID) (*models.House, error) {
	return a.repo.FindHouseByUserID(ctx, userID)
}

func (a treasuryLedgerAdapter) CreditGold(ctx context.Context, houseID uuid.UUID, amount int) error {
	return a.repo.CreditGold(ctx, houseID, amount)
}

func (a treasuryLedgerAdapter) WithTx(tx *gorm.DB) TreasuryLedger {
	return treasuryLedgerAdapter{repo: a.repo.WithTx(tx)}
}
