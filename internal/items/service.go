package items

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/questforge/questledger-backend/internal/crafting"
	"github.com/questforge/questledger-backend/internal/mastery"
	"github.com/questforge/questledger-backend/pkg/db/models"
	"github.com/questforge/questledger-backend/pkg/enums"
	pkgerrors "github.com/questforge/questledger-backend/pkg/errors"
	"github.com/questforge/questledger-backend/pkg/logger"
	"github.com/questforge/questledger-backend/pkg/metrics"
	"gorm.io/gorm"
)

const fullItemLabel = "Full Item"

// ServiceParams groups dependencies for the item lifecycle service.
type ServiceParams struct {
	Tx        TxRunner
	Repo      Repository
	Templates TemplateCatalog
	Mastery   MasteryLedger
	Treasury  TreasuryLedger
	Metrics   *metrics.ItemMetrics
	Logger    *logger.Logger
	Now       func() time.Time
}

// Service exposes the item lifecycle: craft, inspect, consume, sell.
type Service interface {
	CraftPotion(ctx context.Context, userID uuid.UUID, input CraftPotionInput) (*InstanceDTO, error)
	CraftScroll(ctx context.Context, userID uuid.UUID, input CraftScrollInput) (*InstanceDTO, error)
	GetItem(ctx context.Context, userID uuid.UUID, kind enums.ItemKind, itemID uuid.UUID) (*InstanceDTO, error)
	ListItems(ctx context.Context, userID uuid.UUID) ([]InstanceDTO, error)
	Consume(ctx context.Context, userID uuid.UUID, kind enums.ItemKind, itemID uuid.UUID, input ConsumeInput) (*InstanceDTO, error)
	Sell(ctx context.Context, userID uuid.UUID, kind enums.ItemKind, itemID uuid.UUID, input SellInput) (*SellResultDTO, error)
}

type service struct {
	tx        TxRunner
	repo      Repository
	templates TemplateCatalog
	mastery   MasteryLedger
	treasury  TreasuryLedger
	metrics   *metrics.ItemMetrics
	logg      *logger.Logger
	now       func() time.Time
}

// NewService builds an item lifecycle service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tx runner is required")
	}
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "items repo is required")
	}
	if params.Templates == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "template catalog is required")
	}
	if params.Mastery == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "mastery ledger is required")
	}
	if params.Treasury == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "treasury ledger is required")
	}
	now := params.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &service{
		tx:        params.Tx,
		repo:      params.Repo,
		templates: params.Templates,
		mastery:   params.Mastery,
		treasury:  params.Treasury,
		metrics:   params.Metrics,
		logg:      params.Logger,
		now:       now,
	}, nil
}

// CraftPotion validates the craft, creates the instance with its ownership
// link, and scores mastery for known outcomes, all in one transaction.
func (s *service) CraftPotion(ctx context.Context, userID uuid.UUID, input CraftPotionInput) (*InstanceDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := crafting.ValidateCraftedBy(input.CraftedBy); err != nil {
		return nil, err
	}
	if err := crafting.ValidateCraftOutcome(input.Outcome); err != nil {
		return nil, err
	}
	if err := crafting.ValidateWeight(input.Weight); err != nil {
		return nil, err
	}
	if err := crafting.ValidateCrafterAttribution(input.CrafterCharacterID != nil, input.CrafterRole, input.SupervisorCharacterID != nil); err != nil {
		return nil, err
	}
	if input.CraftedAt.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Craft date is required")
	}

	template, err := s.loadPotionTemplate(ctx, input.TemplateID)
	if err != nil {
		return nil, err
	}

	record := &models.Potion{
		ID:                    uuid.New(),
		TemplateID:            template.ID,
		CraftedBy:             strings.TrimSpace(input.CraftedBy),
		CraftedAt:             input.CraftedAt,
		CraftedOutcome:        input.Outcome,
		CrafterCharacterID:    input.CrafterCharacterID,
		CrafterRole:           input.CrafterRole,
		SupervisorCharacterID: input.SupervisorCharacterID,
		Weight:                input.Weight.Decimal,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.CreatePotion(ctx, record); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create potion")
		}
		if err := repo.CreateOwnership(ctx, userID, enums.ItemKindPotion, record.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create ownership")
		}
		// success_unknown defers scoring to consumption
		if input.Outcome != enums.CraftOutcomeSuccessUnknown {
			if err := s.awardCraftMastery(ctx, tx, record.CrafterCharacterID, record.CrafterRole, record.SupervisorCharacterID, &template.ID, nil, input.Outcome); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncCrafted(enums.ItemKindPotion.String(), input.Outcome.String())
	dto := toPotionDTO(record)
	return &dto, nil
}

// CraftScroll enforces the level gate, creates the instance with its
// ownership link, and awards the success-equivalent mastery point.
func (s *service) CraftScroll(ctx context.Context, userID uuid.UUID, input CraftScrollInput) (*InstanceDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := crafting.ValidateCraftedBy(input.CraftedBy); err != nil {
		return nil, err
	}
	if err := crafting.ValidateWeight(input.Weight); err != nil {
		return nil, err
	}
	if err := crafting.ValidateCrafterAttribution(input.CrafterCharacterID != nil, input.CrafterRole, input.SupervisorCharacterID != nil); err != nil {
		return nil, err
	}
	if input.CraftedAt.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Craft date is required")
	}

	template, err := s.loadSpellTemplate(ctx, input.TemplateID)
	if err != nil {
		return nil, err
	}
	if err := crafting.ValidateScrollLevel(template.SpellLevel, input.CrafterLevel); err != nil {
		return nil, err
	}

	record := &models.SpellScroll{
		ID:                    uuid.New(),
		TemplateID:            template.ID,
		CraftedBy:             strings.TrimSpace(input.CraftedBy),
		CraftedAt:             input.CraftedAt,
		CrafterCharacterID:    input.CrafterCharacterID,
		CrafterRole:           input.CrafterRole,
		SupervisorCharacterID: input.SupervisorCharacterID,
		Weight:                input.Weight.Decimal,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.CreateScroll(ctx, record); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create scroll")
		}
		if err := repo.CreateOwnership(ctx, userID, enums.ItemKindScroll, record.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create ownership")
		}
		// scrolls track no outcome; scribing scores as a plain success
		return s.awardCraftMastery(ctx, tx, record.CrafterCharacterID, record.CrafterRole, record.SupervisorCharacterID, nil, &template.ID, enums.CraftOutcomeSuccess)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncCrafted(enums.ItemKindScroll.String(), "none")
	dto := toScrollDTO(record)
	return &dto, nil
}

// GetItem returns a single owned instance. Instances owned by someone else
// are indistinguishable from nonexistent ones.
func (s *service) GetItem(ctx context.Context, userID uuid.UUID, kind enums.ItemKind, itemID uuid.UUID) (*InstanceDTO, error) {
	if err := validateItemRef(userID, kind, itemID); err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, s.repo, userID, kind, itemID); err != nil {
		return nil, err
	}
	return s.loadInstance(ctx, s.repo, kind, itemID)
}

// ListItems returns every instance the caller owns, potions and scrolls.
func (s *service) ListItems(ctx context.Context, userID uuid.UUID) ([]InstanceDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	ownerships, err := s.repo.ListOwnerships(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list ownerships")
	}

	var potionIDs, scrollIDs []uuid.UUID
	for _, o := range ownerships {
		switch o.ItemKind {
		case enums.ItemKindPotion:
			potionIDs = append(potionIDs, o.ItemID)
		case enums.ItemKindScroll:
			scrollIDs = append(scrollIDs, o.ItemID)
		}
	}

	potions, err := s.repo.ListPotionsByIDs(ctx, potionIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list potions")
	}
	scrolls, err := s.repo.ListScrollsByIDs(ctx, scrollIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list scrolls")
	}

	out := make([]InstanceDTO, 0, len(potions)+len(scrolls))
	for i := range potions {
		out = append(out, toPotionDTO(&potions[i]))
	}
	for i := range scrolls {
		out = append(out, toScrollDTO(&scrolls[i]))
	}
	return out, nil
}

// Consume applies a consumption event: outcome resolution first, then the
// state transition, then deferred mastery scoring, in one transaction.
func (s *service) Consume(ctx context.Context, userID uuid.UUID, kind enums.ItemKind, itemID uuid.UUID, input ConsumeInput) (*InstanceDTO, error) {
	if err := validateItemRef(userID, kind, itemID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.ConsumerName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Consumer name is required")
	}
	if input.ConsumedAt == nil || input.ConsumedAt.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Consumption date is required")
	}

	var dto InstanceDTO
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := s.checkOwnership(ctx, repo, userID, kind, itemID); err != nil {
			return err
		}

		switch kind {
		case enums.ItemKindPotion:
			record, err := repo.FindPotionByID(ctx, itemID)
			if err != nil {
				return s.instanceLoadError(kind, err)
			}
			template, err := s.loadPotionTemplateAny(ctx, record.TemplateID)
			if err != nil {
				return err
			}
			updated, err := s.consumePotion(ctx, tx, repo, record, template, input)
			if err != nil {
				return err
			}
			dto = toPotionDTO(updated)
		case enums.ItemKindScroll:
			record, err := repo.FindScrollByID(ctx, itemID)
			if err != nil {
				return s.instanceLoadError(kind, err)
			}
			updated, err := s.consumeScroll(ctx, repo, record, input)
			if err != nil {
				return err
			}
			dto = toScrollDTO(updated)
		default:
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid item kind %q", kind))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncConsumed(kind.String())
	return &dto, nil
}

func (s *service) consumePotion(ctx context.Context, tx *gorm.DB, repo Repository, record *models.Potion, template *models.PotionTemplate, input ConsumeInput) (*models.Potion, error) {
	if record.IsFullyConsumed || (record.ConsumedBy != nil && template.SplitAmount == nil) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "Potion has already been consumed")
	}

	wasUnresolved := record.CraftedOutcome == enums.CraftOutcomeSuccessUnknown
	resolvedNow := false
	if input.ActualOutcome != nil && wasUnresolved {
		if !input.ActualOutcome.IsResolution() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid actual potency for unknown success potion")
		}
		record.CraftedOutcome = *input.ActualOutcome
		resolvedNow = true
	}

	becomesFull := applyConsumption(
		&record.ConsumedBy, &record.ConsumedAt, &record.UsedAmount, &record.RemainingAmount, &record.IsFullyConsumed,
		template.SplitAmount, input,
	)

	// deferred scoring fires once: on resolution, or at full consumption of
	// a potion that never got resolved (success_unknown scores 1)
	if wasUnresolved && (resolvedNow || becomesFull) {
		if err := s.awardCraftMastery(ctx, tx, record.CrafterCharacterID, record.CrafterRole, record.SupervisorCharacterID, &record.TemplateID, nil, record.CraftedOutcome); err != nil {
			return nil, err
		}
	}

	record.UpdatedAt = s.now()
	if err := repo.UpdatePotion(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update potion")
	}
	return record, nil
}

func (s *service) consumeScroll(ctx context.Context, repo Repository, record *models.SpellScroll, input ConsumeInput) (*models.SpellScroll, error) {
	// scrolls have no split templates today; consumption is always terminal
	if record.IsFullyConsumed || record.ConsumedBy != nil {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "Scroll has already been consumed")
	}

	applyConsumption(
		&record.ConsumedBy, &record.ConsumedAt, &record.UsedAmount, &record.RemainingAmount, &record.IsFullyConsumed,
		nil, input,
	)

	record.UpdatedAt = s.now()
	if err := repo.UpdateScroll(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update scroll")
	}
	return record, nil
}

// applyConsumption mutates the instance fields for one consumption event and
// reports whether the instance became fully consumed.
func applyConsumption(consumedBy **string, consumedAt **time.Time, usedAmount, remainingAmount **string, isFullyConsumed *bool, splitAmount *string, input ConsumeInput) bool {
	name := strings.TrimSpace(input.ConsumerName)

	if splitAmount != nil && !input.FullConsumption {
		used := splitAmount
		if input.AmountUsed != nil {
			used = input.AmountUsed
		}
		*usedAmount = used
		*remainingAmount = splitAmount
		// first-consumption-wins
		if *consumedBy == nil {
			*consumedBy = &name
			*consumedAt = input.ConsumedAt
		}
		return false
	}

	*consumedBy = &name
	if *consumedAt == nil {
		*consumedAt = input.ConsumedAt
	}
	*isFullyConsumed = true
	if splitAmount != nil {
		*usedAmount = splitAmount
	} else {
		full := fullItemLabel
		*usedAmount = &full
	}
	*remainingAmount = nil
	return true
}

// Sell retires an instance: ownership check, consumed check, optional
// treasury credit, then deletion of link and instance in one transaction.
func (s *service) Sell(ctx context.Context, userID uuid.UUID, kind enums.ItemKind, itemID uuid.UUID, input SellInput) (*SellResultDTO, error) {
	if err := validateItemRef(userID, kind, itemID); err != nil {
		return nil, err
	}
	if input.SellPrice < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Sell price must be a non-negative integer")
	}

	credited := false
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := s.checkOwnership(ctx, repo, userID, kind, itemID); err != nil {
			return err
		}

		consumedBy, usedAmount, fullyConsumed, err := s.loadSaleState(ctx, repo, kind, itemID)
		if err != nil {
			return err
		}
		// partially consumed split items with a documented used amount stay sellable
		if fullyConsumed || (consumedBy != nil && usedAmount == nil) {
			return pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("%s has already been consumed", kind.Label()))
		}

		if input.CreditTreasury && input.SellPrice > 0 {
			ledger := s.treasury.WithTx(tx)
			house, err := ledger.FindHouseByUserID(ctx, userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "No house found for user")
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load house")
			}
			if err := ledger.CreditGold(ctx, house.ID, input.SellPrice); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "credit treasury")
			}
			credited = true
		}

		if err := repo.DeleteOwnership(ctx, kind, itemID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete ownership")
		}
		switch kind {
		case enums.ItemKindPotion:
			if err := repo.DeletePotion(ctx, itemID); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete potion")
			}
		case enums.ItemKindScroll:
			if err := repo.DeleteScroll(ctx, itemID); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete scroll")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncSold(kind.String())
	if credited {
		s.metrics.AddTreasuryCredit(input.SellPrice)
	}
	return &SellResultDTO{
		ItemID:           itemID,
		Kind:             kind,
		SoldPrice:        input.SellPrice,
		TreasuryCredited: credited,
	}, nil
}

func (s *service) loadSaleState(ctx context.Context, repo Repository, kind enums.ItemKind, itemID uuid.UUID) (consumedBy, usedAmount *string, fullyConsumed bool, err error) {
	switch kind {
	case enums.ItemKindPotion:
		record, ferr := repo.FindPotionByID(ctx, itemID)
		if ferr != nil {
			return nil, nil, false, s.instanceLoadError(kind, ferr)
		}
		return record.ConsumedBy, record.UsedAmount, record.IsFullyConsumed, nil
	case enums.ItemKindScroll:
		record, ferr := repo.FindScrollByID(ctx, itemID)
		if ferr != nil {
			return nil, nil, false, s.instanceLoadError(kind, ferr)
		}
		return record.ConsumedBy, record.UsedAmount, record.IsFullyConsumed, nil
	default:
		return nil, nil, false, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid item kind %q", kind))
	}
}

// awardCraftMastery scores the crafter and, for supervised subordinate
// crafts, the supervisor at full value.
func (s *service) awardCraftMastery(ctx context.Context, tx *gorm.DB, crafterCharacterID *uuid.UUID, role *enums.CrafterRole, supervisorCharacterID *uuid.UUID, potionTemplateID, spellTemplateID *uuid.UUID, outcome enums.CraftOutcome) error {
	ledger := s.mastery.WithTx(tx)
	now := s.now()

	if crafterCharacterID != nil {
		crafterRole := enums.CrafterRoleDirect
		if role != nil {
			crafterRole = *role
		}
		points := mastery.PointsFor(outcome, crafterRole)
		if points > 0 {
			if _, err := ledger.ApplyAward(ctx, *crafterCharacterID, potionTemplateID, spellTemplateID, points, now); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "award crafter mastery")
			}
		}
	}

	if supervisorCharacterID != nil {
		points := mastery.PointsFor(outcome, enums.CrafterRoleSupervisor)
		if points > 0 {
			if _, err := ledger.ApplyAward(ctx, *supervisorCharacterID, potionTemplateID, spellTemplateID, points, now); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "award supervisor mastery")
			}
		}
	}
	return nil
}

func (s *service) checkOwnership(ctx context.Context, repo Repository, userID uuid.UUID, kind enums.ItemKind, itemID uuid.UUID) error {
	ownership, err := repo.FindOwnership(ctx, kind, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.notOwnedError(kind)
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load ownership")
	}
	if ownership.UserID != userID {
		return s.notOwnedError(kind)
	}
	return nil
}

func (s *service) notOwnedError(kind enums.ItemKind) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("%s not found or not owned by user", kind.Label()))
}

func (s *service) instanceLoadError(kind enums.ItemKind, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.notOwnedError(kind)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load instance")
}

func (s *service) loadInstance(ctx context.Context, repo Repository, kind enums.ItemKind, itemID uuid.UUID) (*InstanceDTO, error) {
	switch kind {
	case enums.ItemKindPotion:
		record, err := repo.FindPotionByID(ctx, itemID)
		if err != nil {
			return nil, s.instanceLoadError(kind, err)
		}
		dto := toPotionDTO(record)
		return &dto, nil
	case enums.ItemKindScroll:
		record, err := repo.FindScrollByID(ctx, itemID)
		if err != nil {
			return nil, s.instanceLoadError(kind, err)
		}
		dto := toScrollDTO(record)
		return &dto, nil
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid item kind %q", kind))
	}
}

// loadPotionTemplate applies the catalog visibility gate for crafting.
func (s *service) loadPotionTemplate(ctx context.Context, id uuid.UUID) (*models.PotionTemplate, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "template id is required")
	}
	template, err := s.templates.FindPotionTemplateByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Potion template not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load potion template")
	}
	if !template.IsDiscovered {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Potion template not found")
	}
	return template, nil
}

// loadPotionTemplateAny skips the visibility gate; consumption of an already
// owned instance must work even if the template was un-discovered later.
func (s *service) loadPotionTemplateAny(ctx context.Context, id uuid.UUID) (*models.PotionTemplate, error) {
	template, err := s.templates.FindPotionTemplateByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Potion template not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load potion template")
	}
	return template, nil
}

func (s *service) loadSpellTemplate(ctx context.Context, id uuid.UUID) (*models.SpellTemplate, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "template id is required")
	}
	template, err := s.templates.FindSpellTemplateByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Spell template not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load spell template")
	}
	if !template.IsDiscovered {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Spell template not found")
	}
	return template, nil
}

func validateItemRef(userID uuid.UUID, kind enums.ItemKind, itemID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if !kind.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid item kind %q", kind))
	}
	if itemID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	}
	return nil
}

func instanceStatus(consumedBy *string, fullyConsumed bool) string {
	switch {
	case fullyConsumed:
		return StatusFullyConsumed
	case consumedBy != nil:
		return StatusPartiallyConsumed
	default:
		return StatusOwned
	}
}

func toPotionDTO(record *models.Potion) InstanceDTO {
	outcome := record.CraftedOutcome
	return InstanceDTO{
		ID:                    record.ID,
		Kind:                  enums.ItemKindPotion,
		TemplateID:            record.TemplateID,
		Status:                instanceStatus(record.ConsumedBy, record.IsFullyConsumed),
		CraftedBy:             record.CraftedBy,
		CraftedAt:             record.CraftedAt,
		CraftedOutcome:        &outcome,
		CrafterCharacterID:    record.CrafterCharacterID,
		CrafterRole:           record.CrafterRole,
		SupervisorCharacterID: record.SupervisorCharacterID,
		ConsumedBy:            record.ConsumedBy,
		ConsumedAt:            record.ConsumedAt,
		UsedAmount:            record.UsedAmount,
		RemainingAmount:       record.RemainingAmount,
		IsFullyConsumed:       record.IsFullyConsumed,
		Weight:                record.Weight,
		CreatedAt:             record.CreatedAt,
		UpdatedAt:             record.UpdatedAt,
	}
}

func toScrollDTO(record *models.SpellScroll) InstanceDTO {
	return InstanceDTO{
		ID:                    record.ID,
		Kind:                  enums.ItemKindScroll,
		TemplateID:            record.TemplateID,
		Status:                instanceStatus(record.ConsumedBy, record.IsFullyConsumed),
		CraftedBy:             record.CraftedBy,
		CraftedAt:             record.CraftedAt,
		CrafterCharacterID:    record.CrafterCharacterID,
		CrafterRole:           record.CrafterRole,
		SupervisorCharacterID: record.SupervisorCharacterID,
		ConsumedBy:            record.ConsumedBy,
		ConsumedAt:            record.ConsumedAt,
		UsedAmount:            record.UsedAmount,
		RemainingAmount:       record.RemainingAmount,
		IsFullyConsumed:       record.IsFullyConsumed,
		Weight:                record.Weight,
		CreatedAt:             record.CreatedAt,
		UpdatedAt:             record.UpdatedAt,
	}
}
