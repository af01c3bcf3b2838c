package items

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/questforge/questledger-backend/pkg/db/models"
	"github.com/questforge/questledger-backend/pkg/enums"
	pkgerrors "github.com/questforge/questledger-backend/pkg/errors"
	"github.com/questforge/questledger-backend/pkg/types"
	"gorm.io/gorm"
)

var (
	testNow     = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	testCraftAt = time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC)
)

type fixture struct {
	svc       Service
	repo      *stubItemsRepo
	templates *stubTemplateCatalog
	mastery   *stubMasteryLedger
	treasury  *stubTreasuryLedger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newStubItemsRepo()
	templates := &stubTemplateCatalog{
		potions: map[uuid.UUID]*models.PotionTemplate{},
		spells:  map[uuid.UUID]*models.SpellTemplate{},
	}
	masteryLedger := &stubMasteryLedger{}
	treasuryLedger := &stubTreasuryLedger{}

	svc, err := NewService(ServiceParams{
		Tx:        stubTxRunner{},
		Repo:      repo,
		Templates: templates,
		Mastery:   masteryLedger,
		Treasury:  treasuryLedger,
		Now:       func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return &fixture{svc: svc, repo: repo, templates: templates, mastery: masteryLedger, treasury: treasuryLedger}
}

func (f *fixture) addPotionTemplate(t *testing.T, splitAmount *string, discovered bool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	f.templates.potions[id] = &models.PotionTemplate{
		ID:           id,
		Name:         "Test Brew",
		SplitAmount:  splitAmount,
		IsDiscovered: discovered,
	}
	return id
}

func (f *fixture) addSpellTemplate(t *testing.T, level int, discovered bool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	f.templates.spells[id] = &models.SpellTemplate{
		ID:           id,
		Name:         "Test Spell",
		SpellLevel:   level,
		IsDiscovered: discovered,
	}
	return id
}

func testWeight(t *testing.T, raw string) types.FlexDecimal {
	t.Helper()
	var w types.FlexDecimal
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		t.Fatalf("unmarshal weight %q: %v", raw, err)
	}
	return w
}

func craftPotion(t *testing.T, f *fixture, userID uuid.UUID, templateID uuid.UUID, outcome enums.CraftOutcome, crafterID *uuid.UUID, role *enums.CrafterRole, supervisorID *uuid.UUID) *InstanceDTO {
	t.Helper()
	dto, err := f.svc.CraftPotion(context.Background(), userID, CraftPotionInput{
		TemplateID:            templateID,
		CraftedBy:             "Mirelle",
		CraftedAt:             testCraftAt,
		Outcome:               outcome,
		Weight:                testWeight(t, `"0.5"`),
		CrafterCharacterID:    crafterID,
		CrafterRole:           role,
		SupervisorCharacterID: supervisorID,
	})
	if err != nil {
		t.Fatalf("craft potion: %v", err)
	}
	return dto
}

func TestCraftPotionCreatesInstanceAndOwnership(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	templateID := f.addPotionTemplate(t, nil, true)

	dto := craftPotion(t, f, userID, templateID, enums.CraftOutcomeSuccess, nil, nil, nil)

	if dto.Status != StatusOwned {
		t.Fatalf("expected owned instance, got %s", dto.Status)
	}
	if dto.IsFullyConsumed || dto.ConsumedBy != nil {
		t.Fatal("fresh instance must be unconsumed")
	}
	ownership, ok := f.repo.ownerships[ownKey(enums.ItemKindPotion, dto.ID)]
	if !ok {
		t.Fatal("ownership link not created")
	}
	if ownership.UserID != userID {
		t.Fatal("ownership linked to wrong user")
	}
}

func TestCraftPotionKnownOutcomeAwardsAtCraft(t *testing.T) {
	f := newFixture(t)
	crafterID := uuid.New()
	role := enums.CrafterRoleDirect
	templateID := f.addPotionTemplate(t, nil, true)

	craftPotion(t, f, uuid.New(), templateID, enums.CraftOutcomeCriticalSuccess, &crafterID, &role, nil)

	if len(f.mastery.awards) != 1 {
		t.Fatalf("expected one award, got %d", len(f.mastery.awards))
	}
	award := f.mastery.awards[0]
	if award.characterID != crafterID || award.points != 2 {
		t.Fatalf("unexpected award %+v", award)
	}
	if award.potionTemplateID == nil || *award.potionTemplateID != templateID {
		t.Fatal("award must target the potion template")
	}
}

func TestCraftPotionSubordinateWithSupervisor(t *testing.T) {
	f := newFixture(t)
	crafterID := uuid.New()
	supervisorID := uuid.New()
	role := enums.CrafterRoleSubordinate
	templateID := f.addPotionTemplate(t, nil, true)

	craftPotion(t, f, uuid.New(), templateID, enums.CraftOutcomeCriticalSuccess, &crafterID, &role, &supervisorID)

	if len(f.mastery.awards) != 2 {
		t.Fatalf("expected two awards, got %d", len(f.mastery.awards))
	}
	byCharacter := map[uuid.UUID]int{}
	for _, award := range f.mastery.awards {
		byCharacter[award.characterID] = award.points
	}
	if byCharacter[crafterID] != 1 {
		t.Fatalf("subordinate should earn 1, got %d", byCharacter[crafterID])
	}
	if byCharacter[supervisorID] != 2 {
		t.Fatalf("supervisor always earns the full value, got %d", byCharacter[supervisorID])
	}
}

func TestCraftPotionSuccessUnknownDefersScoring(t *testing.T) {
	f := newFixture(t)
	crafterID := uuid.New()
	templateID := f.addPotionTemplate(t, nil, true)

	craftPotion(t, f, uuid.New(), templateID, enums.CraftOutcomeSuccessUnknown, &crafterID, nil, nil)

	if len(f.mastery.awards) != 0 {
		t.Fatalf("success_unknown must not score at craft, got %d awards", len(f.mastery.awards))
	}
}

func TestCraftPotionFailAwardsNothing(t *testing.T) {
	f := newFixture(t)
	crafterID := uuid.New()
	templateID := f.addPotionTemplate(t, nil, true)

	craftPotion(t, f, uuid.New(), templateID, enums.CraftOutcomeFail, &crafterID, nil, nil)

	if len(f.mastery.awards) != 0 {
		t.Fatalf("fail outcome must award nothing, got %d awards", len(f.mastery.awards))
	}
}

func TestCraftPotionUndiscoveredTemplateIsNotFound(t *testing.T) {
	f := newFixture(t)
	templateID := f.addPotionTemplate(t, nil, false)

	_, err := f.svc.CraftPotion(context.Background(), uuid.New(), CraftPotionInput{
		TemplateID: templateID,
		CraftedBy:  "Mirelle",
		CraftedAt:  testCraftAt,
		Outcome:    enums.CraftOutcomeSuccess,
		Weight:     testWeight(t, `1`),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for undiscovered template, got %v", err)
	}
}

func TestCraftScrollLevelGate(t *testing.T) {
	f := newFixture(t)
	templateID := f.addSpellTemplate(t, 4, true)

	_, err := f.svc.CraftScroll(context.Background(), uuid.New(), CraftScrollInput{
		TemplateID:   templateID,
		CraftedBy:    "Thal",
		CraftedAt:    testCraftAt,
		CrafterLevel: 2,
		Weight:       testWeight(t, `0.1`),
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	want := "Cannot craft level 4 spell with crafter level 2. Maximum craftable: level 3"
	if typed.Message() != want {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestCraftScrollAwardsSuccessPoint(t *testing.T) {
	f := newFixture(t)
	crafterID := uuid.New()
	templateID := f.addSpellTemplate(t, 2, true)

	dto, err := f.svc.CraftScroll(context.Background(), uuid.New(), CraftScrollInput{
		TemplateID:         templateID,
		CraftedBy:          "Thal",
		CraftedAt:          testCraftAt,
		CrafterLevel:       3,
		Weight:             testWeight(t, `0.1`),
		CrafterCharacterID: &crafterID,
	})
	if err != nil {
		t.Fatalf("craft scroll: %v", err)
	}
	if dto.CraftedOutcome != nil {
		t.Fatal("scrolls carry no outcome")
	}
	if len(f.mastery.awards) != 1 {
		t.Fatalf("expected one award, got %d", len(f.mastery.awards))
	}
	award := f.mastery.awards[0]
	if award.points != 1 {
		t.Fatalf("scribing scores as a plain success, got %d", award.points)
	}
	if award.spellTemplateID == nil || *award.spellTemplateID != templateID {
		t.Fatal("award must target the spell template")
	}
}

func TestConsumeValidation(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	templateID := f.addPotionTemplate(t, nil, true)
	dto := craftPotion(t, f, userID, templateID, enums.CraftOutcomeSuccess, nil, nil, nil)

	consumedAt := testNow
	_, err := f.svc.Consume(context.Background(), userID, enums.ItemKindPotion, dto.ID, ConsumeInput{
		ConsumerName: "   ",
		ConsumedAt:   &consumedAt,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Message() != "Consumer name is required" {
		t.Fatalf("expected consumer name rejection, got %v", err)
	}

	_, err = f.svc.Consume(context.Background(), userID, enums.ItemKindPotion, dto.ID, ConsumeInput{
		ConsumerName: "Aragorn",
	})
	typed = pkgerrors.As(err)
	if typed == nil || typed.Message() != "Consumption date is required" {
		t.Fatalf("expected consumption date rejection, got %v", err)
	}
}

func TestConsumeNonSplitPotionIsTerminal(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	templateID := f.addPotionTemplate(t, nil, true)
	dto := craftPotion(t, f, userID, templateID, enums.CraftOutcomeSuccess, nil, nil, nil)

	consumedAt := testNow
	updated, err := f.svc.Consume(context.Background(), userID, enums.ItemKindPotion, dto.ID, ConsumeInput{
		ConsumerName: "Aragorn",
		ConsumedAt:   &consumedAt,
	})
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if !updated.IsFullyConsumed {
		t.Fatal("non-split consumption must be terminal")
	}
	if updated.ConsumedBy == nil || *updated.ConsumedBy != "Aragorn" {
		t.Fatalf("unexpected consumed_by %v", updated.ConsumedBy)
	}
	if updated.UsedAmount == nil || *updated.UsedAmount != fullItemLabel {
		t.Fatalf("expected %q used amount, got %v", fullItemLabel, updated.UsedAmount)
	}
	if updated.RemainingAmount != nil {
		t.Fatal("remaining amount must be cleared")
	}
	if updated.Status != StatusFullyConsumed {
		t.Fatalf("unexpected status %s", updated.Status)
	}

	_, err = f.svc.Consume(context.Background(), userID, enums.ItemKindPotion, dto.ID, ConsumeInput{
		ConsumerName: "Boromir",
		ConsumedAt:   &consumedAt,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
	if typed.Message() != "Potion has already been consumed" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestPartialConsumptionFirstWins(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	split := "3 Doses"
	templateID := f.addPotionTemplate(t, &split, true)
	dto := craftPotion(t, f, userID, templateID, enums.CraftOutcomeSuccess, nil, nil, nil)

	firstAt := testNow
	first, err := f.svc.Consume(context.Background(), userID, enums.ItemKindPotion, dto.ID, ConsumeInput{
		ConsumerName: "Aragorn",
		ConsumedAt:   &firstAt,
	})
	if err != nil {
		t.Fatalf("first partial: %v", err)
	}
	if first.IsFullyConsumed {
		t.Fatal("partial consumption must not be terminal")
	}
	if first.Status != StatusPartiallyConsumed {
		t.Fatalf("unexpected status %s", first.Status)
	}
	if first.UsedAmount == nil || *first.UsedAmount != split {
		t.Fatalf("default used amount should be the split label, got %v", first.UsedAmount)
	}
	if first.RemainingAmount == nil || *first.RemainingAmount != split {
		t.Fatalf("remaining is the coarse split label, got %v", first.RemainingAmount)
	}

	secondAt := testNow.Add(time.Hour)
	amount := "1 Dose"
	second, err := f.svc.Consume(context.Background(), userID, enums.ItemKindPotion, dto.ID, ConsumeInput{
		ConsumerName: "Boromir",
		ConsumedAt:   &secondAt,
		AmountUsed:   &amount,
	})
	if err != nil {
		t.Fatalf("second partial: %v", err)
	}
	if second.ConsumedBy == nil || *second.ConsumedBy != "Aragorn" {
		t.Fatalf("consumed_by must not be overwritten, got %v", second.ConsumedBy)
	}
	if second.ConsumedAt == nil || !second.ConsumedAt.Equal(firstAt) {
		t.Fatalf("consumed_at must not be overwritten, got %v", second.ConsumedAt)
	}
	if second.UsedAmount == nil || *second.UsedAmount != amount {
		t.Fatalf("used amount should track the latest event, got %v", second.UsedAmount)
	}
}

func TestOutcomeResolutionRejectsNonSuccess(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	templateID := f.addPotionTemplate(t, nil, true)
	dto := craftPotion(t, f, userID, templateID, enums.CraftOutcomeSuccessUnknown, nil, nil, nil)

	consumedAt := testNow
	bad := enums.CraftOutcomeFail
	_, err := f.svc.Consume(context.Background(), userID, enums.ItemKindPotion, dto.ID, ConsumeInput{
		ConsumerName:  "Aragorn",
		ConsumedAt:    &consumedAt,
		ActualOutcome: &bad,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Message() != "Invalid actual potency for unknown success potion" {
		t.Fatalf("expected resolution rejection, got %v", err)
	}
}

func TestOutcomeResolutionOverwritesBeforeScoring(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	crafterID := uuid.New()
	templateID := f.addPotionTemplate(t, nil, true)
	dto := craftPotion(t, f, userID, templateID, enums.CraftOutcomeSuccessUnknown, &crafterID, nil, nil)

	consumedAt := testNow
	resolved := enums.CraftOutcomeCriticalSuccess
	updated, err := f.svc.Consume(context.Background(), userID, enums.ItemKindPotion, dto.ID, ConsumeInput{
		ConsumerName:  "Aragorn",
		ConsumedAt:    &consumedAt,
		ActualOutcome: &resolved,
	})
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if updated.CraftedOutcome == nil || *updated.CraftedOutcome != enums.CraftOutcomeCriticalSuccess {
		t.Fatalf("resolution must overwrite the outcome, got %v", updated.CraftedOutcome)
	}
	if len(f.mastery.awards) != 1 {
		t.Fatalf("expected one deferred award, got %d", len(f.mastery.awards))
	}
	if f.mastery.awards[0].points != 2 {
		t.Fatalf("scoring must use the resolved outcome, got %d points", f.mastery.awards[0].points)
	}
}

func TestUnresolvedFullConsumptionScoresAsSuccessEquivalent(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	crafterID := uuid.New()
	templateID := f.addPotionTemplate(t, nil, true)
	dto := craftPotion(t, f, userID, templateID, enums.CraftOutcomeSuccessUnknown, &crafterID, nil, nil)

	consumedAt := testNow
	_, err := f.svc.Consume(context.Background(), userID, enums.ItemKindPotion, dto.ID, ConsumeInput{
		ConsumerName: "Aragorn",
		ConsumedAt:   &consumedAt,
	})
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if len(f.mastery.awards) != 1 {
		t.Fatalf("expected one award at terminal consumption, got %d", len(f.mastery.awards))
	}
	if f.mastery.awards[0].points != 1 {
		t.Fatalf("success_unknown scores 1, got %d", f.mastery.awards[0].points)
	}
}

func TestConsumeAcceptsDateBeforeCraft(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	templateID := f.addPotionTemplate(t, nil, true)
	dto := craftPotion(t, f, userID, templateID, enums.CraftOutcomeSuccess, nil, nil, nil)

	before := testCraftAt.Add(-48 * time.Hour)
	if _, err := f.svc.Consume(context.Background(), userID, enums.ItemKindPotion, dto.ID, ConsumeInput{
		ConsumerName: "Aragorn",
		ConsumedAt:   &before,
	}); err != nil {
		t.Fatalf("pre-craft consumption dates are accepted: %v", err)
	}
}

func TestGetItemOwnershipFilter(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()
	stranger := uuid.New()
	templateID := f.addPotionTemplate(t, nil, true)
	dto := craftPotion(t, f, owner, templateID, enums.CraftOutcomeSuccess, nil, nil, nil)

	if _, err := f.svc.GetItem(context.Background(), owner, enums.ItemKindPotion, dto.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}

	_, err := f.svc.GetItem(context.Background(), stranger, enums.ItemKindPotion, dto.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("stranger must see not-found, got %v", err)
	}
	if !strings.Contains(typed.Message(), "not found or not owned") {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestListItemsScopesToCaller(t *testing.T) {
	f := newFixture(t)
	alice := uuid.New()
	bob := uuid.New()
	potionTemplate := f.addPotionTemplate(t, nil, true)
	spellTemplate := f.addSpellTemplate(t, 1, true)

	craftPotion(t, f, alice, potionTemplate, enums.CraftOutcomeSuccess, nil, nil, nil)
	if _, err := f.svc.CraftScroll(context.Background(), alice, CraftScrollInput{
		TemplateID:   spellTemplate,
		CraftedBy:    "Thal",
		CraftedAt:    testCraftAt,
		CrafterLevel: 1,
		Weight:       testWeight(t, `0.1`),
	}); err != nil {
		t.Fatalf("craft scroll: %v", err)
	}
	craftPotion(t, f, bob, potionTemplate, enums.CraftOutcomeSuccess, nil, nil, nil)

	listed, err := f.svc.ListItems(context.Background(), alice)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected alice's 2 items, got %d", len(listed))
	}
}

func TestSellRejectsNegativePrice(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	templateID := f.addPotionTemplate(t, nil, true)
	dto := craftPotion(t, f, userID, templateID, enums.CraftOutcomeSuccess, nil, nil, nil)

	_, err := f.svc.Sell(context.Background(), userID, enums.ItemKindPotion, dto.ID, SellInput{SellPrice: -1})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSellRejectsFullyConsumed(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	templateID := f.addPotionTemplate(t, nil, true)
	dto := craftPotion(t, f, userID, templateID, enums.CraftOutcomeSuccess, nil, nil, nil)

	consumedAt := testNow
	if _, err := f.svc.Consume(context.Background(), userID, enums.ItemKindPotion, dto.ID, ConsumeInput{
		ConsumerName: "Aragorn",
		ConsumedAt:   &consumedAt,
	}); err != nil {
		t.Fatalf("consume: %v", err)
	}

	_, err := f.svc.Sell(context.Background(), userID, enums.ItemKindPotion, dto.ID, SellInput{SellPrice: 10})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestSellPartiallyConsumedSplitItemSucceeds(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	split := "3 Doses"
	templateID := f.addPotionTemplate(t, &split, true)
	dto := craftPotion(t, f, userID, templateID, enums.CraftOutcomeSuccess, nil, nil, nil)

	consumedAt := testNow
	if _, err := f.svc.Consume(context.Background(), userID, enums.ItemKindPotion, dto.ID, ConsumeInput{
		ConsumerName: "Aragorn",
		ConsumedAt:   &consumedAt,
	}); err != nil {
		t.Fatalf("partial consume: %v", err)
	}

	result, err := f.svc.Sell(context.Background(), userID, enums.ItemKindPotion, dto.ID, SellInput{SellPrice: 25})
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if result.SoldPrice != 25 || result.TreasuryCredited {
		t.Fatalf("unexpected result %+v", result)
	}
	if _, ok := f.repo.potions[dto.ID]; ok {
		t.Fatal("instance must be deleted after sale")
	}
	if _, ok := f.repo.ownerships[ownKey(enums.ItemKindPotion, dto.ID)]; ok {
		t.Fatal("ownership link must be deleted after sale")
	}
}

func TestSellWithTreasuryCreditNoHouseRejectsWholeSale(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	templateID := f.addPotionTemplate(t, nil, true)
	dto := craftPotion(t, f, userID, templateID, enums.CraftOutcomeSuccess, nil, nil, nil)

	_, err := f.svc.Sell(context.Background(), userID, enums.ItemKindPotion, dto.ID, SellInput{SellPrice: 50, CreditTreasury: true})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if typed.Message() != "No house found for user" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
	if _, ok := f.repo.potions[dto.ID]; !ok {
		t.Fatal("instance must survive the rejected sale")
	}
}

func TestSellCreditsTreasury(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	templateID := f.addPotionTemplate(t, nil, true)
	dto := craftPotion(t, f, userID, templateID, enums.CraftOutcomeSuccess, nil, nil, nil)

	house := &models.House{ID: uuid.New(), UserID: userID, Name: "House Amber", Gold: 100}
	f.treasury.houses = map[uuid.UUID]*models.House{userID: house}

	result, err := f.svc.Sell(context.Background(), userID, enums.ItemKindPotion, dto.ID, SellInput{SellPrice: 40, CreditTreasury: true})
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if !result.TreasuryCredited {
		t.Fatal("expected treasury credit")
	}
	if house.Gold != 140 {
		t.Fatalf("expected 140 gold, got %d", house.Gold)
	}
}

func TestSellZeroPriceSkipsCredit(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	templateID := f.addPotionTemplate(t, nil, true)
	dto := craftPotion(t, f, userID, templateID, enums.CraftOutcomeSuccess, nil, nil, nil)

	result, err := f.svc.Sell(context.Background(), userID, enums.ItemKindPotion, dto.ID, SellInput{SellPrice: 0, CreditTreasury: true})
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if result.TreasuryCredited {
		t.Fatal("zero price must not touch the treasury")
	}
}

// --- stubs ---

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func ownKey(kind enums.ItemKind, itemID uuid.UUID) string {
	return kind.String() + ":" + itemID.String()
}

type stubItemsRepo struct {
	potions    map[uuid.UUID]*models.Potion
	scrolls    map[uuid.UUID]*models.SpellScroll
	ownerships map[string]*models.ItemOwnership
}

func newStubItemsRepo() *stubItemsRepo {
	return &stubItemsRepo{
		potions:    map[uuid.UUID]*models.Potion{},
		scrolls:    map[uuid.UUID]*models.SpellScroll{},
		ownerships: map[string]*models.ItemOwnership{},
	}
}

func (s *stubItemsRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubItemsRepo) CreatePotion(_ context.Context, record *models.Potion) error {
	clone := *record
	s.potions[record.ID] = &clone
	return nil
}

func (s *stubItemsRepo) CreateScroll(_ context.Context, record *models.SpellScroll) error {
	clone := *record
	s.scrolls[record.ID] = &clone
	return nil
}

func (s *stubItemsRepo) FindPotionByID(_ context.Context, id uuid.UUID) (*models.Potion, error) {
	record, ok := s.potions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *record
	return &clone, nil
}

func (s *stubItemsRepo) FindScrollByID(_ context.Context, id uuid.UUID) (*models.SpellScroll, error) {
	record, ok := s.scrolls[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *record
	return &clone, nil
}

func (s *stubItemsRepo) UpdatePotion(_ context.Context, record *models.Potion) error {
	if _, ok := s.potions[record.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *record
	s.potions[record.ID] = &clone
	return nil
}

func (s *stubItemsRepo) UpdateScroll(_ context.Context, record *models.SpellScroll) error {
	if _, ok := s.scrolls[record.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *record
	s.scrolls[record.ID] = &clone
	return nil
}

func (s *stubItemsRepo) DeletePotion(_ context.Context, id uuid.UUID) error {
	delete(s.potions, id)
	return nil
}

func (s *stubItemsRepo) DeleteScroll(_ context.Context, id uuid.UUID) error {
	delete(s.scrolls, id)
	return nil
}

func (s *stubItemsRepo) CreateOwnership(_ context.Context, userID uuid.UUID, kind enums.ItemKind, itemID uuid.UUID) error {
	s.ownerships[ownKey(kind, itemID)] = &models.ItemOwnership{
		ID:       uuid.New(),
		UserID:   userID,
		ItemKind: kind,
		ItemID:   itemID,
	}
	return nil
}

func (s *stubItemsRepo) FindOwnership(_ context.Context, kind enums.ItemKind, itemID uuid.UUID) (*models.ItemOwnership, error) {
	record, ok := s.ownerships[ownKey(kind, itemID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

func (s *stubItemsRepo) ListOwnerships(_ context.Context, userID uuid.UUID) ([]models.ItemOwnership, error) {
	var out []models.ItemOwnership
	for _, record := range s.ownerships {
		if record.UserID == userID {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (s *stubItemsRepo) DeleteOwnership(_ context.Context, kind enums.ItemKind, itemID uuid.UUID) error {
	delete(s.ownerships, ownKey(kind, itemID))
	return nil
}

func (s *stubItemsRepo) ListPotionsByIDs(_ context.Context, ids []uuid.UUID) ([]models.Potion, error) {
	var out []models.Potion
	for _, id := range ids {
		if record, ok := s.potions[id]; ok {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (s *stubItemsRepo) ListScrollsByIDs(_ context.Context, ids []uuid.UUID) ([]models.SpellScroll, error) {
	var out []models.SpellScroll
	for _, id := range ids {
		if record, ok := s.scrolls[id]; ok {
			out = append(out, *record)
		}
	}
	return out, nil
}

type stubTemplateCatalog struct {
	potions map[uuid.UUID]*models.PotionTemplate
	spells  map[uuid.UUID]*models.SpellTemplate
}

func (s *stubTemplateCatalog) FindPotionTemplateByID(_ context.Context, id uuid.UUID) (*models.PotionTemplate, error) {
	record, ok := s.potions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

func (s *stubTemplateCatalog) FindSpellTemplateByID(_ context.Context, id uuid.UUID) (*models.SpellTemplate, error) {
	record, ok := s.spells[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

type masteryAward struct {
	characterID      uuid.UUID
	potionTemplateID *uuid.UUID
	spellTemplateID  *uuid.UUID
	points           int
}

type stubMasteryLedger struct {
	awards []masteryAward
}

func (s *stubMasteryLedger) WithTx(tx *gorm.DB) MasteryLedger { return s }

func (s *stubMasteryLedger) ApplyAward(_ context.Context, characterID uuid.UUID, potionTemplateID, spellTemplateID *uuid.UUID, points int, _ time.Time) (*models.MasteryRecord, error) {
	s.awards = append(s.awards, masteryAward{
		characterID:      characterID,
		potionTemplateID: potionTemplateID,
		spellTemplateID:  spellTemplateID,
		points:           points,
	})
	return &models.MasteryRecord{ID: uuid.New(), CharacterID: characterID, MasteryLevel: points}, nil
}

type stubTreasuryLedger struct {
	houses map[uuid.UUID]*models.House
}

func (s *stubTreasuryLedger) WithTx(tx *gorm.DB) TreasuryLedger { return s }

func (s *stubTreasuryLedger) FindHouseByUserID(_ context.Context, userID uuid.UUID) (*models.House, error) {
	if s.houses == nil {
		return nil, gorm.ErrRecordNotFound
	}
	record, ok := s.houses[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

func (s *stubTreasuryLedger) CreditGold(_ context.Context, houseID uuid.UUID, amount int) error {
	for _, house := range s.houses {
		if house.ID == houseID {
			house.Gold += amount
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
