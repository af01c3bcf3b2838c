package crafting

import (
	"fmt"
	"strings"

	"github.com/questforge/questledger-backend/pkg/enums"
	pkgerrors "github.com/questforge/questledger-backend/pkg/errors"
	"github.com/questforge/questledger-backend/pkg/types"
)

// MaxCraftableLevel returns the highest spell level a scribe of the given
// level may produce.
func MaxCraftableLevel(crafterLevel int) int {
	return crafterLevel + 1
}

// ValidateScrollLevel enforces the level gate for scroll crafting.
func ValidateScrollLevel(spellLevel, crafterLevel int) error {
	if crafterLevel < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "crafter level must be non-negative")
	}
	max := MaxCraftableLevel(crafterLevel)
	if spellLevel > max {
		return pkgerrors.New(
			pkgerrors.CodeValidation,
			fmt.Sprintf("Cannot craft level %d spell with crafter level %d. Maximum craftable: level %d", spellLevel, crafterLevel, max),
		)
	}
	return nil
}

// ValidateWeight rejects unset or negative weights.
func ValidateWeight(weight types.FlexDecimal) error {
	if !weight.IsSet() {
		return pkgerrors.New(pkgerrors.CodeValidation, "weight is required")
	}
	if weight.Decimal.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "weight must be non-negative")
	}
	return nil
}

// ValidateCraftOutcome checks the recorded outcome for a potion craft.
func ValidateCraftOutcome(outcome enums.CraftOutcome) error {
	if !outcome.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid craft outcome %q", outcome))
	}
	return nil
}

// ValidateCrafterAttribution checks the optional crafter/supervisor fields.
// A supervisor only makes sense for subordinate crafts and a role without a
// character to credit is meaningless.
func ValidateCrafterAttribution(hasCharacter bool, role *enums.CrafterRole, hasSupervisor bool) error {
	if role != nil {
		if !role.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid crafter role %q", *role))
		}
		if *role == enums.CrafterRoleSupervisor {
			return pkgerrors.New(pkgerrors.CodeValidation, "crafter role must be direct or subordinate")
		}
		if !hasCharacter {
			return pkgerrors.New(pkgerrors.CodeValidation, "crafter character id is required when a role is set")
		}
	}
	if hasSupervisor && (role == nil || *role != enums.CrafterRoleSubordinate) {
		return pkgerrors.New(pkgerrors.CodeValidation, "supervisor requires a subordinate crafter role")
	}
	return nil
}

// ValidateCraftedBy rejects blank display names.
func ValidateCraftedBy(name string) error {
	if strings.TrimSpace(name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "Crafter name is required")
	}
	return nil
}
