package enums

import "fmt"

// CraftOutcome is the quality tier a potion crafting attempt produced.
// Potions brewed blind carry CraftOutcomeSuccessUnknown until the drinker
// discovers the real potency at consumption time.
type CraftOutcome string

const (
	CraftOutcomeCriticalFail    CraftOutcome = "critical_fail"
	CraftOutcomeFail            CraftOutcome = "fail"
	CraftOutcomeSuccess         CraftOutcome = "success"
	CraftOutcomeCriticalSuccess CraftOutcome = "critical_success"
	CraftOutcomeSuccessUnknown  CraftOutcome = "success_unknown"
)

var validCraftOutcomes = []CraftOutcome{
	CraftOutcomeCriticalFail,
	CraftOutcomeFail,
	CraftOutcomeSuccess,
	CraftOutcomeCriticalSuccess,
	CraftOutcomeSuccessUnknown,
}

// String implements fmt.Stringer.
func (c CraftOutcome) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CraftOutcome.
func (c CraftOutcome) IsValid() bool {
	for _, candidate := range validCraftOutcomes {
		if candidate == c {
			return true
		}
	}
	return false
}

// IsResolved reports whether the outcome carries a final potency.
func (c CraftOutcome) IsResolved() bool {
	return c.IsValid() && c != CraftOutcomeSuccessUnknown
}

// IsResolution reports whether the value is an acceptable resolution for an
// unknown-success potion. Only the success tiers qualify: a blind brew that
// failed outright would have been obvious at crafting time.
func (c CraftOutcome) IsResolution() bool {
	return c == CraftOutcomeSuccess || c == CraftOutcomeCriticalSuccess
}

// ParseCraftOutcome converts raw input into a CraftOutcome.
func ParseCraftOutcome(value string) (CraftOutcome, error) {
	for _, candidate := range validCraftOutcomes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid craft outcome %q", value)
}
