package mastery

import "github.com/questforge/questledger-backend/pkg/enums"

// MaxLevel caps every mastery record.
const MaxLevel = 10

// PointsFor returns the mastery points a character earns for a craft with
// the given outcome and role. Supervisors always receive the full
// non-subordinate value for the outcome.
func PointsFor(outcome enums.CraftOutcome, role enums.CrafterRole) int {
	switch outcome {
	case enums.CraftOutcomeCriticalSuccess:
		if role == enums.CrafterRoleSubordinate {
			return 1
		}
		return 2
	case enums.CraftOutcomeSuccess, enums.CraftOutcomeSuccessUnknown:
		return 1
	default:
		return 0
	}
}

// ApplyPoints folds earned points into the current level, clamped to MaxLevel.
func ApplyPoints(current, points int) int {
	next := current + points
	if next > MaxLevel {
		return MaxLevel
	}
	return next
}

// ClampLevel bounds an absolute level into [0, MaxLevel].
func ClampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
