package enums

import "fmt"

// ItemKind distinguishes the two craftable consumable families. They share
// one lifecycle but live in separate tables.
type ItemKind string

const (
	ItemKindPotion ItemKind = "potion"
	ItemKindScroll ItemKind = "scroll"
)

var validItemKinds = []ItemKind{
	ItemKindPotion,
	ItemKindScroll,
}

// String implements fmt.Stringer.
func (k ItemKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known ItemKind.
func (k ItemKind) IsValid() bool {
	for _, candidate := range validItemKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// Label returns the capitalized display name used in user-facing messages.
func (k ItemKind) Label() string {
	switch k {
	case ItemKindPotion:
		return "Potion"
	case ItemKindScroll:
		return "Scroll"
	default:
		return "Item"
	}
}

// ParseItemKind converts raw input into an ItemKind.
func ParseItemKind(value string) (ItemKind, error) {
	for _, candidate := range validItemKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item kind %q", value)
}
