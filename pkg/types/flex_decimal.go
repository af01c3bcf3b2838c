package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexDecimal is a decimal value that tolerates both JSON numbers and
// numeric strings on input. Character sheets exported from older trackers
// send weights as strings ("0.5"), newer clients as numbers (0.5); both
// land in the same column.
type FlexDecimal struct {
	decimal.Decimal
	set bool
}

// NewFlexDecimal wraps an existing decimal value.
func NewFlexDecimal(d decimal.Decimal) FlexDecimal {
	return FlexDecimal{Decimal: d, set: true}
}

// IsSet reports whether a value was supplied on input.
func (f FlexDecimal) IsSet() bool {
	return f.set
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (f *FlexDecimal) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		*f = FlexDecimal{}
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = FlexDecimal{}
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q", s)
		}
		*f = FlexDecimal{Decimal: d, set: true}
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid numeric value %s", raw)
	}
	*f = FlexDecimal{Decimal: d, set: true}
	return nil
}

// MarshalJSON renders the value as a plain JSON number.
func (f FlexDecimal) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return []byte(f.Decimal.String()), nil
}
