package enums

import "fmt"

// CrafterRole tags how a character participated in crafting an item.
type CrafterRole string

const (
	CrafterRoleDirect      CrafterRole = "direct"
	CrafterRoleSubordinate CrafterRole = "subordinate"
	CrafterRoleSupervisor  CrafterRole = "supervisor"
)

var validCrafterRoles = []CrafterRole{
	CrafterRoleDirect,
	CrafterRoleSubordinate,
	CrafterRoleSupervisor,
}

// String implements fmt.Stringer.
func (r CrafterRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known CrafterRole.
func (r CrafterRole) IsValid() bool {
	for _, candidate := range validCrafterRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseCrafterRole converts raw input into a CrafterRole.
func ParseCrafterRole(value string) (CrafterRole, error) {
	for _, candidate := range validCrafterRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid crafter role %q", value)
}
