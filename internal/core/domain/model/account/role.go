package account

import (
	"fmt"

	"orgtrack/internal/pkg/errs"
)

// Role determines what a user may do. Authorization is role-based and flat:
// there is no role hierarchy, each endpoint names the roles it accepts.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin manages the catalog, partitions shipments and assigns resources.
	RoleAdmin

	// RoleClient requests shipments and tracks their progress.
	RoleClient

	// RoleCarrier executes assignments and submits checklists and signatures.
	RoleCarrier
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		RoleAdmin:   "admin",
		RoleClient:  "client",
		RoleCarrier: "carrier",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as invalid
	return map[Role]string{
		RoleAdmin:   "admin",
		RoleClient:  "client",
		RoleCarrier: "carrier",
	}
}

// Validate checks if the Role value is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role as carried in access tokens.
// Implements fmt.Stringer; returns "Unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// RoleFromString parses the wire name of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}
