package entities

import "strings"

// Role is the closed set of back-office roles the budget workflow knows about.
type Role int

const (
	RoleUnknown Role = iota
	RolePreSale
	RoleFinancial
)

var roleByName = map[string]Role{
	"pre sale":  RolePreSale,
	"financial": RoleFinancial,
}

// ParseRole maps an identity role name to a Role. Unrecognized names are RoleUnknown.
func ParseRole(name string) Role {
	return roleByName[strings.ToLower(strings.Join(strings.Fields(name), " "))]
}

func (r Role) String() string {
	switch r {
	case RolePreSale:
		return "pre sale"
	case RoleFinancial:
		return "financial"
	default:
		return "unknown"
	}
}
