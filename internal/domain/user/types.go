package user

type Role string

const (
	// RoleTerminal is a cafeteria point-of-sale device account.
	RoleTerminal Role = "terminal"
	// RoleBackoffice is hotel staff issuing and cancelling vouchers.
	RoleBackoffice Role = "backoffice"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleTerminal, RoleBackoffice, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
