package user

type Role string

const (
	RoleDonor    Role = "donor"
	RoleClaimant Role = "claimant"
	RoleBoth     Role = "both"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleDonor, RoleClaimant, RoleBoth:
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
