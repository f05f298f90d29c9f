package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Identity is a self-registered account. Records written before roles existed
// carry no role and are treated as RoleUser.
type Identity struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role,omitempty"`
}

// EffectiveRole returns the stored role, defaulting legacy records to RoleUser.
func (i Identity) EffectiveRole() string {
	if i.Role == "" {
		return RoleUser
	}
	return i.Role
}

// AdminAccount is the single operator identity. It is provisioned out of band
// and never created through registration.
type AdminAccount struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// Claims is the decoded content of a verified token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RequireRole returns ErrForbidden unless the claims carry one of roles.
func (c Claims) RequireRole(roles ...string) error {
	for _, r := range roles {
		if c.Role == r {
			return nil
		}
	}
	return ErrForbidden
}
