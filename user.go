package commutewise

import "github.com/commutewise/commutewise/fare"

// Role is the session role. The login is a mock role switch, not an
// authentication scheme.
type Role string

const (
	RoleGuest Role = "GUEST"
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Session identifies the rider for the lifetime of a login. The discount
// class is self-declared at login, immutable for the session, and consumed
// only by the fare calculator.
type Session struct {
	Username string
	Role     Role
	Discount fare.DiscountClass
}

// IsGuest reports whether this session has no persisted trip history.
func (s Session) IsGuest() bool {
	return s.Role == RoleGuest || s.Username == ""
}

// EffectiveDiscount returns the discount class the fare calculator should
// see: the self-declared class for ordinary users, none for everyone else.
func (s Session) EffectiveDiscount() fare.DiscountClass {
	if s.Role != RoleUser {
		return fare.DiscountNone
	}
	return s.Discount
}
