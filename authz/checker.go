package authz

// The roles the service knows about. Registration always starts a user
// as RoleCustomer; RoleAdmin is assigned out of band.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// ValidRole reports whether the role is one the service issues tokens for.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCustomer
}

// Checker is the authorization gate's view of a role policy: does the
// concrete role satisfy it?
type Checker interface {
	Allows(role string) bool
}

// RoleSet is the per-route declaration of allowed roles. An empty set
// means the route has no role restriction.
type RoleSet map[string]struct{}

var _ Checker = RoleSet{}

// NewRoleSet builds a RoleSet from role names.
func NewRoleSet(roles ...string) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Empty reports whether the set declares no restriction.
func (s RoleSet) Empty() bool { return len(s) == 0 }

// Allows reports whether the role is a member of the set, honoring the
// "*" wildcard entry. An empty set allows everything.
func (s RoleSet) Allows(role string) bool {
	if s.Empty() {
		return true
	}
	for pattern := range s {
		if MatchPattern(pattern, role) {
			return true
		}
	}
	return false
}

// MatchPattern checks whether a declared role pattern matches a concrete
// role. "*" matches any role; anything else must match exactly. Patterns
// keep the role gate's declarations explicit — no reflection, no
// handler metadata.
func MatchPattern(pattern, role string) bool {
	return pattern == "*" || pattern == role
}
