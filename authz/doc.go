// Package authz holds the authorization decision logic behind the role
// gate: the known roles, per-route allowed-role sets, and the matching
// rules that decide whether an authenticated identity may pass.
//
// Routes declare their allowed roles explicitly at registration time;
// the gate reads the declaration directly. An empty declaration means
// the route is open to any authenticated identity.
//
// Usage:
//
//	set := authz.NewRoleSet(authz.RoleAdmin)
//	if !set.Allows(identity.Role) {
//	    // 403
//	}
package authz
