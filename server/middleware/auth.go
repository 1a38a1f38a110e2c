package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/authkit/authctx"
	"github.com/skillsenselab/authkit/authz"
	"github.com/skillsenselab/authkit/errors"
	"github.com/skillsenselab/authkit/token"
)

// IdentityKey is the Gin context key the authenticated identity is stored
// under by Authenticate.
const IdentityKey = "identity"

// Authenticate returns the first guard stage: it requires a well-formed
// Bearer token, verifies it as an access token, and attaches the carried
// identity to both the Gin context and the request context. A missing or
// malformed header and a rejected token are separate 401s (MISSING_TOKEN
// vs INVALID_TOKEN); neither reveals why verification failed.
func Authenticate(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := token.ExtractBearer(c.GetHeader("Authorization"))
		if !ok {
			abortWith(c, errors.MissingToken())
			return
		}

		claims, err := tokens.VerifyAccess(raw)
		if err != nil {
			abortWithErr(c, err)
			return
		}

		id := claims.Identity()
		c.Set(IdentityKey, id)
		c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), id))
		c.Next()
	}
}

// RequireRoles returns the second guard stage: the authenticated identity
// must hold one of the given roles. An empty role list admits any
// authenticated caller. A missing identity is a 401 (the route was
// misconfigured without Authenticate); a role outside the set is a 403,
// distinct from every authentication failure.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return RequireChecker(authz.NewRoleSet(roles...))
}

// RequireChecker is the policy-shaped form of RequireRoles, for callers
// with an allow rule that is not a plain role set.
func RequireChecker(allowed authz.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			abortWith(c, errors.Unauthenticated())
			return
		}
		if !allowed.Allows(id.Role) {
			abortWith(c, errors.InsufficientRole())
			return
		}
		c.Next()
	}
}

// IdentityFrom reads the authenticated identity out of the Gin context.
func IdentityFrom(c *gin.Context) (token.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return token.Identity{}, false
	}
	id, ok := v.(token.Identity)
	return id, ok
}

func abortWith(c *gin.Context, appErr *errors.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}

func abortWithErr(c *gin.Context, err error) {
	if appErr, ok := errors.AsAppError(err); ok {
		abortWith(c, appErr)
		return
	}
	abortWith(c, errors.Internal(err))
}
