// Package access decides whether a caller may pass an access-control wrapper.
//
// Policies are evaluated before the wrapped link is touched; a denying
// policy means nothing downstream runs.
package access

import (
	"context"

	"github.com/dmitrymomot/wrapkit/pkg/rbac"
)

// DefaultRequiredRole is the role access-control wrappers require unless configured otherwise.
const DefaultRequiredRole = "ADMIN"

// Policy reports whether the call carried by ctx may proceed.
type Policy interface {
	Allow(ctx context.Context) bool
}

// PolicyFunc adapts an ordinary function to Policy.
type PolicyFunc func(ctx context.Context) bool

func (f PolicyFunc) Allow(ctx context.Context) bool { return f(ctx) }

// RequireRole allows the call when the caller's role, fixed at construction,
// equals required. Comparison is exact and case-sensitive.
func RequireRole(callerRole, required string) Policy {
	return PolicyFunc(func(context.Context) bool {
		return callerRole == required
	})
}

// RequireContextRole allows the call when the role stored in ctx with
// rbac.WithRole equals required. A missing role denies.
func RequireContextRole(required string) Policy {
	return PolicyFunc(func(ctx context.Context) bool {
		role, ok := rbac.RoleFromContext(ctx)
		return ok && role == required
	})
}

// RequirePermission allows the call when the role stored in ctx holds
// permission according to auth.
func RequirePermission(auth rbac.Authorizer, permission string) Policy {
	return PolicyFunc(func(ctx context.Context) bool {
		return auth.CanFromContext(ctx, permission) == nil
	})
}

// Deny rejects every call.
func Deny() Policy {
	return PolicyFunc(func(context.Context) bool { return false })
}
