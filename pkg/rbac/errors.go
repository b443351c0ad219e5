package rbac

import "errors"

var (
	ErrInvalidRole             = errors.New("rbac.errors.invalid_role")
	ErrInsufficientPermissions = errors.New("rbac.errors.insufficient_permissions")
	ErrRoleNotInContext        = errors.New("rbac.errors.role_not_in_context")

	// ErrCircularInheritance is returned by NewAuthorizer when a role inherits itself.
	ErrCircularInheritance = errors.New("rbac.errors.circular_inheritance")
)
