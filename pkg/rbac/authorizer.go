package rbac

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Authorizer answers permission checks for roles.
type Authorizer interface {
	// Can returns nil when role holds permission directly or through inheritance.
	Can(role, permission string) error
	// CanFromContext checks the role stored with WithRole.
	CanFromContext(ctx context.Context, permission string) error
	// Roles returns all known role names, sorted.
	Roles() []string
}

type authorizer struct {
	// permissions holds the flattened grant list per role; read-only after construction.
	permissions map[string][]string
}

// NewAuthorizer flattens role inheritance. Unknown inherited roles are
// ignored; cycles return ErrCircularInheritance.
func NewAuthorizer(roles map[string]Role) (Authorizer, error) {
	flat := make(map[string][]string, len(roles))
	for name := range roles {
		perms, err := collect(name, roles, nil)
		if err != nil {
			return nil, err
		}
		slices.Sort(perms)
		flat[name] = slices.Compact(perms)
	}
	return &authorizer{permissions: flat}, nil
}

// MustNewAuthorizer is like NewAuthorizer but panics on invalid role definitions.
func MustNewAuthorizer(roles map[string]Role) Authorizer {
	a, err := NewAuthorizer(roles)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *authorizer) Can(role, permission string) error {
	granted, ok := a.permissions[role]
	if !ok {
		return ErrInvalidRole
	}
	for _, g := range granted {
		if matches(permission, g) {
			return nil
		}
	}
	return ErrInsufficientPermissions
}

func (a *authorizer) CanFromContext(ctx context.Context, permission string) error {
	role, ok := RoleFromContext(ctx)
	if !ok {
		return errors.Join(ErrRoleNotInContext, ErrInsufficientPermissions)
	}
	return a.Can(role, permission)
}

func (a *authorizer) Roles() []string {
	names := make([]string, 0, len(a.permissions))
	for name := range a.permissions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// collect walks the inheritance graph depth-first; path holds the roles on
// the current branch.
func collect(name string, roles map[string]Role, path []string) ([]string, error) {
	if slices.Contains(path, name) {
		return nil, fmt.Errorf("%w: %v -> %s", ErrCircularInheritance, path, name)
	}
	role, ok := roles[name]
	if !ok {
		return nil, nil
	}
	path = append(path, name)

	perms := slices.Clone(role.Permissions)
	for _, parent := range role.Inherits {
		inherited, err := collect(parent, roles, path)
		if err != nil {
			return nil, err
		}
		perms = append(perms, inherited...)
	}
	return perms, nil
}
