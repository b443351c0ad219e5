// Package rbac maps role names to permissions for access-control wrappers.
//
// Roles may inherit from other roles; NewAuthorizer flattens inheritance
// once, rejecting cycles, so Can is a lookup plus wildcard match.
// Permissions are dot-separated scopes; "*" grants everything and a
// trailing ".*" grants a namespace ("docs.*" grants "docs.read").
//
//	auth, err := rbac.NewAuthorizer(map[string]rbac.Role{
//	    "GUEST": {Permissions: []string{"docs.list"}},
//	    "ADMIN": {Permissions: []string{"docs.*"}, Inherits: []string{"GUEST"}},
//	})
//
//	ctx = rbac.WithRole(ctx, "ADMIN")
//	if err := auth.CanFromContext(ctx, "docs.read"); err != nil {
//	    // denied
//	}
package rbac
