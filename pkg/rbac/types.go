package rbac

import "strings"

// Wildcard grants every permission.
const Wildcard = "*"

// Role is a set of permissions plus the roles it inherits from.
type Role struct {
	Permissions []string `yaml:"permissions"`
	Inherits    []string `yaml:"inherits"`
}

// matches reports whether the granted pattern covers permission.
func matches(permission, granted string) bool {
	if permission == "" {
		return false
	}
	if granted == Wildcard || granted == permission {
		return true
	}
	if prefix, ok := strings.CutSuffix(granted, ".*"); ok {
		return strings.HasPrefix(permission, prefix+".")
	}
	return false
}
