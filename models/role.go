package models

import "strings"

// Role is the closed set of roles the platform recognizes. Anything the
// upstream API reports outside this set resolves to RoleUnknown, which the
// dashboard renders as a terminal "contact support" state instead of
// guessing a view tree.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleUnknown    Role = "unknown"
)

func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return RoleStudent
	case "instructor":
		return RoleInstructor
	default:
		return RoleUnknown
	}
}

// Recognized reports whether the role maps to one of the two view trees.
func (r Role) Recognized() bool {
	return r == RoleStudent || r == RoleInstructor
}

func (r Role) String() string {
	return string(r)
}
