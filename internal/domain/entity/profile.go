package entity

// Permission is the enumerated permission level attached to a Profile.
type Permission int

const (
	PermissionUser Permission = iota + 1
	PermissionManager
	PermissionAdministrator
)

// String returns the role label for the permission level.
func (p Permission) String() string {
	switch p {
	case PermissionUser:
		return "User"
	case PermissionManager:
		return "Manager"
	case PermissionAdministrator:
		return "Administrator"
	default:
		return "Unknown"
	}
}

// Profile is static reference data seeded at startup and referenced by users.
// It is effectively immutable at runtime.
type Profile struct {
	ID         int64
	Role       string // Human-readable role label, e.g. "Administrator".
	Permission Permission
}
