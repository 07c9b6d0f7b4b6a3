package domain

// Principal is the verified identity extracted from a bearer token. It is
// immutable for the duration of one request and is the only identity
// information authorization decisions trust.
type Principal struct {
	UserID string
	Role   string
}

// IsAdmin is the single elevation predicate used by both the middleware
// gate and the per-resource ownership check.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanAccess reports whether the principal may read or mutate a resource
// owned by ownerID: the owner always can, an admin always can.
func (p Principal) CanAccess(ownerID string) bool {
	return p.IsAdmin() || p.UserID == ownerID
}
