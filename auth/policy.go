package auth

// Policy declares who may perform an operation on a resource. Each handler
// picks exactly one policy per operation; the engine itself is a pure
// predicate with no side effects and no shared state.
type Policy int

const (
	// PolicyPublic allows any caller, authenticated or not.
	PolicyPublic Policy = iota
	// PolicyOwnerOnly allows only the owner of the resource. Admins get no
	// override; used where acting on someone else's behalf makes no sense
	// (changing a password, uploading an avatar).
	PolicyOwnerOnly
	// PolicyOwnerOrAdmin allows the owner of the resource or any admin.
	PolicyOwnerOrAdmin
	// PolicyAdminOnly allows only admins.
	PolicyAdminOnly
)

// Allow decides whether principal may perform an operation governed by
// policy on a resource owned by resourceOwnerID. Ownership is compared by
// stable numeric id, never by username or email.
//
// Callers must resolve the resource before consulting Allow: a missing
// resource is reported as NotFound by the caller, never as a policy denial,
// so existence cannot be probed through differing status codes.
func Allow(principal *User, resourceOwnerID int64, policy Policy) bool {
	if policy == PolicyPublic {
		return true
	}
	if principal == nil {
		return false
	}
	switch policy {
	case PolicyOwnerOnly:
		return principal.ID == resourceOwnerID
	case PolicyOwnerOrAdmin:
		return principal.ID == resourceOwnerID || principal.IsAdmin()
	case PolicyAdminOnly:
		return principal.IsAdmin()
	default:
		return false
	}
}
