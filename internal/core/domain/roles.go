package domain

// Roles a user account can hold
const (
	RoleAdmin             = "ADMIN"
	RoleUser              = "USER"
	RoleSeller            = "SELLER"
	RoleMaintenanceCenter = "MAINTENANCE_CENTER"
)

// Role-request lifecycle statuses
const (
	StatusPending      = "Pending"
	StatusAcceptable   = "Acceptable"
	StatusUnacceptable = "Unacceptable"
)

// PromotableRoles are the only roles a user may apply for through the
// request workflow. ADMIN and USER are never requested.
var PromotableRoles = []string{RoleSeller, RoleMaintenanceCenter}

// IsPromotableRole reports whether role can be the content of a role request.
func IsPromotableRole(role string) bool {
	for _, r := range PromotableRoles {
		if role == r {
			return true
		}
	}
	return false
}

// IsRequestStatus reports whether s is a valid request status.
func IsRequestStatus(s string) bool {
	return s == StatusPending || s == StatusAcceptable || s == StatusUnacceptable
}
