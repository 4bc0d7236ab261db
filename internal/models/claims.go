package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Admin permissions
	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"

	// Operator permissions
	PermissionScoreWrite     = "score:write"
	PermissionEvaluationRead = "evaluation:read"
	PermissionDashboardRead  = "dashboard:read"
)

type OperatorClaims struct {
	jwt.RegisteredClaims
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *OperatorClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case "admin":
		return []string{
			PermissionScoreWrite,
			PermissionEvaluationRead,
			PermissionDashboardRead,
			PermissionReadAdmin,
			PermissionWriteAdmin,
		}
	case "operator":
		return []string{
			PermissionScoreWrite,
			PermissionEvaluationRead,
			PermissionDashboardRead,
		}
	default:
		return []string{}
	}
}
