package authctx

import "strings"

// Role is assigned once at signup and stored on both the auth account
// (custom claims) and the profile record. It is not re-derived on login.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTrainer Role = "trainer"
	RoleTrainee Role = "trainee"
)

var ValidRoles = []Role{RoleAdmin, RoleTrainer, RoleTrainee}

func IsValidRole(s string) bool {
	for _, r := range ValidRoles {
		if string(r) == s {
			return true
		}
	}
	return false
}

// Resolver maps a signup email to a role by domain suffix. Zero value
// uses the academy defaults.
type Resolver struct {
	AdminDomain   string
	TrainerDomain string
}

func (r Resolver) DeriveRole(email string) Role {
	adminDomain := r.AdminDomain
	if adminDomain == "" {
		adminDomain = "gators.com"
	}
	trainerDomain := r.TrainerDomain
	if trainerDomain == "" {
		trainerDomain = "trainer.com"
	}

	email = strings.ToLower(strings.TrimSpace(email))
	switch {
	case strings.HasSuffix(email, "@"+adminDomain):
		return RoleAdmin
	case strings.HasSuffix(email, "@"+trainerDomain):
		return RoleTrainer
	default:
		// No email, unknown domain: everyone else is a trainee.
		return RoleTrainee
	}
}

// RoleFromClaims reads the role claim set at signup. Missing or
// malformed claims fall back to trainee, the least-privileged role.
func RoleFromClaims(claims map[string]interface{}) Role {
	if claims == nil {
		return RoleTrainee
	}
	if v, ok := claims["role"].(string); ok && IsValidRole(v) {
		return Role(v)
	}
	return RoleTrainee
}
