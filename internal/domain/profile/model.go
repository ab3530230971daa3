package profile

import (
	"strings"
	"time"

	"gators-academy/backend/internal/authctx"
)

// Profile is a person record. The document id equals the auth account
// uid, so profile lookups from a verified token need no extra mapping.
type Profile struct {
	ID       string       `firestore:"id" json:"id"`
	FullName string       `firestore:"full_name" json:"full_name"`
	Email    string       `firestore:"email,omitempty" json:"email,omitempty"`
	Phone    string       `firestore:"phone,omitempty" json:"phone,omitempty"`
	Role     authctx.Role `firestore:"role" json:"role"`

	// Level is the trainee skill tier. Empty for admins and trainers.
	Level string `firestore:"level,omitempty" json:"level,omitempty"`

	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at" json:"updated_at"`
}

// Skill tiers, ordered lowest to highest.
var Levels = []string{"beginner", "level1", "level2", "level3", "advanced"}

const DefaultLevel = "beginner"

func IsValidLevel(l string) bool {
	for _, v := range Levels {
		if v == l {
			return true
		}
	}
	return false
}

// SignUpInput represents input for creating an account plus profile.
type SignUpInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Level    string `json:"level,omitempty"`
}

func (in *SignUpInput) Trim() {
	in.Email = strings.TrimSpace(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Level = strings.TrimSpace(strings.ToLower(in.Level))
}

// UpdateProfileInput represents input for editing a profile.
type UpdateProfileInput struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Level    *string `json:"level,omitempty"`
}

func (in *UpdateProfileInput) Trim() {
	if in.FullName != nil {
		*in.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Phone != nil {
		*in.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Level != nil {
		*in.Level = strings.TrimSpace(strings.ToLower(*in.Level))
	}
}
