package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/fittrack/fittrack-api/internal/apperr"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleCoach Role = "coach"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleCoach, RoleAdmin:
		return true
	}
	return false
}

// Elevated reports whether the role bypasses per-record ownership checks.
func (r Role) Elevated() bool { return r == RoleAdmin }

var emailRe = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Height       *float64  `json:"height"`
	Weight       *float64  `json:"weight"`
	BodyFat      *float64  `json:"bodyFat"`
	Goals        string    `json:"goals"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Normalize trims the name and lowercases the email, mirroring how records
// were stored by the legacy schema.
func (u *User) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}

func (u *User) Validate() error {
	if u.Name == "" {
		return apperr.ValidationField("name", "Please provide a name")
	}
	if u.Email == "" {
		return apperr.ValidationField("email", "Please provide an email")
	}
	if !emailRe.MatchString(u.Email) {
		return apperr.ValidationField("email", "Please provide a valid email")
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	if !u.Role.Valid() {
		return apperr.ValidationField("role", "Invalid role")
	}
	return nil
}
