package identity

import (
	"github.com/travelworks/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role represents a user's role in the agency
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

// IsValid checks if the role is a known role
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleAgent
}

// User represents a staff member who can create bookings and payments
type User struct {
	shared.BaseAggregateRoot
	Username     string
	PasswordHash string
	FullName     string
	Role         Role
	Active       bool
}

// NewUser creates a new user with a bcrypt-hashed password
func NewUser(username, password, fullName string, role Role) (*User, error) {
	if username == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Username cannot be empty")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		PasswordHash:      string(hash),
		FullName:          fullName,
		Role:              role,
		Active:            true,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.Touch()
	return nil
}

// Deactivate disables the user account
func (u *User) Deactivate() {
	u.Active = false
	u.Touch()
}
