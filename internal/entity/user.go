package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTelecaller Role = "telecaller"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor is the authenticated identity a request acts as. It is passed
// explicitly into every operation; nothing reads identity off ambient
// state.
type Actor struct {
	ID   string
	Name string
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (u *User) AsActor() Actor {
	return Actor{
		ID:   u.ID,
		Name: u.Name,
		Role: u.Role,
	}
}

// Factory
func NewUser(name, email, passwordHash string, role Role) (*User, error) {
	now := time.Now()
	user := &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("name is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.PasswordHash == "" {
		return errors.New("password is required")
	}
	if u.Role != RoleAdmin && u.Role != RoleTelecaller {
		return errors.New("invalid role")
	}
	return nil
}
