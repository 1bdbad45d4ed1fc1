package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Lead is a prospective customer worked by exactly one telecaller.
// CallStatus/ResponseStatus stay empty until the first recorded attempt
// and always reflect the most recent one.
type Lead struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	CallStatus     CallStatus     `json:"call_status,omitempty"`
	ResponseStatus ResponseStatus `json:"response_status,omitempty"`
	TelecallerID   string         `json:"telecaller_id"`
	TelecallerName string         `json:"telecaller_name"`
	LastUpdated    time.Time      `json:"last_updated"`
	CreatedAt      time.Time      `json:"created_at"`
}

// Factory
func NewLead(name, email, phone, address string, owner Actor, now time.Time) (*Lead, error) {
	lead := &Lead{
		ID:             uuid.New().String(),
		Name:           name,
		Email:          email,
		Phone:          phone,
		Address:        address,
		TelecallerID:   owner.ID,
		TelecallerName: owner.Name,
		LastUpdated:    now,
		CreatedAt:      now,
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if l.Phone == "" {
		return errors.New("phone is required")
	}
	if l.Address == "" {
		return errors.New("address is required")
	}
	if l.CallStatus != "" && !l.CallStatus.Allows(l.ResponseStatus) {
		return errors.New("response status is not valid for call status")
	}
	return nil
}
