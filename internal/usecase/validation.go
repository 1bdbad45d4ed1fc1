package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/xavierca1/telecrm/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	}

	if strings.TrimSpace(input.Address) == "" {
		errors = append(errors, ValidationError{"address", "is required"})
	}

	return errors
}

func ValidateRegisterInput(input RegisterInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.Password == "" {
		errors = append(errors, ValidationError{"password", "is required"})
	} else if len(input.Password) < 6 {
		errors = append(errors, ValidationError{"password", "must have at least 6 characters"})
	}

	return errors
}

// validateStatusPair re-checks the call/response combination even though
// the UI only offers valid subsets. Never trust the caller.
func validateStatusPair(callStatus entity.CallStatus, responseStatus entity.ResponseStatus) *DomainError {
	if !callStatus.IsValid() {
		return Invalid(fmt.Sprintf("call status %q must be connected or not_connected", callStatus))
	}
	if !callStatus.Allows(responseStatus) {
		return Invalid(fmt.Sprintf("response status %q is not valid for call status %q", responseStatus, callStatus))
	}
	return nil
}

func validationFailed(errs []ValidationError) *DomainError {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Error())
	}
	return Invalid("validation failed: " + strings.Join(parts, ", "))
}
