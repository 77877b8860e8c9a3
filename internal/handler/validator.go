package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ryanmello/devboard/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for usernames
	_ = v.RegisterValidation("username", validateUsernameField)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "username":
			errs[field] = "Invalid username"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// ValidateUsername checks the username format rules: 3-39 characters,
// alphanumeric and hyphens only, no leading or trailing hyphen, and not
// a reserved word.
func ValidateUsername(username string) error {
	if len(username) < domain.MinUsernameLength || len(username) > domain.MaxUsernameLength {
		return fmt.Errorf("%w: must be %d-%d characters", domain.ErrInvalidUsername,
			domain.MinUsernameLength, domain.MaxUsernameLength)
	}
	if username[0] == '-' || username[len(username)-1] == '-' {
		return fmt.Errorf("%w: cannot start or end with a hyphen", domain.ErrInvalidUsername)
	}
	for _, c := range username {
		if !isUsernameChar(c) {
			return fmt.Errorf("%w: invalid character %q", domain.ErrInvalidUsername, c)
		}
	}
	if domain.ReservedUsernames[strings.ToLower(username)] {
		return fmt.Errorf("%w: reserved", domain.ErrInvalidUsername)
	}
	return nil
}

func isUsernameChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-'
}

// Custom validation function for username fields
func validateUsernameField(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	// Allow empty if not required (handled by the 'required' tag if needed)
	if username == "" {
		return true
	}
	return ValidateUsername(username) == nil
}
