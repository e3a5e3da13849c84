package dto

import (
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/accountkit/user-service/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("display_name", validateDisplayName)
	_ = validate.RegisterValidation("account_password", validatePassword)
}

// validateDisplayName allows letters and spaces only.
func validateDisplayName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}

// validatePassword requires at least one letter, one digit and one
// special character.
func validatePassword(fl validator.FieldLevel) bool {
	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	return hasLetter && hasDigit && hasSpecial
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100,display_name"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=128,account_password"`
}

func (r *RegisterRequest) Validate() error {
	return mapValidationError(validate.Struct(r))
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

func (r *LoginRequest) Validate() error {
	return mapValidationError(validate.Struct(r))
}

type UpdateRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=100,display_name"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
}

func (r *UpdateRequest) Validate() error {
	return mapValidationError(validate.Struct(r))
}

// ToUserUpdate maps the request onto the domain partial-update DTO.
func (r *UpdateRequest) ToUserUpdate() domain.UserUpdate {
	return domain.UserUpdate{Name: r.Name, Email: r.Email}
}

// mapValidationError turns the first validator failure into a domain
// error with a client-safe message.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return domain.ErrInternal(err)
	}

	fe := errs[0]
	field := jsonFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return domain.ErrMissingField(field)
	case "email":
		return domain.ErrInvalidField(field, "invalid email address")
	case "display_name":
		return domain.ErrInvalidField(field, "name should only contain letters and spaces")
	case "account_password":
		return domain.ErrWeakPassword("must contain at least one letter, one number, and one special character")
	case "min":
		if field == "password" {
			return domain.ErrWeakPassword("min length " + fe.Param())
		}
		return domain.ErrInvalidField(field, "too short")
	case "max":
		return domain.ErrInvalidField(field, "too long")
	default:
		return domain.ErrInvalidField(field, "invalid value")
	}
}

func jsonFieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Password":
		return "password"
	default:
		return structField
	}
}
