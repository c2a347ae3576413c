package directory

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/goliatone/go-errors"
)

// SignUpInput is the sign-up mutation payload
type SignUpInput struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Validate runs the sign-up rules field by field. The first violated rule
// wins; callers get exactly one field-specific message.
func (in SignUpInput) Validate() error {
	fields := []struct {
		name  string
		value any
		rules []validation.Rule
	}{
		{"name", in.Name, []validation.Rule{
			validation.Required.Error("Name is required"),
		}},
		{"email", in.Email, []validation.Rule{
			validation.Required.Error("Email is required"),
			is.Email.Error("Please enter a valid email address"),
		}},
		{"password", in.Password, []validation.Rule{
			validation.Required.Error("Password is required"),
			validation.Length(6, 0).Error("Password must be at least 6 characters long"),
			validation.Length(0, 42).Error("Password cannot exceed 42 characters"),
		}},
	}

	for _, f := range fields {
		if err := validation.Validate(f.value, f.rules...); err != nil {
			return fieldError(f.name, err)
		}
	}

	return nil
}

// SignInInput is the sign-in mutation payload
type SignInInput struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// OrganisationInput carries the writable organisation fields for create and
// edit mutations. Status defaults to INACTIVE when omitted.
type OrganisationInput struct {
	Name        string             `form:"name" json:"name"`
	Description string             `form:"description" json:"description"`
	Status      OrganisationStatus `form:"status" json:"status"`
}

// Validate runs the organisation rules, first violated rule wins
func (in OrganisationInput) Validate() error {
	fields := []struct {
		name  string
		value any
		rules []validation.Rule
	}{
		{"name", in.Name, []validation.Rule{
			validation.Required.Error("Name is required"),
		}},
		{"description", in.Description, []validation.Rule{
			validation.Required.Error("Description is required"),
		}},
		{"status", string(in.Status), []validation.Rule{
			validation.In(string(StatusActive), string(StatusInactive)).
				Error("Status must be either ACTIVE or INACTIVE"),
		}},
	}

	for _, f := range fields {
		if err := validation.Validate(f.value, f.rules...); err != nil {
			return fieldError(f.name, err)
		}
	}

	return nil
}

// ValidatePartial checks only the fields the caller supplied. Edit
// mutations use it so omitted fields keep their stored values instead of
// failing a required rule.
func (in OrganisationInput) ValidatePartial() error {
	if err := validation.Validate(string(in.Status),
		validation.In(string(StatusActive), string(StatusInactive)).
			Error("Status must be either ACTIVE or INACTIVE"),
	); err != nil {
		return fieldError("status", err)
	}

	return nil
}

func fieldError(field string, err error) error {
	return errors.New(err.Error(), errors.CategoryValidation).
		WithCode(errors.CodeBadRequest).
		WithMetadata(map[string]any{"field": field})
}
