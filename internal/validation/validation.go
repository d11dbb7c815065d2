// Package validation implements the registration schemas. A candidate form
// is validated against exactly one schema, selected by the tagged userType
// at submission time; all violated rules are collected, not just the first.
package validation

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/regportal/backend/internal/domain"
	pkgValidator "github.com/regportal/backend/pkg/validator"
)

var ErrUnknownSchema = errors.New("unknown registration type")

// Form is the neutral candidate record as submitted. Fields irrelevant to
// the selected schema may be present; they are simply not validated.
type Form struct {
	UserType        string     `json:"userType"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	BusinessName    string     `json:"businessName"`
	BusinessType    string     `json:"businessType"`
	BusinessEstDate *time.Time `json:"businessEstDate"`
	Address         string     `json:"address"`
	Country         string     `json:"country"`
	State           string     `json:"state"`
	City            string     `json:"city"`
	Landline        string     `json:"landline"`
	Mobile          string     `json:"mobile"`
	UserName        string     `json:"userName"`
	Password        string     `json:"password"`
	ConfirmPassword string     `json:"confirmPassword"`
	IsApproved      string     `json:"isApproved"`
}

// FieldErrors maps json field names to the first-reached violation message.
type FieldErrors map[string]string

// Schema validates a candidate form against one registration variant.
type Schema interface {
	Validate(form Form) FieldErrors
}

type Engine struct {
	validate *validator.Validate
}

func NewEngine() (*Engine, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(pkgValidator.JSONTagName)
	if err := pkgValidator.Register(v); err != nil {
		return nil, fmt.Errorf("register custom rules failed: %w", err)
	}

	return &Engine{validate: v}, nil
}

// ForType returns the schema variant for the given registration type.
// Admin is not a registerable type and yields ErrUnknownSchema.
func (e *Engine) ForType(userType domain.UserType) (Schema, error) {
	switch userType {
	case domain.UserTypeBusiness:
		return businessSchema{validate: e.validate}, nil
	case domain.UserTypeEndUser:
		return endUserSchema{validate: e.validate}, nil
	default:
		return nil, ErrUnknownSchema
	}
}

type businessFields struct {
	FirstName       string     `json:"firstName" validate:"required"`
	LastName        string     `json:"lastName" validate:"required"`
	Email           string     `json:"email" validate:"required,email"`
	BusinessName    string     `json:"businessName" validate:"required,min=10"`
	BusinessType    string     `json:"businessType" validate:"required,oneof=Individual Partnership 'Private Limited' 'Public Limited'"`
	BusinessEstDate *time.Time `json:"businessEstDate"`
	Address         string     `json:"address" validate:"required,min=25"`
	Country         string     `json:"country" validate:"required,oneof=USA Canada UK"`
	UserName        string     `json:"userName" validate:"required"`
	Password        string     `json:"password" validate:"required,userpassword"`
	ConfirmPassword string     `json:"confirmPassword" validate:"required,eqfield=Password"`
	IsApproved      string     `json:"isApproved" validate:"required"`
}

type businessSchema struct {
	validate *validator.Validate
}

func (s businessSchema) Validate(form Form) FieldErrors {
	fields := businessFields{
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Email:           form.Email,
		BusinessName:    form.BusinessName,
		BusinessType:    form.BusinessType,
		BusinessEstDate: form.BusinessEstDate,
		Address:         form.Address,
		Country:         form.Country,
		UserName:        form.UserName,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
		IsApproved:      defaultApproval(form.IsApproved),
	}
	return collect(s.validate.Struct(fields))
}

type endUserFields struct {
	FirstName       string     `json:"firstName" validate:"required"`
	LastName        string     `json:"lastName" validate:"required"`
	Email           string     `json:"email" validate:"required,email"`
	BusinessEstDate *time.Time `json:"businessEstDate" validate:"omitempty,adultdate"`
	Address         string     `json:"address" validate:"required,min=25"`
	Country         string     `json:"country" validate:"required,oneof=USA Canada UK"`
	UserName        string     `json:"userName" validate:"required"`
	Password        string     `json:"password" validate:"required,userpassword"`
	ConfirmPassword string     `json:"confirmPassword" validate:"required,eqfield=Password"`
	IsApproved      string     `json:"isApproved" validate:"required"`
}

type endUserSchema struct {
	validate *validator.Validate
}

func (s endUserSchema) Validate(form Form) FieldErrors {
	fields := endUserFields{
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Email:           form.Email,
		BusinessEstDate: form.BusinessEstDate,
		Address:         form.Address,
		Country:         form.Country,
		UserName:        form.UserName,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
		IsApproved:      defaultApproval(form.IsApproved),
	}
	return collect(s.validate.Struct(fields))
}

// defaultApproval applies the schema default: an absent approval status is
// Pending.
func defaultApproval(status string) string {
	if status == "" {
		return string(domain.ApprovalPending)
	}
	return status
}

// collect turns validator output into per-field messages, keeping the
// first-reached violation for each field.
func collect(err error) FieldErrors {
	if err == nil {
		return nil
	}

	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return FieldErrors{"form": err.Error()}
	}

	out := make(FieldErrors, len(verr))
	for _, ferr := range verr {
		if _, ok := out[ferr.Field()]; ok {
			continue
		}
		out[ferr.Field()] = msgForTag(ferr.Tag(), ferr.Param())
	}
	return out
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email"
	case "min":
		return fmt.Sprintf("Must be at least %v characters", value)
	case "oneof":
		return fmt.Sprintf("Must be one of: %v", value)
	case "eqfield":
		return "Passwords must match"
	case pkgValidator.PasswordTag:
		return "Password must be alphanumeric and at least 8 characters"
	case pkgValidator.AdultDateTag:
		return "Date must be at least 18 years ago"
	}
	return tag
}
