package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/regportal/backend/internal/domain"
	"github.com/regportal/backend/internal/store"
	"github.com/regportal/backend/internal/validation"
)

type registrationService struct {
	store  store.Store
	engine *validation.Engine
}

func newRegistrationService(recordStore store.Store, engine *validation.Engine) *registrationService {
	return &registrationService{
		store:  recordStore,
		engine: engine,
	}
}

func (s *registrationService) Register(ctx context.Context, form validation.Form) (*domain.UserRecord, validation.FieldErrors, error) {
	userType := domain.UserType(form.UserType)

	schema, err := s.engine.ForType(userType)
	if err != nil {
		if errors.Is(err, validation.ErrUnknownSchema) {
			return nil, validation.FieldErrors{"userType": "Must be one of: business endUser"}, nil
		}
		return nil, nil, fmt.Errorf("select schema failed: %w", err)
	}

	if fieldErrs := schema.Validate(form); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	recordID, err := uuid.NewV7()
	if err != nil {
		return nil, nil, fmt.Errorf("generate record id failed: %w", err)
	}

	rec := domain.UserRecord{
		ID:              recordID,
		UserType:        userType,
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Email:           form.Email,
		BusinessEstDate: form.BusinessEstDate,
		Address:         form.Address,
		Country:         domain.Country(form.Country),
		State:           form.State,
		City:            form.City,
		Landline:        form.Landline,
		Mobile:          form.Mobile,
		UserName:        form.UserName,
		Password:        form.Password,
		// Approval always starts at Pending; the submitted value is never
		// trusted here.
		IsApproved: domain.ApprovalPending,
		CreatedAt:  time.Now(),
	}

	// Fields belonging to the other schema stay in the submitted form but
	// are never persisted.
	if userType == domain.UserTypeBusiness {
		rec.BusinessName = form.BusinessName
		rec.BusinessType = domain.BusinessType(form.BusinessType)
	}

	if err := s.store.Append(ctx, rec); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, validation.FieldErrors{"userName": "Username is already taken"}, nil
		}
		return nil, nil, fmt.Errorf("append record failed: %w", err)
	}

	return &rec, nil, nil
}
