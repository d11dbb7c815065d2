package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserType string

const (
	UserTypeBusiness UserType = "business"
	UserTypeEndUser  UserType = "endUser"
	UserTypeAdmin    UserType = "admin"
)

// Registerable reports whether the type can be created through the
// registration workflow. Admin records are seeded out-of-band only.
func (t UserType) Registerable() bool {
	return t == UserTypeBusiness || t == UserTypeEndUser
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
)

// Toggle flips Pending<->Approved. There is no terminal state.
func (s ApprovalStatus) Toggle() ApprovalStatus {
	if s == ApprovalApproved {
		return ApprovalPending
	}
	return ApprovalApproved
}

type BusinessType string

const (
	BusinessTypeIndividual     BusinessType = "Individual"
	BusinessTypePartnership    BusinessType = "Partnership"
	BusinessTypePrivateLimited BusinessType = "Private Limited"
	BusinessTypePublicLimited  BusinessType = "Public Limited"
)

type Country string

const (
	CountryUSA    Country = "USA"
	CountryCanada Country = "Canada"
	CountryUK     Country = "UK"
)

// UserRecord is one registrant. UserType selects the validation schema at
// creation time and is immutable afterwards; IsApproved starts at Pending
// and is mutated only by the admin review workflow.
type UserRecord struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	UserType        UserType       `db:"user_type" json:"userType"`
	FirstName       string         `db:"first_name" json:"firstName"`
	LastName        string         `db:"last_name" json:"lastName"`
	Email           string         `db:"email" json:"email"`
	BusinessName    string         `db:"business_name" json:"businessName,omitempty"`
	BusinessType    BusinessType   `db:"business_type" json:"businessType,omitempty"`
	BusinessEstDate *time.Time     `db:"business_est_date" json:"businessEstDate,omitempty"`
	Address         string         `db:"address" json:"address"`
	Country         Country        `db:"country" json:"country"`
	State           string         `db:"state" json:"state,omitempty"`
	City            string         `db:"city" json:"city,omitempty"`
	Landline        string         `db:"landline" json:"landline,omitempty"`
	Mobile          string         `db:"mobile" json:"mobile,omitempty"`
	UserName        string         `db:"user_name" json:"userName"`
	Password        string         `db:"password" json:"password"`
	IsApproved      ApprovalStatus `db:"is_approved" json:"isApproved"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}
