package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApprovalStatusToggle(t *testing.T) {
	assert.Equal(t, ApprovalApproved, ApprovalPending.Toggle())
	assert.Equal(t, ApprovalPending, ApprovalApproved.Toggle())

	// Two toggles land back where they started.
	assert.Equal(t, ApprovalPending, ApprovalPending.Toggle().Toggle())
	assert.Equal(t, ApprovalApproved, ApprovalApproved.Toggle().Toggle())
}

func TestUserTypeRegisterable(t *testing.T) {
	assert.True(t, UserTypeBusiness.Registerable())
	assert.True(t, UserTypeEndUser.Registerable())
	assert.False(t, UserTypeAdmin.Registerable())
	assert.False(t, UserType("other").Registerable())
}
