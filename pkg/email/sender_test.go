package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	valid := []string{"user@example.com", "first.last@sub.domain.co", "a+tag@host.io"}
	for _, addr := range valid {
		assert.True(t, IsEmailValid(addr), addr)
	}

	invalid := []string{"", "plain", "@example.com", "user@", "user@host", "user @host.com"}
	for _, addr := range invalid {
		assert.False(t, IsEmailValid(addr), addr)
	}
}

func TestSendEmailInputValidate(t *testing.T) {
	input := SendEmailInput{To: "user@example.com", Subject: "Hi", Body: "<p>hello</p>"}
	assert.NoError(t, input.Validate())

	assert.Error(t, (&SendEmailInput{Subject: "Hi", Body: "x"}).Validate())
	assert.Error(t, (&SendEmailInput{To: "user@example.com"}).Validate())
	assert.Error(t, (&SendEmailInput{To: "bad", Subject: "Hi", Body: "x"}).Validate())
}
