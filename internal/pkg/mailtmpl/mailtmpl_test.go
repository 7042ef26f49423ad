package mailtmpl

import (
	"testing"

	"github.com/pampered-pooch/site-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerification(t *testing.T) {
	html, text, err := Verification("123456")
	require.NoError(t, err)

	assert.Contains(t, html, "123456")
	assert.Contains(t, text, "Your verification code is: 123456")
	assert.Contains(t, text, "expires in 15 minutes")
}

func TestContactMessage(t *testing.T) {
	html, text, err := ContactMessage(domain.ContactMessage{
		Name:    "Alice",
		Email:   "a@b.com",
		Phone:   "0400000000",
		Message: "Booking please",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Alice")
	assert.Contains(t, html, "Booking please")
	assert.Contains(t, text, "From: Alice")
	assert.Contains(t, text, "Phone: 0400000000")
	assert.Contains(t, text, "Booking please")
}

func TestContactMessage_OmitsBlankPhone(t *testing.T) {
	_, text, err := ContactMessage(domain.ContactMessage{
		Name:    "Alice",
		Email:   "a@b.com",
		Message: "hi",
	})
	require.NoError(t, err)
	assert.NotContains(t, text, "Phone:")
}

func TestContactMessage_EscapesHTML(t *testing.T) {
	html, _, err := ContactMessage(domain.ContactMessage{
		Name:    "Alice",
		Email:   "a@b.com",
		Message: "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
