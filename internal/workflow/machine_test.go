package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/pampered-pooch/site-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI scripts the three server calls and records what was sent.
type fakeAPI struct {
	sendVerificationErr error
	verifyCodeErr       error
	sendMessageErr      error

	verifications int
	verifiedCode  string
	sentMessage   *domain.ContactMessage
}

func (f *fakeAPI) SendVerification(_ context.Context, email, name string) error {
	f.verifications++
	return f.sendVerificationErr
}

func (f *fakeAPI) VerifyCode(_ context.Context, _, code string) error {
	f.verifiedCode = code
	return f.verifyCodeErr
}

func (f *fakeAPI) SendMessage(_ context.Context, msg domain.ContactMessage) error {
	f.sentMessage = &msg
	return f.sendMessageErr
}

var validDraft = domain.ContactMessage{
	Name:    "Alice",
	Email:   "a@b.com",
	Phone:   "0400000000",
	Message: "Booking please",
}

func enterVerifyState(t *testing.T, api *fakeAPI) *Machine {
	t.Helper()
	m := NewMachine(api)
	m.SetForm(validDraft)
	m.Submit(context.Background())
	require.Equal(t, StateVerify, m.State())
	return m
}

func TestSubmit_ValidationStopsBeforeNetwork(t *testing.T) {
	tests := []struct {
		name string
		form domain.ContactMessage
		want string
	}{
		{"blank name", domain.ContactMessage{Email: "a@b.com", Phone: "04", Message: "hi"}, "Name is required"},
		{"bad email", domain.ContactMessage{Name: "A", Email: "not-an-email", Phone: "04", Message: "hi"}, "Valid email is required"},
		{"blank phone", domain.ContactMessage{Name: "A", Email: "a@b.com", Message: "hi"}, "Phone number is required"},
		{"blank message", domain.ContactMessage{Name: "A", Email: "a@b.com", Phone: "04"}, "Message is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			m := NewMachine(api)
			m.SetForm(tt.form)
			m.Submit(context.Background())

			assert.Equal(t, StateForm, m.State())
			assert.Equal(t, tt.want, m.ErrorMessage())
			assert.Zero(t, api.verifications)
		})
	}
}

func TestSubmit_EntersVerifyWithCountdowns(t *testing.T) {
	api := &fakeAPI{}
	m := enterVerifyState(t, api)

	assert.Equal(t, 1, api.verifications)
	assert.Equal(t, codeCountdown, m.TimeLeft())
	assert.Equal(t, resendCooldown, m.ResendCooldown())
	assert.Empty(t, m.ErrorMessage())
}

func TestSubmit_FailurePreservesDraft(t *testing.T) {
	api := &fakeAPI{sendVerificationErr: errors.New("Failed to send verification email. Please try again.")}
	m := NewMachine(api)
	m.SetForm(validDraft)
	m.Submit(context.Background())

	assert.Equal(t, StateForm, m.State())
	assert.Equal(t, "Failed to send verification email. Please try again.", m.ErrorMessage())
	assert.Equal(t, validDraft, m.Form())
}

func TestVerifyAndSend_HappyPath(t *testing.T) {
	api := &fakeAPI{}
	m := enterVerifyState(t, api)

	m.Paste("123456")
	m.VerifyAndSend(context.Background())

	assert.Equal(t, StateSuccess, m.State())
	assert.Equal(t, "123456", api.verifiedCode)
	require.NotNil(t, api.sentMessage)
	assert.Equal(t, validDraft, *api.sentMessage)
	assert.Equal(t, domain.ContactMessage{}, m.Form())
}

func TestVerifyAndSend_RequiresCompleteCode(t *testing.T) {
	api := &fakeAPI{}
	m := enterVerifyState(t, api)

	m.Paste("123")
	m.VerifyAndSend(context.Background())

	assert.Equal(t, StateVerify, m.State())
	assert.Empty(t, api.verifiedCode)
}

func TestVerifyAndSend_WrongCodeClearsBuffer(t *testing.T) {
	api := &fakeAPI{verifyCodeErr: errors.New("Incorrect code. Please try again.")}
	m := enterVerifyState(t, api)

	for i := 0; i < 3; i++ {
		m.Paste("000000")
		m.VerifyAndSend(context.Background())

		assert.Equal(t, StateVerify, m.State())
		assert.Equal(t, "Incorrect code. Please try again.", m.CodeError())
		assert.Equal(t, "", m.Digits().Code())
		assert.Equal(t, 0, m.Digits().Focus())
	}
	assert.Nil(t, api.sentMessage)
}

func TestVerifyAndSend_DeliveryFailureForcesReentry(t *testing.T) {
	api := &fakeAPI{sendMessageErr: errors.New("Failed to send message. Please try again.")}
	m := enterVerifyState(t, api)

	m.Paste("123456")
	m.VerifyAndSend(context.Background())

	assert.Equal(t, StateVerify, m.State())
	assert.Equal(t, "Failed to send message. Please try again.", m.CodeError())
	assert.Equal(t, "", m.Digits().Code())
}

func TestVerifyAndSend_StillAttemptsAfterCountdownZero(t *testing.T) {
	api := &fakeAPI{}
	m := enterVerifyState(t, api)

	for i := 0; i < codeCountdown; i++ {
		m.Tick()
	}
	require.Equal(t, 0, m.TimeLeft())
	assert.Equal(t, "Code expired. Please resend.", m.CodeError())

	// the server is the authority on expiry; the check is still attempted
	m.Paste("123456")
	m.VerifyAndSend(context.Background())
	assert.Equal(t, "123456", api.verifiedCode)
	assert.Equal(t, StateSuccess, m.State())
}

func TestResend_BlockedDuringCooldown(t *testing.T) {
	api := &fakeAPI{}
	m := enterVerifyState(t, api)

	m.Resend(context.Background())
	assert.Equal(t, 1, api.verifications)
}

func TestResend_AfterCooldownRestartsCountdowns(t *testing.T) {
	api := &fakeAPI{}
	m := enterVerifyState(t, api)

	m.Paste("12")
	for i := 0; i < resendCooldown; i++ {
		m.Tick()
	}
	require.Equal(t, 0, m.ResendCooldown())
	assert.Equal(t, codeCountdown-resendCooldown, m.TimeLeft())

	m.Resend(context.Background())

	assert.Equal(t, 2, api.verifications)
	assert.Equal(t, codeCountdown, m.TimeLeft())
	assert.Equal(t, resendCooldown, m.ResendCooldown())
	assert.Equal(t, "", m.Digits().Code())
}

func TestResend_FailureLeavesCountdownsAlone(t *testing.T) {
	api := &fakeAPI{}
	m := enterVerifyState(t, api)

	for i := 0; i < resendCooldown; i++ {
		m.Tick()
	}
	api.sendVerificationErr = errors.New("Failed to send verification email. Please try again.")

	m.Resend(context.Background())

	assert.Equal(t, StateVerify, m.State())
	assert.Equal(t, "Failed to send verification email. Please try again.", m.ErrorMessage())
	assert.Equal(t, codeCountdown-resendCooldown, m.TimeLeft())
}

func TestCancel_ReturnsToFormWithDraft(t *testing.T) {
	api := &fakeAPI{}
	m := enterVerifyState(t, api)
	m.Paste("12")

	m.Cancel()

	assert.Equal(t, StateForm, m.State())
	assert.Equal(t, validDraft, m.Form())
	assert.Empty(t, m.CodeError())
}

func TestSuccessWindow_LoopsBackToForm(t *testing.T) {
	api := &fakeAPI{}
	m := enterVerifyState(t, api)
	m.Paste("123456")
	m.VerifyAndSend(context.Background())
	require.Equal(t, StateSuccess, m.State())

	for i := 0; i < successWindow-1; i++ {
		m.Tick()
		assert.Equal(t, StateSuccess, m.State())
	}
	m.Tick()
	assert.Equal(t, StateForm, m.State())
	assert.Equal(t, domain.ContactMessage{}, m.Form())
}

func TestEnterDigit_ClearsCodeError(t *testing.T) {
	api := &fakeAPI{verifyCodeErr: errors.New("Incorrect code. Please try again.")}
	m := enterVerifyState(t, api)

	m.Paste("000000")
	m.VerifyAndSend(context.Background())
	require.NotEmpty(t, m.CodeError())

	m.EnterDigit('1')
	assert.Empty(t, m.CodeError())
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "15:00", FormatCountdown(900))
	assert.Equal(t, "4:00", FormatCountdown(240))
	assert.Equal(t, "0:09", FormatCountdown(9))
	assert.Equal(t, "0:00", FormatCountdown(0))
}
