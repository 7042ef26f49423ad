package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/pampered-pooch/site-api/internal/domain"
	"github.com/pampered-pooch/site-api/internal/pkg/validate"
)

// State is the client-observable step of the contact workflow.
type State int

const (
	StateForm State = iota
	StateVerify
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateForm:
		return "form"
	case StateVerify:
		return "verify"
	case StateSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// API is the server surface the workflow drives. Errors carry the
// user-facing message verbatim.
type API interface {
	SendVerification(ctx context.Context, email, name string) error
	VerifyCode(ctx context.Context, email, code string) error
	SendMessage(ctx context.Context, msg domain.ContactMessage) error
}

const (
	// codeCountdown mirrors the server-side 15-minute code TTL, in seconds.
	codeCountdown = 900
	// resendCooldown is the wait before another code may be requested.
	resendCooldown = 240
	// successWindow is how long the success step is shown before the
	// workflow loops back to a blank form.
	successWindow = 4
)

// Machine drives the contact form through
// Form → Verify → Success → Form. Both countdowns decrement on Tick, which
// the owner calls once per second only while a timed state is active;
// stopping the tick source on every exit from Verify is the owner's half of
// the timer-teardown contract.
type Machine struct {
	mu  sync.Mutex
	api API

	state State
	form  domain.ContactMessage
	code  DigitBuffer

	errorMessage string // surfaced next to the form
	codeError    string // surfaced in the code-entry step

	timeLeft  int // seconds until the code-expired notice
	cooldown  int // seconds until resend is enabled
	successIn int // seconds until Success loops back to Form

	submitting bool
}

func NewMachine(api API) *Machine {
	return &Machine{api: api}
}

// SetForm replaces the draft form data. Editing clears any surfaced error.
func (m *Machine) SetForm(form domain.ContactMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.form = form
	m.errorMessage = ""
}

// Submit validates the draft and requests a verification code. Validation
// failures surface the first error and make no network call. A delivery
// failure surfaces the server's message and preserves the draft.
func (m *Machine) Submit(ctx context.Context) {
	m.mu.Lock()
	if m.state != StateForm || m.submitting {
		m.mu.Unlock()
		return
	}
	if msg := validateForm(m.form); msg != "" {
		m.errorMessage = msg
		m.mu.Unlock()
		return
	}
	m.submitting = true
	email, name := m.form.Email, m.form.Name
	m.mu.Unlock()

	err := m.api.SendVerification(ctx, email, name)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitting = false
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.enterVerify()
}

// Resend requests a fresh code. Disabled until the cooldown reaches zero.
// Success restarts both countdowns and clears the input; failure surfaces
// the error and leaves the running countdowns alone.
func (m *Machine) Resend(ctx context.Context) {
	m.mu.Lock()
	if m.state != StateVerify || m.cooldown > 0 || m.submitting {
		m.mu.Unlock()
		return
	}
	m.submitting = true
	email, name := m.form.Email, m.form.Name
	m.mu.Unlock()

	err := m.api.SendVerification(ctx, email, name)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitting = false
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.enterVerify()
}

// VerifyAndSend checks the entered code and, on success, delivers the
// message. Any failure clears the digit buffer, refocuses the first cell,
// and surfaces the message without advancing; a message-delivery failure
// after a successful check intentionally forces a code re-entry rather than
// restarting the whole form.
func (m *Machine) VerifyAndSend(ctx context.Context) {
	m.mu.Lock()
	if m.state != StateVerify || m.submitting || !m.code.Complete() {
		m.mu.Unlock()
		return
	}
	m.submitting = true
	email := m.form.Email
	code := m.code.Code()
	msg := m.form
	m.mu.Unlock()

	err := m.api.VerifyCode(ctx, email, code)
	if err == nil {
		err = m.api.SendMessage(ctx, msg)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitting = false
	if err != nil {
		m.codeError = err.Error()
		m.code.Clear()
		return
	}
	m.state = StateSuccess
	m.form = domain.ContactMessage{}
	m.successIn = successWindow
}

// Cancel abandons verification and returns to the form, preserving the
// draft. The server-side code stays valid until its own expiry.
func (m *Machine) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateVerify {
		return
	}
	m.state = StateForm
	m.codeError = ""
	m.submitting = false
}

// Tick advances both countdowns by one second while verifying, and the
// success window once the message is away.
func (m *Machine) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case StateVerify:
		if m.timeLeft > 0 {
			m.timeLeft--
			if m.timeLeft == 0 {
				m.codeError = "Code expired. Please resend."
			}
		}
		if m.cooldown > 0 {
			m.cooldown--
		}
	case StateSuccess:
		if m.successIn > 0 {
			m.successIn--
			if m.successIn == 0 {
				m.state = StateForm
			}
		}
	}
}

// EnterDigit, Backspace and Paste forward to the digit buffer; typing
// clears a surfaced code error.
func (m *Machine) EnterDigit(ch rune) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateVerify {
		return
	}
	m.code.Type(ch)
	m.codeError = ""
}

func (m *Machine) Backspace() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateVerify {
		return
	}
	m.code.Backspace()
}

func (m *Machine) Paste(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateVerify {
		return
	}
	m.code.Paste(s)
}

// enterVerify resets the code entry step: cleared buffer, both countdowns
// at their maxima, focus on the first cell. Callers hold the lock.
func (m *Machine) enterVerify() {
	m.state = StateVerify
	m.code.Clear()
	m.codeError = ""
	m.timeLeft = codeCountdown
	m.cooldown = resendCooldown
}

func validateForm(form domain.ContactMessage) string {
	if isBlank(form.Name) {
		return "Name is required"
	}
	if err := validate.Var(form.Email, "required,email"); err != nil {
		return "Valid email is required"
	}
	if isBlank(form.Phone) {
		return "Phone number is required"
	}
	if isBlank(form.Message) {
		return "Message is required"
	}
	return ""
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// State, Form, Digits and the rest expose the machine to its renderer.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine) Form() domain.ContactMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.form
}

func (m *Machine) Digits() DigitBuffer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.code
}

func (m *Machine) ErrorMessage() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errorMessage
}

func (m *Machine) CodeError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codeError
}

func (m *Machine) TimeLeft() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timeLeft
}

func (m *Machine) ResendCooldown() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cooldown
}

func (m *Machine) Submitting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submitting
}

// FormatCountdown renders seconds as M:SS for display.
func FormatCountdown(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
