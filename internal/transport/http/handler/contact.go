package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pampered-pooch/site-api/internal/application/contact"
	"github.com/pampered-pooch/site-api/internal/domain"
	"github.com/pampered-pooch/site-api/internal/pkg/validate"
)

// User-facing error strings are part of the client contract — the form
// surfaces them verbatim.
const (
	msgEmailRequired    = "Email is required"
	msgEmailCodeNeeded  = "Email and code are required"
	msgFieldsRequired   = "Name, email, and message are required"
	msgNoCode           = "No verification code found. Please request a new one."
	msgCodeExpired      = "Code expired. Please request a new one."
	msgCodeIncorrect    = "Incorrect code. Please try again."
	msgSendCodeFailed   = "Failed to send verification email. Please try again."
	msgSendMsgFailed    = "Failed to send message. Please try again."
	msgServerConfig     = "Server configuration error"
	msgCodeSent         = "Verification code sent"
	msgEmailVerified    = "Email verified successfully"
	msgMessageDelivered = "Message sent successfully"
)

// ContactHandler drives the contact-form verification and delivery endpoints.
type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// SendVerification handles POST /api/send-verification.
func (h *ContactHandler) SendVerification(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		writeError(w, http.StatusBadRequest, msgEmailRequired)
		return
	}

	if err := h.svc.SendVerification(r.Context(), body.Email, body.Name); err != nil {
		slog.Error("send verification", "email", body.Email, "err", err)
		writeError(w, http.StatusInternalServerError, msgSendCodeFailed)
		return
	}
	writeJSON(w, http.StatusOK, SuccessEnvelope{Success: true, Message: msgCodeSent})
}

// VerifyCode handles POST /api/verify-code.
func (h *ContactHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Code == "" {
		writeError(w, http.StatusBadRequest, msgEmailCodeNeeded)
		return
	}

	result, err := h.svc.VerifyCode(r.Context(), body.Email, body.Code)
	if err != nil {
		slog.Error("verify code", "email", body.Email, "err", err)
		writeError(w, http.StatusInternalServerError, "Verification failed")
		return
	}

	switch result {
	case domain.CheckVerified:
		writeJSON(w, http.StatusOK, SuccessEnvelope{Success: true, Message: msgEmailVerified})
	case domain.CheckNotFound:
		writeError(w, http.StatusBadRequest, msgNoCode)
	case domain.CheckExpired:
		writeError(w, http.StatusBadRequest, msgCodeExpired)
	case domain.CheckMismatch:
		writeError(w, http.StatusBadRequest, msgCodeIncorrect)
	}
}

// SendMessage handles POST /api/send-message. It trusts the caller to have
// verified first; see the permissive verify-then-send chain in the design.
func (h *ContactHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil ||
		msg.Name == "" || msg.Email == "" || msg.Message == "" {
		writeError(w, http.StatusBadRequest, msgFieldsRequired)
		return
	}
	if err := validate.Struct(msg); err != nil {
		writeError(w, http.StatusBadRequest, msgFieldsRequired)
		return
	}

	if err := h.svc.SendMessage(r.Context(), msg); err != nil {
		if errors.Is(err, contact.ErrNoRecipient) {
			slog.Error("MESSAGE_RECIPIENT not configured")
			writeError(w, http.StatusInternalServerError, msgServerConfig)
			return
		}
		slog.Error("send contact message", "from", msg.Email, "err", err)
		writeError(w, http.StatusInternalServerError, msgSendMsgFailed)
		return
	}
	writeJSON(w, http.StatusOK, SuccessEnvelope{Success: true, Message: msgMessageDelivered})
}
