package domain

import "time"

// CodeTTL is how long an issued verification code stays valid.
const CodeTTL = 15 * time.Minute

// VerificationRecord is an active one-time code for a contact-form submitter.
// Keyed by the lower-cased email address; at most one record per email — a new
// issue overwrites any prior record. Never persisted by the in-memory backend.
type VerificationRecord struct {
	Email     string `json:"email" dynamodbav:"email"`
	Code      string `json:"code" dynamodbav:"code"`
	Name      string `json:"name" dynamodbav:"name"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"` // TTL (Unix seconds)
}

// CheckResult is the outcome of checking a submitted code against the store.
type CheckResult int

const (
	CheckVerified CheckResult = iota
	CheckNotFound             // never issued, already consumed, or swept
	CheckExpired              // past expiry; the record is deleted as a side effect
	CheckMismatch             // wrong code; the record is retained for retry
)

func (r CheckResult) String() string {
	switch r {
	case CheckVerified:
		return "verified"
	case CheckNotFound:
		return "not_found"
	case CheckExpired:
		return "expired"
	case CheckMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}
