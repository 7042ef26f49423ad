package domain

// ContactMessage is a verified contact-form submission, delivered by email and
// optionally appended to a best-effort local log. It is never stored as an entity.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message" validate:"required"`
}
