// Package mailtmpl renders the transactional email bodies. The HTML templates
// are embedded so a deployment can't lose them; each render also produces a
// plain-text alternative for clients that don't display HTML.
package mailtmpl

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/pampered-pooch/site-api/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Verification renders the code-delivery email.
func Verification(code string) (html, text string, err error) {
	var b strings.Builder
	err = templates.ExecuteTemplate(&b, "verification.html", struct {
		Code string
		Year int
	}{Code: code, Year: time.Now().Year()})
	if err != nil {
		return "", "", fmt.Errorf("render verification template: %w", err)
	}

	text = fmt.Sprintf("Your verification code is: %s\n\n"+
		"This code expires in 15 minutes.\n\n"+
		"If you didn't request this code, please ignore this email.\n\n"+
		"The Pampered Pooch\nLot 102 Main Road, Willunga, SA 5172\nPhone: (08) 8556 4155", code)
	return b.String(), text, nil
}

// ContactMessage renders the forwarded contact-form email.
func ContactMessage(msg domain.ContactMessage) (html, text string, err error) {
	var b strings.Builder
	err = templates.ExecuteTemplate(&b, "contact-message.html", struct {
		domain.ContactMessage
		Year int
	}{ContactMessage: msg, Year: time.Now().Year()})
	if err != nil {
		return "", "", fmt.Errorf("render contact-message template: %w", err)
	}

	var t strings.Builder
	fmt.Fprintf(&t, "New Contact Form Message\n\nFrom: %s\nEmail: %s\n", msg.Name, msg.Email)
	if msg.Phone != "" {
		fmt.Fprintf(&t, "Phone: %s\n", msg.Phone)
	}
	fmt.Fprintf(&t, "\nMessage:\n%s", msg.Message)
	return b.String(), t.String(), nil
}
