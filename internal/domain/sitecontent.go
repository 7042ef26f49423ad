package domain

import "encoding/json"

// SiteConfig carries the business-info and service-catalog override documents.
// Absent documents are served as an empty object / empty array; the client
// keeps its built-in defaults unless an override has at least one entry.
type SiteConfig struct {
	BusinessInfo json.RawMessage `json:"businessInfo"`
	Services     json.RawMessage `json:"services"`
}
