package sitecontent

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pampered-pooch/site-api/internal/domain"
)

// Service reads the business-info and service-catalog override documents.
// Both are read-only from this system's point of view; an absent document
// yields the empty value so the client keeps its built-in defaults.
type Service struct {
	businessInfoPath string
	servicesPath     string
}

func NewService(businessInfoPath, servicesPath string) *Service {
	return &Service{businessInfoPath: businessInfoPath, servicesPath: servicesPath}
}

func (s *Service) Get() (domain.SiteConfig, error) {
	businessInfo, err := readDocument(s.businessInfoPath, []byte("{}"))
	if err != nil {
		return domain.SiteConfig{}, err
	}
	services, err := readDocument(s.servicesPath, []byte("[]"))
	if err != nil {
		return domain.SiteConfig{}, err
	}
	return domain.SiteConfig{BusinessInfo: businessInfo, Services: services}, nil
}

// readDocument returns the file's JSON content, or fallback when the file is
// absent. A present-but-invalid document is an error, not a silent fallback.
func readDocument(path string, fallback []byte) (json.RawMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fallback, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("invalid JSON in %s", path)
	}
	return raw, nil
}
