package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pampered-pooch/site-api/internal/domain"
)

// Client talks to the site API. Server errors come back with their
// user-facing message so the machine can surface them verbatim.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

func (c *Client) SendVerification(ctx context.Context, email, name string) error {
	return c.post(ctx, "/api/send-verification",
		map[string]string{"email": email, "name": name},
		"Failed to send verification email")
}

func (c *Client) VerifyCode(ctx context.Context, email, code string) error {
	return c.post(ctx, "/api/verify-code",
		map[string]string{"email": email, "code": code},
		"Verification failed")
}

func (c *Client) SendMessage(ctx context.Context, msg domain.ContactMessage) error {
	return c.post(ctx, "/api/send-message", msg, "Failed to send message")
}

func (c *Client) post(ctx context.Context, path string, body interface{}, fallbackMsg string) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.New(fallbackMsg)
	}
	defer resp.Body.Close()

	var out struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&out)

	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return errors.New(out.Error)
		}
		return errors.New(fallbackMsg)
	}
	return nil
}

// FetchSiteConfig loads the server's business-info and services overrides,
// keeping the built-in defaults for any document that comes back empty or
// unreachable.
func (c *Client) FetchSiteConfig(ctx context.Context) (BusinessInfo, []Service) {
	info := DefaultBusinessInfo
	services := DefaultServices

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/config", nil)
	if err != nil {
		return info, services
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return info, services
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return info, services
	}

	var body struct {
		BusinessInfo map[string]json.RawMessage `json:"businessInfo"`
		Services     []Service                  `json:"services"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return info, services
	}

	if len(body.BusinessInfo) > 0 {
		raw, _ := json.Marshal(body.BusinessInfo)
		var override BusinessInfo
		if err := json.Unmarshal(raw, &override); err == nil {
			info = override
		}
	}
	if len(body.Services) > 0 {
		services = body.Services
	}
	return info, services
}

// Health pings the API so the terminal client can fail fast when the server
// isn't up.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: unexpected status %d", resp.StatusCode)
	}
	return nil
}
