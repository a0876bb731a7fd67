// Package emailjs is a small client for the EmailJS REST send API.
//
// A Client must be initialized with the account public key once before the
// first Send, the same way the browser SDK is:
//
//	client := emailjs.New(emailjs.DefaultEndpoint, nil)
//	if err := client.Init(publicKey); err != nil { ... }
//	resp, err := client.Send(ctx, serviceID, templateID, params)
//
// Send returns the HTTP status EmailJS answered with; only 200 means the
// mail was accepted. Calls from a server require "Allow EmailJS API for
// non-browser applications" in the EmailJS account settings.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

var (
	ErrNotInitialized   = errors.New("emailjs: client is not initialized")
	ErrMissingPublicKey = errors.New("emailjs: public key is empty")
	ErrMissingIDs       = errors.New("emailjs: service id and template id are required")
)

// Response is the status and body text EmailJS returned.
type Response struct {
	Status int
	Text   string
}

type Client struct {
	endpoint   string
	httpClient *http.Client

	mu        sync.RWMutex
	publicKey string
}

// New creates a client. A nil httpClient means http.DefaultClient.
func New(endpoint string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, httpClient: httpClient}
}

// Init registers the public key used by every following Send.
func (c *Client) Init(publicKey string) error {
	if publicKey == "" {
		return ErrMissingPublicKey
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.publicKey = publicKey
	return nil
}

func (c *Client) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.publicKey != ""
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send asks EmailJS to render templateID with params and send it through
// serviceID. A non-nil error means no answer was received at all.
func (c *Client) Send(ctx context.Context, serviceID, templateID string, params map[string]string) (Response, error) {
	c.mu.RLock()
	publicKey := c.publicKey
	c.mu.RUnlock()
	if publicKey == "" {
		return Response{}, ErrNotInitialized
	}
	if serviceID == "" || templateID == "" {
		return Response{}, ErrMissingIDs
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      serviceID,
		TemplateID:     templateID,
		UserID:         publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return Response{}, fmt.Errorf("emailjs: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("emailjs: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("emailjs: send: %w", err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if err != nil {
		return Response{Status: resp.StatusCode}, fmt.Errorf("emailjs: read response: %w", err)
	}
	return Response{Status: resp.StatusCode, Text: string(text)}, nil
}
