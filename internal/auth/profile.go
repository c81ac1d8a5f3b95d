package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ProfileFoundMessage is the response message of a successful lookup.
const ProfileFoundMessage = "Citizen found"

// ErrProfileUnavailable is returned when the profile endpoint answers
// with anything but a found record.
var ErrProfileUnavailable = errors.New("profile unavailable")

// Profile is the extended user record. Its shape belongs to the remote
// service, so it is kept as a generic object.
type Profile map[string]any

// ProfileFetcher looks up the extended profile for an email address.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, email string) (Profile, error)
}

// ProfileClient calls the profile endpoint over HTTP.
type ProfileClient struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

// NewProfileClient returns a client posting to endpoint. A nil client
// uses http.DefaultClient.
func NewProfileClient(endpoint string, client *http.Client, timeout time.Duration) *ProfileClient {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ProfileClient{endpoint: endpoint, client: client, timeout: timeout}
}

type profileRequest struct {
	Email string `json:"email"`
}

type profileResponse struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// FetchProfile implements ProfileFetcher.
func (c *ProfileClient) FetchProfile(ctx context.Context, email string) (Profile, error) {
	body, err := json.Marshal(profileRequest{Email: email})
	if err != nil {
		return nil, fmt.Errorf("encode profile request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("profile request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read profile response: %w", err)
	}

	var out profileResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrProfileUnavailable, err)
	}
	if out.Message != ProfileFoundMessage {
		return nil, fmt.Errorf("%w: %q", ErrProfileUnavailable, out.Message)
	}

	profile := Profile{}
	if len(out.Data) > 0 && string(out.Data) != "null" {
		if err := json.Unmarshal(out.Data, &profile); err != nil {
			return nil, fmt.Errorf("%w: decode data: %v", ErrProfileUnavailable, err)
		}
	}
	return profile, nil
}
