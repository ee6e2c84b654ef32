package simpletexting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/Behyna/smsrouter/pkg/httpclient"
)

const (
	ListContactsEndpoint = "/v1/group/contact/list"
	SendEndpoint         = "/v1/send"
)

var defaultHeaders = map[string]string{
	"Accept": "application/json",
}

type Client interface {
	ListContacts(ctx context.Context, group string) ([]Contact, error)
	Send(ctx context.Context, phone string, message string) (SendResponse, error)
}

type client struct {
	client httpclient.HTTPClient
	config Config
}

func NewClient(cfg Config, httpClient httpclient.HTTPClient) Client {
	return &client{config: cfg, client: httpClient}
}

func (c *client) ListContacts(ctx context.Context, group string) ([]Contact, error) {
	endpoint, err := httpclient.WithQuery(c.config.BaseURL+ListContactsEndpoint, url.Values{
		"token": {c.config.Token},
		"group": {group},
	})
	if err != nil {
		return nil, fmt.Errorf("building url: %w", err)
	}

	resp, err := c.client.Get(ctx, endpoint, defaultHeaders)
	if err != nil {
		return nil, transportError(err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, MapStatusToError(resp.StatusCode)
	}

	var contacts ContactList
	if err := json.NewDecoder(resp.Body).Decode(&contacts); err != nil {
		return nil, fmt.Errorf("decoding error: %w", err)
	}

	return contacts, nil
}

func (c *client) Send(ctx context.Context, phone string, message string) (SendResponse, error) {
	endpoint, err := httpclient.WithQuery(c.config.BaseURL+SendEndpoint, url.Values{
		"token":   {c.config.Token},
		"phone":   {phone},
		"message": {message},
	})
	if err != nil {
		return SendResponse{}, fmt.Errorf("building url: %w", err)
	}

	resp, err := c.client.Post(ctx, endpoint, nil, defaultHeaders)
	if err != nil {
		return SendResponse{}, transportError(err)
	}

	defer resp.Body.Close()

	var response SendResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&response)

	if resp.StatusCode != http.StatusOK {
		return response, MapStatusToError(resp.StatusCode)
	}

	if decodeErr != nil {
		return SendResponse{}, fmt.Errorf("%w: decoding error: %v", ErrNotAccepted, decodeErr)
	}

	if !response.Accepted() {
		return response, fmt.Errorf("%w: code %d", ErrNotAccepted, response.Code)
	}

	return response, nil
}

func transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}

	return fmt.Errorf("%w: %v", ErrNetworkError, err)
}
