package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/r-huijts/LibreChat/schema"
)

var ErrNoActiveConsent = fmt.Errorf("no active consent for this model")

// APIClient talks to the consent API on behalf of one authenticated user.
type APIClient struct {
	apiEndpoint string
	token       string
	client      *http.Client
}

func NewAPIClient(endpoint, token string) *APIClient {
	u, _ := url.Parse(endpoint)

	apiEndpoint := &url.URL{
		Scheme: u.Scheme,
		Host:   u.Host,
	}

	return &APIClient{
		apiEndpoint: apiEndpoint.String(),
		token:       token,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *APIClient) makeRequest(req *http.Request) (*http.Response, error) {
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.token))
	if req.Header.Get("Content-Type") == "" {
		req.Header.Add("Content-Type", "application/json")
	}
	return c.client.Do(req)
}

// GetUser fetches the caller's user document, embedded consents included.
func (c *APIClient) GetUser(ctx context.Context) (*schema.User, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/api/v1/user", c.apiEndpoint), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.makeRequest(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fail to get user: status %d", resp.StatusCode)
	}

	var body struct {
		User schema.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	return &body.User, nil
}

// ListConsents fetches the caller's consent records.
func (c *APIClient) ListConsents(ctx context.Context, includeRevoked bool) ([]schema.ModelConsent, error) {
	target := fmt.Sprintf("%s/api/v1/consents", c.apiEndpoint)
	if includeRevoked {
		target += "?include_revoked=true"
	}

	req, err := http.NewRequestWithContext(ctx, "GET", target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.makeRequest(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fail to list consents: status %d", resp.StatusCode)
	}

	var body struct {
		Consents []schema.ModelConsent `json:"consents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	return body.Consents, nil
}

// AcceptConsent records acceptance of a model for the caller.
func (c *APIClient) AcceptConsent(ctx context.Context, modelName, modelLabel string, metadata map[string]interface{}) (*schema.ModelConsent, error) {
	var reqBody bytes.Buffer
	if err := json.NewEncoder(&reqBody).Encode(map[string]interface{}{
		"model_name":  modelName,
		"model_label": modelLabel,
		"metadata":    metadata,
	}); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/api/v1/consents", c.apiEndpoint), &reqBody)
	if err != nil {
		return nil, err
	}

	resp, err := c.makeRequest(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Debug("error from consent api")
		return nil, fmt.Errorf("fail to accept consent: status %d", resp.StatusCode)
	}

	var body struct {
		Consent schema.ModelConsent `json:"consent"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	return &body.Consent, nil
}

// RevokeConsent revokes the caller's active consent for a model. It returns
// ErrNoActiveConsent when there was nothing to revoke.
func (c *APIClient) RevokeConsent(ctx context.Context, modelName string) error {
	req, err := http.NewRequestWithContext(ctx, "DELETE",
		fmt.Sprintf("%s/api/v1/consents/%s", c.apiEndpoint, url.PathEscape(modelName)), nil)
	if err != nil {
		return err
	}

	resp, err := c.makeRequest(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNoActiveConsent
	default:
		return fmt.Errorf("fail to revoke consent: status %d", resp.StatusCode)
	}
}
