package mastodon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxErrorBodySize = 4096

func New(endpoint, token string, timeout time.Duration) (*Impl, error) {
	if token == "" {
		return nil, ErrTokenIsMissing
	}
	if endpoint == "" {
		return nil, ErrEndpointIsMissing
	}

	return &Impl{
		endpoint: endpoint,
		token:    token,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Publish posts a public status. The returned response is empty when the
// instance answers with a body that is not a status.
func (service *Impl) Publish(ctx context.Context, status string) (*StatusResponse, error) {
	jsonValue, err := json.Marshal(statusRequest{Status: status, Visibility: VisibilityPublic})
	if err != nil {
		return nil, fmt.Errorf("failed to prepared data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, service.endpoint, bytes.NewBuffer(jsonValue))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+service.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := service.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to post status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var result StatusResponse
	_ = json.NewDecoder(resp.Body).Decode(&result)
	return &result, nil
}
