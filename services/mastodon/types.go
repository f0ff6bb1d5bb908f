package mastodon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

const (
	VisibilityPublic = "public"
)

var (
	ErrTokenIsMissing    = errors.New("mastodon access token is missing")
	ErrEndpointIsMissing = errors.New("mastodon API URL is missing")
)

type Service interface {
	Publish(ctx context.Context, status string) (*StatusResponse, error)
}

type Impl struct {
	endpoint string
	token    string
	client   *http.Client
}

type statusRequest struct {
	Status     string `json:"status"`
	Visibility string `json:"visibility"`
}

type StatusResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// APIError is returned when the instance answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (err *APIError) Error() string {
	if err.Body == "" {
		return fmt.Sprintf("API request failed with status: %d", err.StatusCode)
	}
	return fmt.Sprintf("API request failed with status: %d: %s", err.StatusCode, err.Body)
}
