package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"slidereel/internal/domain"
)

// DefaultTimeout bounds a whole fetch, body included
const DefaultTimeout = 10 * time.Second

// ErrUnsuccessful is returned when the backend answers with success=false
var ErrUnsuccessful = errors.New("slide source reported failure")

// envelope is the backend response shape
type envelope struct {
	Success bool           `json:"success"`
	Data    []domain.Slide `json:"data"`
}

// HTTP fetches slides from a REST endpoint returning
// {"success": bool, "data": [{"id", "imageUrl", "order", "isActive"}]}
type HTTP struct {
	URL  string
	HTTP *http.Client
}

// NewHTTP creates an HTTP source for url
func NewHTTP(url string) *HTTP {
	return &HTTP{URL: url, HTTP: &http.Client{Timeout: DefaultTimeout}}
}

var _ Source = (*HTTP)(nil)

func (c *HTTP) Name() string { return c.URL }

func (c *HTTP) Fetch(ctx context.Context) ([]domain.Slide, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("slides get %s: %s", c.URL, resp.Status)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode slides: %w", err)
	}
	if !env.Success {
		return nil, ErrUnsuccessful
	}
	return env.Data, nil
}
