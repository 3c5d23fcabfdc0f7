package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

var (
	ErrProfileNotFound = errors.New("carrier profile not found")
	ErrProfileMismatch = errors.New("carrier profile does not match the requested network")
	ErrProfileInvalid  = errors.New("carrier profile is invalid")
)

const maxPayloadSize = 1 << 20

// Client fetches carrier profiles from the remote profile endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	group    singleflight.Group
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the profile of mcc/mnc. Concurrent fetches of the same
// network share one request, every caller gets its own decoded Profile.
func (c *Client) Fetch(ctx context.Context, mcc, mnc string) (*Profile, error) {
	key := mcc + "-" + mnc
	v, err, _ := c.group.Do(key, func() (any, error) {
		return c.download(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	p, err := Decode(v.([]byte))
	if err != nil {
		return nil, err
	}
	if !p.Matches(mcc, mnc) {
		return nil, fmt.Errorf("%w: requested %s, got %s-%s", ErrProfileMismatch, key, p.MCC, p.MNC)
	}
	return p, nil
}

func (c *Client) download(ctx context.Context, key string) ([]byte, error) {
	url := c.endpoint + "/public/carrierlist/" + key + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	slog.Debug("fetching carrier profile", "url", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, key)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch carrier profile %s: unexpected status %s", key, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
}
