// Package identity is the HTTP client of the identity service.
package identity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

const serviceName = "users"

// DefaultTimeout bounds a single existence check.
const DefaultTimeout = 5 * time.Second

var _ ports.UserDirectory = (*Client)(nil)

// Client checks user existence with GET {baseURL}/v1/users/{id}. The call is made
// with admin privileges on behalf of the user being checked. Concurrent checks for
// the same user share one request.
type Client struct {
	baseURL string
	http    *http.Client
	group   singleflight.Group
	logger  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With("component", "IdentityClient"),
	}
}

// Verify returns nil only when the identity service answers 200.
func (c *Client) Verify(ctx context.Context, userID string) error {
	ch := c.group.DoChan(userID, func() (any, error) {
		// The shared request outlives any single caller; the client timeout bounds it.
		return nil, c.fetch(context.WithoutCancel(ctx), userID)
	})

	select {
	case res := <-ch:
		var upstream *errs.UpstreamError
		if errors.As(res.Err, &upstream) {
			c.logger.ErrorContext(ctx, "Identity service unavailable", "userId", userID, "error", res.Err)
		}
		return res.Err
	case <-ctx.Done():
		return errs.NewUpstreamErrorWithCause(serviceName, ctx.Err())
	}
}

func (c *Client) fetch(ctx context.Context, userID string) error {
	endpoint := fmt.Sprintf("%s/v1/users/%s", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errs.NewUpstreamErrorWithCause(serviceName, err)
	}
	req.Header.Set("X-User-Id", userID)
	req.Header.Set("X-User-Roles", `["admin"]`)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewUpstreamErrorWithCause(serviceName, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return errs.NewObjectNotFoundError("user", userID)
	default:
		return errs.NewUpstreamErrorWithCause(serviceName, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
}
