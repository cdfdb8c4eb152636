// Package existence asks sibling services whether a referenced record exists.
package existence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"qualifygym/internal/common"
)

// Checker reports whether the record with the given id exists in the
// service that owns it. Transport failures are folded into the checker's
// fallback policy and never returned.
type Checker interface {
	Exists(ctx context.Context, id uint64) bool
}

// CheckerFunc adapts a plain function to Checker.
type CheckerFunc func(ctx context.Context, id uint64) bool

func (f CheckerFunc) Exists(ctx context.Context, id uint64) bool {
	return f(ctx, id)
}

// Policy decides the answer when the owning service cannot be asked.
type Policy int

const (
	FailClosed Policy = iota // unreachable counts as missing
	FailOpen                 // unreachable counts as existing
)

func (p Policy) String() string {
	if p == FailOpen {
		return "fail-open"
	}
	return "fail-closed"
}

func PolicyFor(failOpen bool) Policy {
	if failOpen {
		return FailOpen
	}
	return FailClosed
}

// HTTPChecker issues GET {baseURL}/{resource}/{id}/exists and expects
// 200 {"exists": bool}. A 404 means the record does not exist.
type HTTPChecker struct {
	client   *http.Client
	baseURL  string
	resource string
	policy   Policy
}

func NewHTTPChecker(client *http.Client, baseURL, resource string, policy Policy) *HTTPChecker {
	return &HTTPChecker{
		client:   client,
		baseURL:  baseURL,
		resource: resource,
		policy:   policy,
	}
}

func (c *HTTPChecker) Exists(ctx context.Context, id uint64) bool {
	if id == 0 {
		return false
	}

	exists, err := c.lookup(ctx, id)
	if err != nil {
		fallback := c.policy == FailOpen
		slog.WarnContext(ctx, "existence check failed, applying fallback",
			"resource", c.resource,
			"id", id,
			"policy", c.policy.String(),
			"result", fallback,
			"error", err,
		)
		common.ExistenceChecksTotal.WithLabelValues(c.resource, "fallback").Inc()
		return fallback
	}

	if exists {
		common.ExistenceChecksTotal.WithLabelValues(c.resource, "exists").Inc()
	} else {
		common.ExistenceChecksTotal.WithLabelValues(c.resource, "missing").Inc()
	}
	return exists
}

func (c *HTTPChecker) lookup(ctx context.Context, id uint64) (bool, error) {
	url := fmt.Sprintf("%s/%s/%d/exists", c.baseURL, c.resource, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if rid, ok := ctx.Value(common.RequestIDKey).(string); ok {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("request to %s failed: %w", c.resource, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body common.ExistsResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return false, fmt.Errorf("failed to decode %s response: %w", c.resource, err)
		}
		return body.Exists, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, c.resource)
	}
}
