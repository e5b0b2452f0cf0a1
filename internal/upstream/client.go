// Package upstream is the client for the remote finance API. It wraps one
// HTTP call per operation, normalizes the enveloped-vs-bare response shapes
// and maps failures to typed errors. It performs no business logic.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/assistente-financeiro/painel/internal/session"
)

// DefaultTimeout bounds regular upstream calls. Assistant calls use
// assistantTimeout instead, see assistant.go.
const DefaultTimeout = 30 * time.Second

// Client talks to the upstream finance API.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *session.Store

	mu          sync.Mutex
	lastMessage string
}

// New creates a client for the API at baseURL. The session store provides
// the bearer token for every call and is invalidated when the upstream
// answers 401.
func New(baseURL string, sessions *session.Store) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		http:     &http.Client{Timeout: DefaultTimeout},
		sessions: sessions,
	}
}

// LastMessage returns the most recent server-supplied message seen on any
// response, for diagnostics. It is reset by ClearLastMessage.
func (c *Client) LastMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastMessage
}

// ClearLastMessage resets the recorded server message.
func (c *Client) ClearLastMessage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastMessage = ""
}

func (c *Client) recordMessage(body []byte) {
	msg := message(body)

	c.mu.Lock()
	c.lastMessage = msg
	c.mu.Unlock()
}

// do executes one request and returns the raw response body. Non-2xx
// statuses become *Error with the server message extracted; a 401
// additionally invalidates the session.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	if current := c.sessions.Current(); current.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+current.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		requestCount.WithLabelValues("error", method).Inc()
		return nil, err
	}
	defer resp.Body.Close()

	requestCount.WithLabelValues(strconv.Itoa(resp.StatusCode), method).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	c.recordMessage(raw)

	if resp.StatusCode == http.StatusUnauthorized {
		log.Warn().Str("path", path).Msg("upstream answered 401, tearing session down")
		if err := c.sessions.Invalidate(); err != nil {
			log.Error().Err(err).Msg("session teardown failed")
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &Error{
			Status:  resp.StatusCode,
			Message: message(raw),
		}
	}

	return raw, nil
}

// getList fetches and normalizes a list endpoint.
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	values, _, err := decodeList[T](raw)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return values, nil
}

// exchangeOne sends payload (may be nil) and normalizes a single-entity
// response.
func exchangeOne[T any](ctx context.Context, c *Client, method, path string, query url.Values, payload any) (T, error) {
	var value T

	raw, err := c.do(ctx, method, path, query, payload)
	if err != nil {
		return value, err
	}

	value, _, err = decodeOne[T](raw)
	if err != nil {
		return value, fmt.Errorf("decoding %s: %w", path, err)
	}

	return value, nil
}
