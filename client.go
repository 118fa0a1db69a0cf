package transmission

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/jfxdev/go-transmission/request"
	"github.com/pkg/errors"
)

// SessionHeader is the header carrying the anti-CSRF session id required on
// every call after the first.
const SessionHeader = "X-Transmission-Session-Id"

const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultRetryBackoff   = 1 * time.Second
)

// BasicAuth holds the credentials attached to every outbound request as HTTP
// basic auth. The server is the source of truth for their validity; an
// authorization failure surfaces as a TransportError on the call.
type BasicAuth struct {
	Username string
	Password string
}

// Config contains runtime client settings and credentials.
type Config struct {
	// URL is the full RPC endpoint, e.g. "http://localhost:9091/transmission/rpc".
	// It is not validated at construction time; failures surface on first call.
	URL string

	// Auth, when set, is applied to both the session handshake and the
	// operation request.
	Auth *BasicAuth

	RequestTimeout time.Duration

	// MaxRetries > 0 enables bounded retry with exponential backoff for
	// transient transport failures and session conflicts. Zero keeps the
	// default behavior: every failure is surfaced to the caller as-is.
	MaxRetries   int
	RetryBackoff time.Duration

	// ReuseSession caches the session id across calls instead of performing
	// the handshake round trip per call. The cache is dropped when the server
	// answers 409 Conflict.
	ReuseSession bool
}

// Client is a typed Transmission RPC client. It holds no mutable per-call
// state; concurrent calls are independent.
type Client struct {
	mu      sync.RWMutex
	config  Config
	session *sessionCache
	log     logger
}

// New returns a client for the given RPC endpoint without authentication.
func New(url string) *Client {
	return NewWithConfig(Config{URL: url})
}

// WithAuth returns a client with basic-auth credentials configured.
func WithAuth(url, username, password string) *Client {
	return NewWithConfig(Config{
		URL:  url,
		Auth: &BasicAuth{Username: username, Password: password},
	})
}

// NewWithConfig returns a client with the given configuration, applying
// defaults for unset values.
func NewWithConfig(config Config) *Client {
	applyDefaults(&config)
	return &Client{
		config:  config,
		session: &sessionCache{},
		log:     newLogger("transmission"),
	}
}

func applyDefaults(config *Config) {
	if config.RequestTimeout == 0 {
		config.RequestTimeout = DefaultRequestTimeout
	}
	if config.RetryBackoff == 0 {
		config.RetryBackoff = DefaultRetryBackoff
	}
}

// Update replaces the client configuration. Any cached session id is dropped;
// the next call performs a fresh handshake.
func (c *Client) Update(config Config) {
	applyDefaults(&config)
	c.mu.Lock()
	c.config = config
	c.mu.Unlock()
	c.session.invalidate()
}

func (c *Client) snapshot() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// baseOptions returns the transport options shared by the handshake and the
// operation request: context, timeout and credentials.
func baseOptions(ctx context.Context, cfg Config) []request.RequestOption {
	opts := []request.RequestOption{
		request.WithContext(ctx),
		request.WithTimeout(cfg.RequestTimeout),
		request.WithHeader("Content-Type", "application/json"),
	}
	if cfg.Auth != nil {
		opts = append(opts, request.WithBasicAuth(cfg.Auth.Username, cfg.Auth.Password))
	}
	return opts
}

// FetchSessionID performs the session handshake: it issues a session-get call
// and extracts the session id from the response header. The body is not
// inspected; Transmission delivers the id on any status, including the 409 it
// answers when no id was presented.
func (c *Client) FetchSessionID(ctx context.Context) (string, error) {
	cfg := c.snapshot()

	payload, err := json.Marshal(NewSessionGetRequest())
	if err != nil {
		return "", errors.Wrap(err, "failed to encode session-get request")
	}

	c.log.Debugln("requesting session id")

	opts := append(baseOptions(ctx, cfg), request.WithBody(bytes.NewReader(payload)))
	resp, err := request.Do(http.MethodPost, cfg.URL, opts...)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	id := resp.Header.Get(SessionHeader)
	if id == "" {
		return "", &ProtocolError{Message: "server did not return a session id"}
	}

	c.log.Debugf("received session id: %s", id)
	return id, nil
}

// sessionID returns the id to present on the next call: the cached one when
// session reuse is enabled, a freshly fetched one otherwise.
func (c *Client) sessionID(ctx context.Context) (string, error) {
	if !c.snapshot().ReuseSession {
		return c.FetchSessionID(ctx)
	}
	return c.session.get(ctx, c.FetchSessionID)
}
