// Package request is a small functional-options wrapper around net/http used
// by the RPC client for its POST exchanges.
package request

import (
	"context"
	"io"
	"net/http"
	"time"
)

type basicAuth struct {
	username string
	password string
}

// RequestOptions holds the per-request configuration
type RequestOptions struct {
	Timeout time.Duration
	Body    io.Reader
	Headers map[string]string
	Ctx     context.Context
	Auth    *basicAuth
}

// RequestOption applies one option to RequestOptions
type RequestOption func(*RequestOptions)

// WithTimeout sets a request timeout
func WithTimeout(timeout time.Duration) RequestOption {
	return func(o *RequestOptions) {
		o.Timeout = timeout
	}
}

// WithBody sets the request body
func WithBody(body io.Reader) RequestOption {
	return func(o *RequestOptions) {
		o.Body = body
	}
}

// WithHeader adds a single header to the request
func WithHeader(key, value string) RequestOption {
	return func(o *RequestOptions) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		o.Headers[key] = value
	}
}

// WithHeaders adds multiple headers at once
func WithHeaders(headers map[string]string) RequestOption {
	return func(o *RequestOptions) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		for k, v := range headers {
			o.Headers[k] = v
		}
	}
}

// WithContext sets the context used for the request
func WithContext(ctx context.Context) RequestOption {
	return func(o *RequestOptions) {
		o.Ctx = ctx
	}
}

// WithBasicAuth attaches an Authorization: Basic header to the request
func WithBasicAuth(username, password string) RequestOption {
	return func(o *RequestOptions) {
		o.Auth = &basicAuth{username: username, password: password}
	}
}

// Do executes an HTTP request with the given options
func Do(method, url string, opts ...RequestOption) (*http.Response, error) {
	options := &RequestOptions{
		Timeout: 10 * time.Second,
		Ctx:     context.Background(),
		Body:    nil,
	}

	for _, opt := range opts {
		opt(options)
	}

	client := &http.Client{Timeout: options.Timeout}

	req, err := http.NewRequestWithContext(options.Ctx, method, url, options.Body)
	if err != nil {
		return nil, err
	}

	for k, v := range options.Headers {
		req.Header.Set(k, v)
	}

	if options.Auth != nil {
		req.SetBasicAuth(options.Auth.username, options.Auth.password)
	}

	return client.Do(req)
}
