package transmission

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// ErrorCode represents a specific transport error type for client-side handling
type ErrorCode string

const (
	// ErrorCodeNone indicates no error
	ErrorCodeNone ErrorCode = ""

	// ErrorCodeAuthFailure indicates invalid username/password - requires user intervention
	ErrorCodeAuthFailure ErrorCode = "AUTH_FAILURE"

	// ErrorCodeTimeout indicates connection or request timeout - temporary, can retry
	ErrorCodeTimeout ErrorCode = "TIMEOUT"

	// ErrorCodeDNS indicates DNS resolution failure - check hostname configuration
	ErrorCodeDNS ErrorCode = "DNS_ERROR"

	// ErrorCodeHTTPSRequired indicates HTTP was used but HTTPS is required
	ErrorCodeHTTPSRequired ErrorCode = "HTTPS_REQUIRED"

	// ErrorCodeSSLError indicates SSL/TLS certificate or connection error
	ErrorCodeSSLError ErrorCode = "SSL_ERROR"

	// ErrorCodeConnectionRefused indicates the server actively refused the connection
	ErrorCodeConnectionRefused ErrorCode = "CONNECTION_REFUSED"

	// ErrorCodeNetworkUnreachable indicates network routing issues
	ErrorCodeNetworkUnreachable ErrorCode = "NETWORK_UNREACHABLE"

	// ErrorCodeBadGateway indicates a proxy/gateway error (502)
	ErrorCodeBadGateway ErrorCode = "BAD_GATEWAY"

	// ErrorCodeServiceUnavailable indicates the service is temporarily unavailable (503)
	ErrorCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// ErrorCodeUnknown indicates an unclassified error
	ErrorCodeUnknown ErrorCode = "UNKNOWN"
)

// TransportError represents an underlying network or HTTP failure: the RPC
// endpoint could not be reached or answered with a failing status.
type TransportError struct {
	Code    ErrorCode
	Message string
	Err     error
	// Permanent indicates whether this error requires user intervention (true)
	// or can be resolved by retrying (false)
	Permanent bool
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsPermanent returns true if the error requires user intervention
func (e *TransportError) IsPermanent() bool {
	return e.Permanent
}

// NewTransportError creates a new TransportError
func NewTransportError(code ErrorCode, message string, err error, permanent bool) *TransportError {
	return &TransportError{
		Code:      code,
		Message:   message,
		Err:       err,
		Permanent: permanent,
	}
}

// ProtocolError indicates the server responded but violated the session
// protocol: the X-Transmission-Session-Id header is missing, or the server
// rejected the presented session id with 409 Conflict.
type ProtocolError struct {
	Message    string
	StatusCode int
}

func (e *ProtocolError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("protocol error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("protocol error: %s", e.Message)
}

// DecodeError indicates the response body did not parse into the expected
// typed shape. Body carries the raw payload for diagnosis.
type DecodeError struct {
	Err  error
	Body []byte
}

func (e *DecodeError) Error() string {
	body := string(e.Body)
	if len(body) > 512 {
		body = body[:512] + "..."
	}
	return fmt.Sprintf("decode error: %v (body: %s)", e.Err, body)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsSessionConflict reports whether err is the stale-token signal: the server
// answered 409 Conflict because the presented session id is no longer valid.
func IsSessionConflict(err error) bool {
	var protoErr *ProtocolError
	return errors.As(err, &protoErr) && protoErr.StatusCode == http.StatusConflict
}

// classifyTransportError analyzes a network-level error and returns a
// structured TransportError
func classifyTransportError(err error) *TransportError {
	if err == nil {
		return nil
	}

	// Already classified
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr
	}

	// DNS errors
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return NewTransportError(
			ErrorCodeDNS,
			fmt.Sprintf("Failed to resolve hostname: %s", dnsErr.Name),
			err,
			true,
		)
	}

	// Network operation errors (connection refused, timeout, etc.)
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return classifyOpError(opErr, err)
	}

	// URL errors
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		// Check if it wraps another error we can classify
		if urlErr.Err != nil {
			if classified := classifyTransportError(urlErr.Err); classified != nil {
				return classified
			}
		}

		// Timeout
		if urlErr.Timeout() {
			return NewTransportError(
				ErrorCodeTimeout,
				"Request timed out",
				err,
				false,
			)
		}
	}

	// TLS/SSL errors
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return NewTransportError(
			ErrorCodeSSLError,
			"SSL certificate verification failed",
			err,
			true,
		)
	}

	// Check for common error patterns in the error string
	return classifyByMessage(err.Error(), err)
}

// classifyOpError classifies net.OpError errors
func classifyOpError(opErr *net.OpError, originalErr error) *TransportError {
	// Connection refused
	if opErr.Op == "dial" {
		if strings.Contains(opErr.Error(), "connection refused") {
			return NewTransportError(
				ErrorCodeConnectionRefused,
				"Connection refused - server may be down or port is incorrect",
				originalErr,
				false,
			)
		}

		if strings.Contains(opErr.Error(), "no route to host") ||
			strings.Contains(opErr.Error(), "network is unreachable") {
			return NewTransportError(
				ErrorCodeNetworkUnreachable,
				"Network unreachable - check network connectivity",
				originalErr,
				false,
			)
		}
	}

	// Timeout
	if opErr.Timeout() {
		return NewTransportError(
			ErrorCodeTimeout,
			"Connection timed out",
			originalErr,
			false,
		)
	}

	// Default network error
	return NewTransportError(
		ErrorCodeUnknown,
		"Network operation failed",
		originalErr,
		false,
	)
}

// classifyByMessage classifies errors based on error message patterns
func classifyByMessage(errStr string, err error) *TransportError {
	lowerErr := strings.ToLower(errStr)

	// Timeout patterns
	if strings.Contains(lowerErr, "timeout") ||
		strings.Contains(lowerErr, "deadline exceeded") ||
		strings.Contains(lowerErr, "context canceled") {
		return NewTransportError(
			ErrorCodeTimeout,
			"Request timed out",
			err,
			false,
		)
	}

	// SSL/TLS patterns
	if strings.Contains(lowerErr, "certificate") ||
		strings.Contains(lowerErr, "x509") ||
		strings.Contains(lowerErr, "tls") ||
		strings.Contains(lowerErr, "ssl") {
		return NewTransportError(
			ErrorCodeSSLError,
			"SSL/TLS connection failed - check certificate configuration",
			err,
			true,
		)
	}

	// HTTP/HTTPS mismatch
	if strings.Contains(lowerErr, "malformed http response") ||
		strings.Contains(lowerErr, "first record does not look like a tls handshake") {
		return NewTransportError(
			ErrorCodeHTTPSRequired,
			"Protocol mismatch - try using HTTPS instead of HTTP",
			err,
			true,
		)
	}

	// Connection refused
	if strings.Contains(lowerErr, "connection refused") {
		return NewTransportError(
			ErrorCodeConnectionRefused,
			"Connection refused - server may be down",
			err,
			false,
		)
	}

	// DNS patterns
	if strings.Contains(lowerErr, "no such host") ||
		strings.Contains(lowerErr, "lookup") ||
		strings.Contains(lowerErr, "dns") {
		return NewTransportError(
			ErrorCodeDNS,
			"DNS resolution failed - check hostname",
			err,
			true,
		)
	}

	// Authentication patterns
	if strings.Contains(lowerErr, "unauthorized") ||
		strings.Contains(lowerErr, "authentication failed") ||
		strings.Contains(lowerErr, "invalid username") ||
		strings.Contains(lowerErr, "invalid password") ||
		strings.Contains(lowerErr, "invalid credentials") {
		return NewTransportError(
			ErrorCodeAuthFailure,
			"Invalid username or password",
			err,
			true,
		)
	}

	// Default unknown error
	return NewTransportError(
		ErrorCodeUnknown,
		"Unknown error occurred",
		err,
		false,
	)
}

// classifyHTTPStatusCode classifies a failing HTTP status into a TransportError.
// 409 Conflict is not handled here; it is the session protocol's stale-token
// signal and surfaces as a ProtocolError.
func classifyHTTPStatusCode(statusCode int, body string) *TransportError {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return NewTransportError(
			ErrorCodeAuthFailure,
			fmt.Sprintf("Authentication failed with status %d", statusCode),
			nil,
			true,
		)
	case http.StatusBadGateway:
		return NewTransportError(
			ErrorCodeBadGateway,
			fmt.Sprintf("Bad Gateway (502): %s", body),
			nil,
			false,
		)
	case http.StatusServiceUnavailable:
		return NewTransportError(
			ErrorCodeServiceUnavailable,
			fmt.Sprintf("Service Unavailable (503): %s", body),
			nil,
			false,
		)
	case http.StatusGatewayTimeout:
		return NewTransportError(
			ErrorCodeTimeout,
			fmt.Sprintf("Gateway Timeout (504): %s", body),
			nil,
			false,
		)
	default:
		return NewTransportError(
			ErrorCodeUnknown,
			fmt.Sprintf("Request failed with status %d: %s", statusCode, body),
			nil,
			false,
		)
	}
}

// IsRetryableError returns true if the error is temporary and can be retried.
// Session conflicts are retryable: the next attempt fetches a fresh session id.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if IsSessionConflict(err) {
		return true
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return !transportErr.Permanent
	}

	return false
}

// IsPermanentError returns true if the error requires user intervention
func IsPermanentError(err error) bool {
	if err == nil {
		return false
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Permanent
	}

	return false
}

// GetErrorCode extracts the transport error code from an error
func GetErrorCode(err error) ErrorCode {
	if err == nil {
		return ErrorCodeNone
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Code
	}

	return ErrorCodeUnknown
}
