package request

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestWithTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond) // shorter than the timeout
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resp, err := Do(http.MethodPost, server.URL, WithTimeout(2*time.Second))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestWithTimeoutExceeded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := Do(http.MethodPost, server.URL, WithTimeout(50*time.Millisecond))
	if err == nil {
		t.Fatal("Expected timeout error")
	}
}

func TestWithBody(t *testing.T) {
	expectedBody := `{"method": "session-get"}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if string(body) != expectedBody {
			t.Errorf("Expected body '%s', got '%s'", expectedBody, string(body))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := Do(http.MethodPost, server.URL, WithBody(strings.NewReader(expectedBody)))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
}

func TestWithHeader(t *testing.T) {
	expectedKey := "X-Transmission-Session-Id"
	expectedValue := "abc123"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(expectedKey) != expectedValue {
			t.Errorf("Expected header '%s' with value '%s', got '%s'", expectedKey, expectedValue, r.Header.Get(expectedKey))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := Do(http.MethodPost, server.URL, WithHeader(expectedKey, expectedValue))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
}

func TestWithHeaders(t *testing.T) {
	expectedHeaders := map[string]string{
		"Content-Type":   "application/json",
		"X-Header-Extra": "value",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range expectedHeaders {
			if r.Header.Get(k) != v {
				t.Errorf("Expected header '%s' with value '%s', got '%s'", k, v, r.Header.Get(k))
			}
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := Do(http.MethodPost, server.URL, WithHeaders(expectedHeaders))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
}

func TestWithBasicAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:secret"))
		if r.Header.Get("Authorization") != expected {
			t.Errorf("Expected authorization '%s', got '%s'", expected, r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := Do(http.MethodPost, server.URL, WithBasicAuth("admin", "secret"))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
}

func TestWithoutBasicAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("Expected no authorization header, got '%s'", r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := Do(http.MethodPost, server.URL)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
}

func TestWithContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Do(http.MethodPost, server.URL, WithContext(ctx))
	if err == nil {
		t.Fatal("Expected cancellation error")
	}
}

func TestMethodIsHonored(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := Do(http.MethodGet, server.URL)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
}
