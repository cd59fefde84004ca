// File path: internal/bridge/bridge_test.go
package bridge

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func splitHostPort(t *testing.T, url string) (string, string) {
	t.Helper()
	host, port, err := net.SplitHostPort(strings.TrimPrefix(url, "http://"))
	if err != nil {
		t.Fatalf("split host port: %v", err)
	}
	return host, port
}

func TestForwardEchoesJSONVerbatim(t *testing.T) {
	var gotMethod, gotContentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer ts.Close()

	host, port := splitHostPort(t, ts.URL)
	relay := New()
	payload := json.RawMessage(`{"ping":"pong","n":7}`)
	result, err := relay.Forward(context.Background(), ForwardRequest{
		TargetHost: host,
		Port:       port,
		Endpoint:   "/echo",
		Data:       payload,
	})
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	if string(result) != string(payload) {
		t.Fatalf("body not echoed verbatim: %s", result)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("method should default to POST, got %q", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected JSON content type, got %q", gotContentType)
	}
}

func TestForwardUsesRequestedMethod(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"method": r.Method})
	}))
	defer ts.Close()

	host, port := splitHostPort(t, ts.URL)
	relay := New()
	result, err := relay.Forward(context.Background(), ForwardRequest{
		TargetHost: host,
		Port:       port,
		Endpoint:   "/health",
		Method:     "get",
	})
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	var decoded map[string]string
	if err := json.Unmarshal(result, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["method"] != http.MethodGet {
		t.Fatalf("method not forwarded: %q", decoded["method"])
	}
}

func TestForwardUnreachableReturnsError(t *testing.T) {
	relay := NewWithClient(&http.Client{Timeout: 500 * time.Millisecond})
	start := time.Now()
	_, err := relay.Forward(context.Background(), ForwardRequest{
		TargetHost: "127.0.0.1",
		Port:       "9",
		Endpoint:   "/health",
		Method:     "GET",
	})
	if err == nil {
		t.Fatal("expected a connection failure")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("failure took too long: %v", elapsed)
	}
}

func TestForwardRejectsNonJSONResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain text"))
	}))
	defer ts.Close()

	host, port := splitHostPort(t, ts.URL)
	relay := New()
	if _, err := relay.Forward(context.Background(), ForwardRequest{TargetHost: host, Port: port}); err == nil {
		t.Fatal("expected an error for a non-JSON response")
	}
}

func TestForwardRequiresHost(t *testing.T) {
	relay := New()
	if _, err := relay.Forward(context.Background(), ForwardRequest{}); err == nil {
		t.Fatal("expected an error for a missing host")
	}
}

func TestTargetURL(t *testing.T) {
	cases := []struct {
		req  ForwardRequest
		want string
	}{
		{ForwardRequest{TargetHost: "10.0.0.5", Port: "9999", Endpoint: "/health"}, "http://10.0.0.5:9999/health"},
		{ForwardRequest{TargetHost: "10.0.0.5", Endpoint: "/health"}, "http://10.0.0.5/health"},
		{ForwardRequest{TargetHost: "backend.internal"}, "http://backend.internal"},
	}
	for _, tc := range cases {
		if got := tc.req.TargetURL(); got != tc.want {
			t.Fatalf("TargetURL mismatch: got %q want %q", got, tc.want)
		}
	}
}
