// File path: internal/bridge/bridge.go

// Package bridge relays caller-specified JSON requests to a private backend
// the browser cannot reach directly. One attempt, no retry, no caching; the
// remote endpoint owns idempotency.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/openclaw/mission-control/internal/common"
)

// DefaultTimeout bounds a single forward. The relay contract has no timeout
// of its own, but an unbounded hang on a dead host would pin the calling
// request forever, so the client carries a ceiling.
const DefaultTimeout = 30 * time.Second

// ForwardRequest describes one outbound relay call.
type ForwardRequest struct {
	TargetHost string          `json:"target_host"`
	Port       string          `json:"port"`
	Endpoint   string          `json:"endpoint"`
	Method     string          `json:"method"`
	Data       json.RawMessage `json:"data"`
}

// Relay forwards JSON payloads to an arbitrary reachable host.
type Relay struct {
	client *http.Client
}

// New constructs a Relay with the default bounded client.
func New() *Relay {
	return NewWithClient(&http.Client{Timeout: DefaultTimeout})
}

// NewWithClient constructs a Relay using the provided HTTP client.
func NewWithClient(client *http.Client) *Relay {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Relay{client: client}
}

// TargetURL builds the forward destination from host, optional port and path.
func (f ForwardRequest) TargetURL() string {
	var b strings.Builder
	b.WriteString("http://")
	b.WriteString(f.TargetHost)
	if strings.TrimSpace(f.Port) != "" {
		b.WriteString(":")
		b.WriteString(strings.TrimSpace(f.Port))
	}
	b.WriteString(f.Endpoint)
	return b.String()
}

// Forward issues the relay call and returns the remote JSON response
// verbatim. Every network-level failure, and a non-JSON response, comes back
// as an error; nothing is retried.
func (r *Relay) Forward(ctx context.Context, req ForwardRequest) (json.RawMessage, error) {
	logger := common.Logger()
	if strings.TrimSpace(req.TargetHost) == "" {
		return nil, fmt.Errorf("target host required")
	}
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodPost
	}
	var body io.Reader
	if len(req.Data) > 0 {
		body = bytes.NewReader(req.Data)
	}
	target := req.TargetURL()
	outbound, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build forward request: %w", err)
	}
	outbound.Header.Set("Content-Type", "application/json")

	logger.Debug("bridge: forwarding", "method", method, "target", target)
	resp, err := r.client.Do(outbound)
	if err != nil {
		logger.Warn("bridge: forward failed", "target", target, "error", err)
		return nil, fmt.Errorf("forward to %s: %w", target, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read forward response: %w", err)
	}
	if !json.Valid(payload) {
		return nil, fmt.Errorf("forward to %s: response is not valid JSON", target)
	}
	logger.Debug("bridge: forward succeeded", "target", target, "status", resp.StatusCode, "bytes", len(payload))
	return json.RawMessage(payload), nil
}
