package probes

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"
)

func init() {
	Register(&httpProbe{})
	Register(&tlsProbe{})
}

// httpProbe fetches a URL and checks the response status and latency.
type httpProbe struct{}

func (p *httpProbe) Name() string { return "webapp.http" }

func (p *httpProbe) Run(ctx context.Context, params map[string]any) Result {
	url, ok := params["url"].(string)
	if !ok || url == "" {
		return ErrorResult("missing 'url' parameter")
	}
	expectedStatus := http.StatusOK
	if v, ok := params["expected_status"].(float64); ok {
		expectedStatus = int(v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ErrorResult("invalid url")
	}

	start := time.Now()
	resp, err := http.DefaultClient.Do(req)
	latency := time.Since(start)
	if err != nil {
		return Result{Status: StatusError, Data: map[string]any{"description": "request failed"}}
	}
	defer resp.Body.Close()

	data := map[string]any{
		"status_code": resp.StatusCode,
		"latency_ms":  latency.Seconds() * 1000,
	}
	if resp.StatusCode != expectedStatus {
		data["description"] = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		return Result{Status: StatusError, Data: data}
	}
	return Result{Status: StatusSuccess, Data: data}
}

// tlsProbe performs a TLS handshake and reports how many days remain until
// the peer certificate expires.
type tlsProbe struct{}

func (p *tlsProbe) Name() string { return "security.tls" }

func (p *tlsProbe) Run(ctx context.Context, params map[string]any) Result {
	host, ok := params["host"].(string)
	if !ok || host == "" {
		return ErrorResult("missing 'host' parameter")
	}
	port := "443"
	if v, ok := params["port"].(float64); ok {
		port = fmt.Sprintf("%d", int(v))
	}

	dialer := &tls.Dialer{Config: &tls.Config{ServerName: host}}
	start := time.Now()
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, port))
	latency := time.Since(start)
	if err != nil {
		return Result{Status: StatusError, Data: map[string]any{"description": "handshake failed"}}
	}
	defer conn.Close()

	certs := conn.(*tls.Conn).ConnectionState().PeerCertificates
	if len(certs) == 0 {
		return Result{Status: StatusError, Data: map[string]any{"description": "no peer certificate"}}
	}
	leaf := certs[0]
	daysLeft := time.Until(leaf.NotAfter).Hours() / 24
	data := map[string]any{
		"latency_ms":   latency.Seconds() * 1000,
		"expires_days": daysLeft,
		"subject":      leaf.Subject.CommonName,
	}
	if daysLeft <= 0 {
		data["description"] = "certificate expired"
		return Result{Status: StatusError, Data: data}
	}
	return Result{Status: StatusSuccess, Data: data}
}
