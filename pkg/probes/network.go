package probes

import (
	"context"
	"net"
	"os/exec"
	"regexp"
	"time"
)

func init() {
	Register(&pingProbe{})
	Register(&dnsAProbe{})
}

// pingProbe sends one ICMP echo through the system ping binary and reports
// the round trip time.
type pingProbe struct{}

func (p *pingProbe) Name() string { return "network.icmp.ping" }

var pingRTTPattern = regexp.MustCompile(`time[=<]([\d.]+) ?ms`)

func (p *pingProbe) Run(ctx context.Context, params map[string]any) Result {
	target, ok := params["target"].(string)
	if !ok || target == "" {
		return ErrorResult("missing 'target' parameter")
	}

	out, err := exec.CommandContext(ctx, "ping", "-c", "1", target).CombinedOutput()
	if err != nil {
		return Result{Status: StatusError, Data: map[string]any{"description": "no reply"}}
	}
	match := pingRTTPattern.FindSubmatch(out)
	if match == nil {
		return Result{Status: StatusError, Data: map[string]any{"description": "unable to parse ping output"}}
	}
	return Result{Status: StatusSuccess, Data: map[string]any{"delay": string(match[1])}}
}

// dnsAProbe resolves the A records of a domain and measures the lookup
// latency.
type dnsAProbe struct{}

func (p *dnsAProbe) Name() string { return "network.dns.a" }

func (p *dnsAProbe) Run(ctx context.Context, params map[string]any) Result {
	domain, ok := params["domain"].(string)
	if !ok || domain == "" {
		return ErrorResult("missing 'domain' parameter")
	}

	resolver := &net.Resolver{}
	if server, ok := params["server"].(string); ok && server != "" {
		dialer := &net.Dialer{}
		resolver = &net.Resolver{
			PreferGo: true,
			Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
				return dialer.DialContext(ctx, network, net.JoinHostPort(server, "53"))
			},
		}
	}

	start := time.Now()
	ips, err := resolver.LookupIP(ctx, "ip4", domain)
	latency := time.Since(start)
	if err != nil || len(ips) == 0 {
		return Result{Status: StatusError, Data: map[string]any{"description": "unable to translate domain name"}}
	}
	addresses := make([]string, len(ips))
	for i, ip := range ips {
		addresses[i] = ip.String()
	}
	return Result{Status: StatusSuccess, Data: map[string]any{
		"ip":         addresses[0],
		"addresses":  addresses,
		"latency_ms": latency.Seconds() * 1000,
	}}
}
