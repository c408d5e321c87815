// Package responder answers UDP liveness probes. External monitoring can
// ask a running agent for its protocol version without touching the API.
package responder

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"strings"
)

// protocolVersion is the answer to a "version" query.
const protocolVersion = "1"

// Service is a minimal UDP request/reply server.
type Service struct {
	addr string

	conn   *net.UDPConn
	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a responder listening on addr. An empty addr means the
// responder is not configured and Start becomes a no-op.
func NewService(addr string) *Service {
	return &Service{addr: addr}
}

// Start binds the UDP socket and launches the reply loop.
func (s *Service) Start(ctx context.Context) error {
	if s.addr == "" {
		slog.Warn("UDP responder address is not defined and therefore it is not running")
		return nil
	}
	if s.cancel != nil {
		return nil
	}

	udpAddr, err := net.ResolveUDPAddr("udp", s.addr)
	if err != nil {
		return err
	}
	s.conn, err = net.ListenUDP("udp", udpAddr)
	if err != nil {
		return err
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("UDP responder started", "address", s.addr)
	return nil
}

// Stop closes the socket and waits for the reply loop to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.conn.Close()
	<-s.done
	slog.Info("UDP responder stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	buffer := make([]byte, 512)
	for {
		n, remote, err := s.conn.ReadFromUDP(buffer)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return
			}
			slog.Warn("UDP responder read failed", "error", err)
			continue
		}
		response := Respond(string(buffer[:n]))
		if _, err := s.conn.WriteToUDP([]byte(response), remote); err != nil {
			slog.Warn("UDP responder write failed", "remote", remote, "error", err)
		}
	}
}

// Respond maps one query to its reply.
func Respond(query string) string {
	if strings.TrimSpace(query) == "version" {
		return protocolVersion
	}
	return "N/A"
}
