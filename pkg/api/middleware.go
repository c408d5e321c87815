package api

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/inventor-project/symon/pkg/auth"
)

// Context keys used to hand data from the middleware to the handlers.
const (
	ctxOrchestratorName = "orchestrator_name"
	ctxRequestBody      = "request_body"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// sessionAuth returns middleware that authenticates the session token,
// stamps the orchestrator's last-seen time and writes one accounting record
// per request. The request body is buffered here so the authorization layer
// can hash it and the handler can still bind it.
func (s *Server) sessionAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.Contains(header, "Bearer") {
				return apiError(c, http.StatusUnauthorized, "Missing bearer token.")
			}
			_, tokenString, _ := strings.Cut(header, "Bearer")
			tokenKey := s.cfg.String("authentication", "token_key")
			data, err := auth.ParseToken(strings.TrimSpace(tokenString), tokenKey)
			if err != nil {
				return apiError(c, http.StatusUnauthorized, "Could not get data from the token.")
			}
			if data.OrchestratorIP != c.RealIP() {
				return apiError(c, http.StatusUnauthorized, "The token was assigned to a different IP.")
			}
			c.Set(ctxOrchestratorName, data.OrchestratorName)

			if err := s.orchestratorService.Touch(c.Request().Context(), data.OrchestratorName, time.Now()); err != nil {
				slog.Warn("Failed to stamp orchestrator last seen time",
					"orchestrator", data.OrchestratorName, "error", err)
			}

			body, err := io.ReadAll(c.Request().Body)
			if err != nil {
				return apiError(c, http.StatusBadRequest, "Could not read the request body.")
			}
			c.Request().Body = io.NopCloser(bytes.NewReader(body))
			c.Set(ctxRequestBody, body)

			err = next(c)
			s.recordAccounting(c, data.OrchestratorName, body)
			return err
		}
	}
}

// recordAccounting appends one accounting line for a finished request.
func (s *Server) recordAccounting(c *echo.Context, orchestrator string, body []byte) {
	bodyLine := strings.ReplaceAll(string(body), "\n", "\\n")
	status := 0
	if resp, err := echo.UnwrapResponse(c.Response()); err == nil {
		status = resp.Status
	}
	s.accounting.Record(
		orchestrator,
		c.Request().Method,
		c.Request().URL.Path,
		status,
		c.Request().URL.RawQuery,
		bodyLine,
	)
}

// orchestratorName returns the authenticated caller set by sessionAuth.
func orchestratorName(c *echo.Context) string {
	name, _ := c.Get(ctxOrchestratorName).(string)
	return name
}

// requestBody returns the buffered request body set by sessionAuth.
func requestBody(c *echo.Context) []byte {
	body, _ := c.Get(ctxRequestBody).([]byte)
	return body
}
