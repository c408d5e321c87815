package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/inventor-project/symon/pkg/auth"
	"github.com/inventor-project/symon/pkg/models"
)

// postTokenHandler handles POST /auth/token. The client sends a form with
// its name and a login proof derived from the shared password; it gets back
// a session token bound to its address. Login attempts are the one thing
// accounted for before authentication succeeds.
func (s *Server) postTokenHandler(c *echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	clientIP := c.RealIP()
	accountingBody := "ip=" + clientIP

	expectedPassword := s.cfg.String("authentication", "password")
	if !auth.VerifyLogin(username, password, expectedPassword) {
		s.accounting.Record(username, c.Request().Method, c.Request().URL.Path,
			http.StatusUnauthorized, c.Request().URL.RawQuery, accountingBody)
		return apiError(c, http.StatusUnauthorized, "Incorrect username or password.")
	}

	if err := s.orchestratorService.Touch(c.Request().Context(), username, time.Now()); err != nil {
		s.accounting.Record(username, c.Request().Method, c.Request().URL.Path,
			http.StatusInternalServerError, c.Request().URL.RawQuery, accountingBody)
		return mapServiceError(c, err)
	}

	validity := s.cfg.Int("authentication", "token_validity_int")
	tokenKey := s.cfg.String("authentication", "token_key")
	token, err := auth.CreateToken(username, clientIP, validity, tokenKey)
	if err != nil {
		s.accounting.Record(username, c.Request().Method, c.Request().URL.Path,
			http.StatusInternalServerError, c.Request().URL.RawQuery, accountingBody)
		return mapServiceError(c, err)
	}

	s.accounting.Record(username, c.Request().Method, c.Request().URL.Path,
		http.StatusOK, c.Request().URL.RawQuery, accountingBody)
	return c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token})
}

// getTimeHandler handles GET /auth/time. Clients sync their request
// timestamps to the agent's clock before computing authorization digests.
func (s *Server) getTimeHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, models.TimeResponse{Time: models.UnixSeconds(time.Now())})
}
