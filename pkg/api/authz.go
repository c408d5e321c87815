package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/inventor-project/symon/pkg/auth"
	"github.com/inventor-project/symon/pkg/services"
)

// devBypassValue short-circuits per-request authorization when the dev
// bypass is enabled in the settings. Never enable it outside development.
const devBypassValue = "xdev"

// authorizeRequest proves the caller holds a secret for this request. Order
// matters: the timestamp window is checked first, then the nonce is burned,
// then the digest is compared against the endpoint key and finally against
// the root key. A replayed nonce fails even with a valid digest.
//
// endpointKey is the resource-scoped secret, empty when the endpoint is
// covered by the session token alone. When authorization fails the error
// response has already been written and the handler must return err as is.
func (s *Server) authorizeRequest(c *echo.Context, rootKey, endpointKey string) (bool, error) {
	requestHMAC := c.Request().Header.Get("Authorization-Hmac")
	if requestHMAC == devBypassValue && s.cfg.Bool("authorization", "allow_dev_bypass_bool") {
		return true, nil
	}

	timeHeader := c.Request().Header.Get("Authorization-Time")
	nonce := c.Request().Header.Get("Authorization-Nonce")

	validity := s.cfg.Int("authorization", "request_validity_int")
	if err := auth.VerifyRequestTime(timeHeader, validity); err != nil {
		return false, apiError(c, http.StatusForbidden, err.Error())
	}

	if err := s.nonceService.Consume(c.Request().Context(), nonce); err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			return false, apiError(c, http.StatusForbidden, "The nonce has already been used.")
		}
		return false, mapServiceError(c, err)
	}

	canonicalBody, err := auth.CanonicalBody(requestBody(c))
	if err != nil {
		return false, apiError(c, http.StatusBadRequest, "Could not parse the request body.")
	}

	method := c.Request().Method
	path := c.Request().URL.Path
	query := c.Request().URL.RawQuery

	if endpointKey != "" {
		if auth.VerifyHMAC(requestHMAC, method, path, query, canonicalBody, timeHeader, nonce, endpointKey) {
			return true, nil
		}
		slog.Warn("The authorization token doesn't match the value expected by the test.")
	}

	if auth.VerifyHMAC(requestHMAC, method, path, query, canonicalBody, timeHeader, nonce, rootKey) {
		return true, nil
	}

	return false, apiError(c, http.StatusForbidden, "Wrong authorization token.")
}
