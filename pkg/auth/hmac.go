package auth

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Per-request authorization failures, mapped to 403 at the HTTP edge.
var (
	ErrMissingTime    = errors.New("missing request time for authorization")
	ErrBadTimeFormat  = errors.New("request time for authorization has wrong format")
	ErrWrongTimeRange = errors.New("wrong request time")
)

// CanonicalBody renders a JSON request body deterministically, with object
// keys sorted, so client and agent hash the same bytes regardless of the
// client's serializer. An empty body canonicalizes to "".
func CanonicalBody(body []byte) (string, error) {
	if len(body) == 0 {
		return "", nil
	}
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("failed to parse request body: %w", err)
	}
	canonical, err := json.Marshal(decoded)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize request body: %w", err)
	}
	return string(canonical), nil
}

// ComputeHMAC derives the request authorization digest. The digest chains
// the request identity (method, path, query, canonical body), the client
// supplied time and nonce, and the shared secret.
func ComputeHMAC(method, path, query, canonicalBody, timeHeader, nonce, secret string) string {
	return CalculateHash(method + path + query + canonicalBody + timeHeader + nonce + secret)
}

// VerifyHMAC reports whether the client's digest matches the one expected
// under secret. The comparison runs in constant time.
func VerifyHMAC(requestHMAC, method, path, query, canonicalBody, timeHeader, nonce, secret string) bool {
	expected := ComputeHMAC(method, path, query, canonicalBody, timeHeader, nonce, secret)
	return subtle.ConstantTimeCompare([]byte(requestHMAC), []byte(expected)) == 1
}

// VerifyRequestTime accepts only requests stamped within the validity
// window and never from the future.
func VerifyRequestTime(timeHeader string, validitySeconds int) error {
	if timeHeader == "" {
		return ErrMissingTime
	}
	stamp, err := strconv.ParseFloat(timeHeader, 64)
	if err != nil {
		return ErrBadTimeFormat
	}
	now := float64(time.Now().UnixNano()) / float64(time.Second)
	if stamp > now || stamp+float64(validitySeconds) < now {
		return fmt.Errorf("%w (diff %.1fs)", ErrWrongTimeRange, now-stamp)
	}
	return nil
}
