package api

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError reports a failed backend call: any non-2xx response or a
// transport-level fault. StatusCode is 0 when the request never produced an
// HTTP response.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request failed: %s", e.Message)
	}
	return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
}

// IsAuth reports whether the failure means the session is not accepted by
// the server. The gateway only reports this; acting on it (logging out) is
// the consuming layer's obligation.
func (e *RequestError) IsAuth() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsAuthError reports whether err is a RequestError caused by a rejected
// session token.
func IsAuthError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.IsAuth()
}
