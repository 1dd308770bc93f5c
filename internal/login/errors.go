package login

import "fmt"

// Error reports a login exchange that did not return the expected redirect.
// The remote service answers a successful credential POST with HTTP 302; any
// other status is a hard failure carrying the observed code.
//
// Callers should match it with [errors.As] to inspect the status code.
type Error struct {
	// StatusCode is the HTTP status returned by the login endpoint.
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("login failed with status code %d", e.StatusCode)
}
