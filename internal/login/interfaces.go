// Package login performs the single credential-based login exchange against
// the remote service.
//
// A [Client] is constructed per attempt with the credential pair, POSTs the
// form-encoded credentials to the login endpoint, and treats exactly HTTP 302
// as success — redirects are not followed, and any other status yields a
// typed [*Error]. The session token travels back solely via Set-Cookie
// headers; Cookies exposes everything collected on the client so the caller
// can extract the cookie it cares about.
package login

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/login_mock.go -package=mock

// SessionClient is the contract of a single-use login client. An
// implementation is created with a credential pair, used for exactly one
// SignIn call, and discarded — it is not reused for subsequent API calls.
type SessionClient interface {
	// SignIn issues the single authoritative login attempt. There are no
	// retries and no backoff. Returns nil on HTTP 302, a [*Error] with the
	// observed status on any other code, or a wrapped transport error if the
	// request itself fails.
	SignIn(ctx context.Context) error

	// Cookies returns every cookie collected on the client keyed by name,
	// unfiltered. The caller is responsible for picking out the one it needs.
	Cookies() map[string]string
}
