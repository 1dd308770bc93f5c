package models

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// ClientConfig is the authenticated-client bundle produced by the
// authentication manager: basic-auth credentials, the fixed User-Agent string,
// and the stored session token to be replayed as a cookie.
//
// It is derived, never persisted — the manager rebuilds it from the credential
// store on every authentication call.
type ClientConfig struct {
	// Email is the basic-auth username.
	Email string

	// Password is the basic-auth password.
	Password string

	// UserAgent is the literal User-Agent header value sent on every request.
	UserAgent string

	// Token is the stored session token, replayed under [SessionCookieName].
	// May be empty when credentials exist but no login has succeeded yet; the
	// client is then built with basic-auth only.
	Token string
}

// Client builds a ready-to-use HTTP client from the configuration bundle.
//
// The client sends basic-auth and the fixed User-Agent on every request. When
// a token is present it is attached as a cookie named [SessionCookieName];
// an empty token sets no cookie at all.
func (c *ClientConfig) Client() *resty.Client {
	client := resty.New().
		SetBasicAuth(c.Email, c.Password).
		SetHeader("User-Agent", c.UserAgent)

	if c.Token != "" {
		client.SetCookie(&http.Cookie{Name: SessionCookieName, Value: c.Token})
	}

	return client
}
