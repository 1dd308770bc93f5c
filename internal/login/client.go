// SPDX-License-Identifier: Apache-2.0
// Copyright 2024 EvickaStudio

package login

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/evickastudio/hugauth/internal/config"
	"github.com/evickastudio/hugauth/internal/logger"
	"github.com/evickastudio/hugauth/models"
)

// Client is the HTTP implementation of [SessionClient], backed by a resty
// client configured at construction with basic-auth credentials and the fixed
// User-Agent header.
//
// The underlying client keeps its cookie jar across calls within its own
// lifetime, which is how cookies set by the login response become available
// to Cookies afterwards.
type Client struct {
	credentials models.Credentials
	loginURL    string

	http *resty.Client
	log  *logger.Logger
}

var _ SessionClient = (*Client)(nil)

// NewClient constructs a single-use login client for the given credential
// pair. Redirect following is disabled so the 302 success signal reaches the
// caller instead of being consumed by the transport.
func NewClient(credentials models.Credentials, cfg config.Login, log *logger.Logger) *Client {
	client := resty.New().
		SetBasicAuth(credentials.Email, credentials.Password).
		SetHeader("User-Agent", cfg.UserAgent).
		SetTimeout(cfg.RequestTimeout).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(_ *http.Request, _ []*http.Request) error {
			// Surface the redirect response itself instead of following it.
			return http.ErrUseLastResponse
		}))

	return &Client{
		credentials: credentials,
		loginURL:    cfg.URL,
		http:        client,
		log:         log,
	}
}

// SignIn implements [SessionClient]. It POSTs the form-encoded credentials
// (field names username/password) to the login endpoint and succeeds only on
// HTTP 302.
func (c *Client) SignIn(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": c.credentials.Email,
			"password": c.credentials.Password,
		}).
		Post(c.loginURL)

	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	if resp.StatusCode() != http.StatusFound {
		return &Error{StatusCode: resp.StatusCode()}
	}

	c.log.Debug().Msg("login successful")
	return nil
}

// Cookies implements [SessionClient]. It reads the client's cookie jar for
// the login URL; names are not filtered here.
func (c *Client) Cookies() map[string]string {
	cookies := make(map[string]string)

	jar := c.http.GetClient().Jar
	if jar == nil {
		return cookies
	}

	u, err := url.Parse(c.loginURL)
	if err != nil {
		return cookies
	}

	for _, cookie := range jar.Cookies(u) {
		cookies[cookie.Name] = cookie.Value
	}

	return cookies
}
