package models

import "time"

// SessionCookieName is the name of the cookie carrying the session token in
// the remote service's login response, and the name under which the stored
// token is replayed on the authenticated client.
const SessionCookieName = "token"

// expireDateLayout is the ISO date format used for the stored expire_date
// value (e.g. "2024-06-09").
const expireDateLayout = "2006-01-02"

// SessionToken is the session credential issued by the remote service after a
// successful login. A token is present only if Token is non-empty; an
// empty-string token is equivalent to "no session".
type SessionToken struct {
	// Token is the opaque session token value extracted from the login
	// response's "token" cookie.
	Token string

	// ExpireDate is an optional ISO date (YYYY-MM-DD) after which the token
	// is considered stale. It may be empty: the login response carries no
	// expiry information, so the field is only populated when set explicitly.
	ExpireDate string
}

// Present reports whether a session token is stored. An empty Token value
// means no session.
func (t SessionToken) Present() bool {
	return t.Token != ""
}

// Expired reports whether ExpireDate lies strictly before now.
//
// An empty or unparsable ExpireDate is treated as "not expired". Note that
// authentication does not currently consult this: any present token is reused
// as-is regardless of its expiry date.
func (t SessionToken) Expired(now time.Time) bool {
	if t.ExpireDate == "" {
		return false
	}

	expiry, err := time.Parse(expireDateLayout, t.ExpireDate)
	if err != nil {
		return false
	}

	return expiry.Before(now.Truncate(24 * time.Hour))
}
