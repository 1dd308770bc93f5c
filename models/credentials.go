package models

// Credentials is the email/password pair used to authenticate against the
// remote service. It is owned by the credential store: components read it but
// never mutate it outside the store's setter.
type Credentials struct {
	// Email is the account email address, also used as the basic-auth
	// username on outbound requests.
	Email string

	// Password is the account password in plaintext. It is persisted to the
	// local backing file and must never be logged.
	Password string
}

// Complete reports whether both required fields are non-empty. A login
// attempt requires complete credentials.
func (c Credentials) Complete() bool {
	return c.Email != "" && c.Password != ""
}
