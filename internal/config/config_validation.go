package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the assembled configuration and returns a sentinel-wrapped
// error for the first invalid group it encounters. First-run default
// credentials are deliberately not validated here: they are optional and only
// consulted by the bootstrap when the store is empty.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("%w: empty store path", ErrInvalidStoreConfigs)
	}

	if err := validateLoginURL(c.Login.URL); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLoginConfigs, err)
	}
	if c.Login.UserAgent == "" {
		return fmt.Errorf("%w: empty user agent", ErrInvalidLoginConfigs)
	}
	if c.Login.RequestTimeout <= 0 {
		return fmt.Errorf("%w: non-positive request timeout", ErrInvalidLoginConfigs)
	}

	return nil
}

func validateLoginURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty login url")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("login url must include host and scheme")
	}

	return nil
}
