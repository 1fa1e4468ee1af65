// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"strings"

	"odoolink/cli/internal/errors"
)

// Credentials identify a user on one server. Database may be empty, in which case
// it is inferred from the URL host.
type Credentials struct {
	URL      string `json:"url"`
	Database string `json:"db,omitempty"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate reports missing fields before any network call is made.
func (c Credentials) Validate() error {
	var missing []string
	if strings.TrimSpace(c.URL) == "" {
		missing = append(missing, "url")
	}
	if strings.TrimSpace(c.Username) == "" {
		missing = append(missing, "username")
	}
	if c.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return errors.New(errors.Auth, "incomplete credentials: missing "+strings.Join(missing, ", "))
	}
	return nil
}

// Identity is the result of a successful login. Password is kept because every
// object call repeats it positionally.
type Identity struct {
	Database string
	UserID   int64
	Password string
}
