// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"

	"odoolink/cli/internal/backend"
	"odoolink/cli/internal/errors"
	"odoolink/cli/internal/odoo"
	"odoolink/cli/internal/session"
)

// Service centralizes credential lookup and login against the server.
type Service struct {
	source Source
	doer   backend.Doer
}

// NewService constructs a Service. A nil doer uses backend's default client.
func NewService(source Source, doer backend.Doer) *Service {
	return &Service{source: source, doer: doer}
}

// Session is a logged-in client for one profile.
type Session struct {
	Client      *odoo.Client
	Credentials session.Credentials
	Identity    session.Identity
}

// Client returns an unauthenticated client for the profile's server, for calls
// that need no login (server version, addon probe).
func (s *Service) Client(name string) (*odoo.Client, session.Credentials, error) {
	creds, err := s.source.Credentials(name)
	if err != nil {
		return nil, creds, errors.Normalize("credentials", err)
	}
	if err := creds.Validate(); err != nil {
		return nil, creds, errors.Normalize("credentials", err)
	}
	return odoo.Dial(creds.URL, s.doer), creds, nil
}

// Open looks up the profile and logs in.
func (s *Service) Open(ctx context.Context, name string) (*Session, error) {
	client, creds, err := s.Client(name)
	if err != nil {
		return nil, err
	}
	id, err := client.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return &Session{Client: client, Credentials: creds, Identity: id}, nil
}

// Verify logs in with creds directly, before they are saved.
func (s *Service) Verify(ctx context.Context, creds session.Credentials) (session.Identity, error) {
	if err := creds.Validate(); err != nil {
		return session.Identity{}, errors.Normalize("login", err)
	}
	return odoo.Dial(creds.URL, s.doer).Login(ctx, creds)
}
