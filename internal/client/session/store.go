// Package session persists the bearer token that gates every authenticated
// call. Exactly one session exists per installation; it is written only by
// the sign-in and sign-out flows and read before each request.
package session

import (
	"context"
	"sync"
)

// Store is the durable token store.
//
// Token returns "" when no token is present; callers must then abort the
// request and surface an authentication-required condition instead of
// calling the server.
type Store interface {
	SetToken(ctx context.Context, token string) error
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Memory is an in-memory Store used in tests and as a fallback when no
// durable path is configured.
type Memory struct {
	mu    sync.Mutex
	token string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) SetToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *Memory) Token(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if expired(m.token) {
		return "", nil
	}
	return m.token, nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
