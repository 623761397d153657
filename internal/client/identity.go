// Package client is the dashboard-side core: it talks to the MotoMind API
// over HTTP and keeps one workshop's view (record page and channel state)
// consistent with the server.
package client

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"motomind/internal/domain/apperrors"
)

// Identity is the signed-in workshop.
type Identity interface {
	ID() string
	Token(ctx context.Context) (string, error)
}

// IdentityProvider tracks who is signed in. Listeners receive nil on
// sign-out.
type IdentityProvider interface {
	CurrentIdentity() Identity
	OnIdentityChange(fn func(Identity)) (unsubscribe func())
	SignOut(ctx context.Context) error
}

type staticIdentity struct {
	id    string
	token string
}

// NewStaticIdentity wraps a pre-issued bearer token.
func NewStaticIdentity(id, token string) Identity {
	return staticIdentity{id: strings.TrimSpace(id), token: strings.TrimSpace(token)}
}

func (i staticIdentity) ID() string { return i.id }

func (i staticIdentity) Token(context.Context) (string, error) {
	if i.token == "" {
		return "", fmt.Errorf("%w: no token for %q", apperrors.ErrAuth, i.id)
	}
	return i.token, nil
}

// StaticIdentityProvider holds the identity in memory. SetIdentity and
// SignOut notify listeners synchronously, in registration order.
type StaticIdentityProvider struct {
	mu        sync.Mutex
	current   Identity
	listeners map[int]func(Identity)
	nextID    int
}

var _ IdentityProvider = (*StaticIdentityProvider)(nil)

func NewStaticIdentityProvider(initial Identity) *StaticIdentityProvider {
	return &StaticIdentityProvider{current: initial, listeners: make(map[int]func(Identity))}
}

func (p *StaticIdentityProvider) CurrentIdentity() Identity {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *StaticIdentityProvider) OnIdentityChange(fn func(Identity)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.listeners, id)
	}
}

func (p *StaticIdentityProvider) SetIdentity(id Identity) {
	p.mu.Lock()
	p.current = id
	fns := p.snapshot()
	p.mu.Unlock()
	for _, fn := range fns {
		fn(id)
	}
}

func (p *StaticIdentityProvider) SignOut(context.Context) error {
	p.SetIdentity(nil)
	return nil
}

func (p *StaticIdentityProvider) snapshot() []func(Identity) {
	ids := make([]int, 0, len(p.listeners))
	for id := range p.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]func(Identity), 0, len(ids))
	for _, id := range ids {
		out = append(out, p.listeners[id])
	}
	return out
}

// bearer resolves a token before any request is built.
func bearer(ctx context.Context, id Identity) (string, error) {
	if id == nil {
		return "", fmt.Errorf("%w: not signed in", apperrors.ErrAuth)
	}
	tok, err := id.Token(ctx)
	if err != nil {
		if apperrors.Retryable(err) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", apperrors.ErrAuth, err)
	}
	if strings.TrimSpace(tok) == "" {
		return "", fmt.Errorf("%w: empty token", apperrors.ErrAuth)
	}
	return tok, nil
}
