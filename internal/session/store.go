// Package session owns the authenticated-customer identity, the bearer
// credential, and the auth panel's transient UI state. The store is the single
// source of truth; every other component reads copies.
package session

import (
	"log/slog"
	"sync"
	"time"

	"atelier-storefront/internal/model"
)

type Store struct {
	mu        sync.RWMutex
	customer  *model.Customer
	token     *model.AccessToken
	view      model.AuthView
	panelOpen bool

	persister Persister
	now       func() time.Time
	log       *slog.Logger
}

// New builds an anonymous store. persister may be nil for purely in-memory use
// (tests mostly).
func New(persister Persister, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}

	return &Store{
		view:      model.AuthViewLogin,
		persister: persister,
		now:       time.Now,
		log:       log,
	}
}

// Hydrate loads the persisted subset into the store without writing anything
// back. It runs once at startup, before the restoration protocol.
func (s *Store) Hydrate() error {
	if s.persister == nil {
		return nil
	}

	persisted, err := s.persister.Load()
	if err != nil || persisted == nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = persisted.Customer
	s.token = persisted.Credential()
	return nil
}

// SetCustomer replaces the stored identity. The caller supplies a
// backend-verified identity; no validation happens here.
func (s *Store) SetCustomer(c *model.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customer = cloneCustomer(c)
	s.persistLocked()
}

// SetAccessToken replaces the credential. Token and expiry always change
// together; passing nil clears both.
func (s *Store) SetAccessToken(t *model.AccessToken) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t == nil {
		s.token = nil
	} else {
		copied := *t
		s.token = &copied
	}
	s.persistLocked()
}

// SetSession replaces identity and credential together under one lock, so the
// pair reaches the persister as a single write. Login-shaped updates go through
// here; a crash can then never leave a credential on disk without its identity.
func (s *Store) SetSession(c *model.Customer, t *model.AccessToken) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customer = cloneCustomer(c)
	if t == nil {
		s.token = nil
	} else {
		copied := *t
		s.token = &copied
	}
	s.persistLocked()
}

// Customer returns a copy of the current identity, or nil when anonymous.
func (s *Store) Customer() *model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneCustomer(s.customer)
}

// AccessToken returns a copy of the current credential, or nil.
func (s *Store) AccessToken() *model.AccessToken {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == nil {
		return nil
	}
	copied := *s.token
	return &copied
}

// IsLoggedIn reports whether the credential is present and unexpired. The
// check runs against the clock on every call; it is never cached, since a
// credential goes stale purely by time passing.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token.Valid(s.now())
}

// OpenAuthPanel shows the panel on the requested view. When an identity is
// present the view is forced to the account menu, never back to a login form.
func (s *Store) OpenAuthPanel(view model.AuthView) {
	if !model.ValidAuthView(view) {
		view = model.AuthViewLogin
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.customer != nil {
		view = model.AuthViewMenu
	}
	s.view = view
	s.panelOpen = true
}

// CloseAuthPanel hides the panel. Identity and credential stay untouched.
func (s *Store) CloseAuthPanel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.panelOpen = false
}

// SetAuthView switches panes for in-panel navigation.
func (s *Store) SetAuthView(view model.AuthView) {
	if !model.ValidAuthView(view) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = view
}

// AuthView returns the current pane.
func (s *Store) AuthView() model.AuthView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.view
}

// PanelVisible reports whether the auth panel is open.
func (s *Store) PanelVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.panelOpen
}

// Logout clears identity and credential and resets the view to login. It is
// idempotent and never contacts the backend; server-side revocation is the
// manager's concern.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customer = nil
	s.token = nil
	s.view = model.AuthViewLogin
	s.persistLocked()
}

// persistLocked writes the durable subset. A write failure is logged and
// tolerated; breaking the in-memory state transition over it would be worse.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}

	persisted := model.PersistedSession{Customer: s.customer}
	if s.token != nil {
		persisted.Token = s.token.Token
		expires := s.token.ExpiresAt
		persisted.ExpiresAt = &expires
	}

	if err := s.persister.Save(persisted); err != nil {
		s.log.Warn("persisting session failed", "error", err)
	}
}

func cloneCustomer(c *model.Customer) *model.Customer {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}
