package session

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"atelier-storefront/internal/model"
)

// CustomerAPI is the slice of the storefront backend the session lifecycle
// needs. The commerce client satisfies it.
type CustomerAPI interface {
	Customer(ctx context.Context, token string) (*model.Customer, error)
	CustomerCreate(ctx context.Context, input model.CustomerInput) (*model.Customer, error)
	CustomerAccessTokenCreate(ctx context.Context, email string, password string) (*model.AccessToken, error)
	CustomerAccessTokenDelete(ctx context.Context, token string) error
	CustomerRecover(ctx context.Context, email string) error
	CustomerUpdate(ctx context.Context, token string, input model.CustomerInput) (*model.Customer, error)
}

// Manager orchestrates the session lifecycle against the backend: startup
// restoration, login/signup, logout-with-revocation, recovery and profile
// updates. Every session-mutating request is stamped from a monotonically
// increasing sequence; a response is applied only while its stamp is still the
// latest issued, so a slow earlier response can never overwrite the outcome of
// a later action.
type Manager struct {
	store *Store
	api   CustomerAPI
	log   *slog.Logger
	seq   atomic.Uint64
}

func NewManager(store *Store, api CustomerAPI, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}

	return &Manager{store: store, api: api, log: log}
}

func (m *Manager) Store() *Store {
	return m.store
}

func (m *Manager) stamp() uint64 {
	return m.seq.Add(1)
}

func (m *Manager) latest(stamp uint64) bool {
	return m.seq.Load() == stamp
}

// Restore reconciles persisted session state against the backend. It runs once
// per application start and never reports failure:
//
//   - no persisted credential: anonymous state stands, no backend call;
//   - credential expired: clear everything locally, no backend call;
//   - backend returns an identity: overwrite the stored one (heals staleness);
//   - backend reports the token invalid: clear everything;
//   - transport failure: leave state untouched. Forcing a logout over a blip
//     in connectivity is worse than a brief stale-identity window, so this
//     path fails open while the expiry path above fails closed.
func (m *Manager) Restore(ctx context.Context) {
	if err := m.store.Hydrate(); err != nil {
		m.log.Warn("loading persisted session failed", "error", err)
		return
	}

	token := m.store.AccessToken()
	if token == nil {
		return
	}

	if !m.store.IsLoggedIn() {
		m.store.Logout()
		return
	}

	stamp := m.stamp()
	customer, err := m.api.Customer(ctx, token.Token)
	switch {
	case errors.Is(err, model.ErrCustomerNotFound):
		if m.latest(stamp) {
			m.store.Logout()
		}
	case err != nil:
		m.log.Warn("session validation failed, keeping local session", "error", err)
	default:
		if m.latest(stamp) {
			m.store.SetCustomer(customer)
		}
	}
}

// Login exchanges credentials for a token, fetches the identity, stores both
// and closes the auth panel. Returns model.ErrSuperseded when a newer action
// finished first; callers treat that as a silent no-op.
func (m *Manager) Login(ctx context.Context, email string, password string) error {
	stamp := m.stamp()

	token, err := m.api.CustomerAccessTokenCreate(ctx, email, password)
	if err != nil {
		return err
	}

	customer, err := m.api.Customer(ctx, token.Token)
	if err != nil {
		return err
	}

	if !m.latest(stamp) {
		return model.ErrSuperseded
	}

	m.store.SetSession(customer, token)
	m.store.CloseAuthPanel()
	return nil
}

// Signup creates the account and then logs in. Backend user errors (duplicate
// email and the like) propagate untouched; no credential is stored on failure.
func (m *Manager) Signup(ctx context.Context, input model.CustomerInput) error {
	if _, err := m.api.CustomerCreate(ctx, input); err != nil {
		return err
	}

	return m.Login(ctx, input.Email, input.Password)
}

// Logout revokes the token server side (best effort) and then always clears
// local state. This is the one place that decides revocation-before-clear;
// call sites never make that choice themselves.
func (m *Manager) Logout(ctx context.Context) {
	m.stamp() // invalidate any in-flight session response

	if token := m.store.AccessToken(); token != nil {
		if err := m.api.CustomerAccessTokenDelete(ctx, token.Token); err != nil {
			m.log.Warn("token revocation failed, clearing local session anyway", "error", err)
		}
	}

	m.store.Logout()
}

// Recover starts the backend's password-recovery flow.
func (m *Manager) Recover(ctx context.Context, email string) error {
	return m.api.CustomerRecover(ctx, email)
}

// UpdateProfile pushes profile changes and refreshes the stored identity from
// the backend's response.
func (m *Manager) UpdateProfile(ctx context.Context, input model.CustomerInput) error {
	token := m.store.AccessToken()
	if token == nil {
		return model.ErrNotLoggedIn
	}

	stamp := m.stamp()
	customer, err := m.api.CustomerUpdate(ctx, token.Token, input)
	if err != nil {
		return err
	}

	if !m.latest(stamp) {
		return model.ErrSuperseded
	}

	m.store.SetCustomer(customer)
	return nil
}
