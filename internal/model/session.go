package model

import "time"

// AuthView selects which pane of the auth panel is shown.
type AuthView string

const (
	AuthViewLogin          AuthView = "login"
	AuthViewSignup         AuthView = "signup"
	AuthViewForgotPassword AuthView = "forgot-password"
	AuthViewMenu           AuthView = "menu"
)

// ValidAuthView reports whether v is one of the known panes.
func ValidAuthView(v AuthView) bool {
	switch v {
	case AuthViewLogin, AuthViewSignup, AuthViewForgotPassword, AuthViewMenu:
		return true
	}
	return false
}

// PersistedSession is the durable subset of session state: identity, token and
// expiry only. Panel state is transient and never written. There is no
// versioning; the file is a single JSON document.
type PersistedSession struct {
	Customer  *Customer  `json:"customer,omitempty"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Credential rebuilds the access token from the persisted fields, or nil when
// no credential was stored.
func (p *PersistedSession) Credential() *AccessToken {
	if p == nil || p.Token == "" || p.ExpiresAt == nil {
		return nil
	}
	return &AccessToken{Token: p.Token, ExpiresAt: *p.ExpiresAt}
}
