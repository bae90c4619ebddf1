// Package session owns the client's identity state: authenticated user,
// guest fallback, and the locally cached session marker.
//
// The state machine is Unknown -> {Authenticated, Guest}; sign-out and
// session invalidation move Authenticated -> Guest, a successful sign-in
// moves Guest -> Authenticated. The manager is an explicit object injected
// into whoever needs identity; there is no package-global state.
package session

import (
	"context"
	"sync"

	"github.com/bettybooth/bettybooth/internal/client/models"
	"github.com/bettybooth/bettybooth/internal/client/remote"
	"github.com/bettybooth/bettybooth/internal/common"
	"github.com/bettybooth/bettybooth/internal/logging"
)

type State int

const (
	StateUnknown State = iota
	StateAuthenticated
	StateGuest
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateGuest:
		return "guest"
	default:
		return "unknown"
	}
}

// TokenSink receives the session secret to replay on backend requests.
// *remote.Client satisfies it.
type TokenSink interface {
	SetSession(token string)
	ClearSession()
}

type Manager struct {
	identity remote.Identity
	tokens   TokenSink
	markers  MarkerStore
	log      logging.Logger

	mu    sync.RWMutex
	state State
	user  *models.User
}

func NewManager(identity remote.Identity, tokens TokenSink, markers MarkerStore, log logging.Logger) *Manager {
	return &Manager{
		identity: identity,
		tokens:   tokens,
		markers:  markers,
		log:      log,
		state:    StateUnknown,
	}
}

func (m *Manager) set(state State, user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.user = user
}

// State returns the current identity state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// CurrentUser returns the authenticated user, or nil in guest state.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Gate rejects mutating operations unless the state is Authenticated.
// It never touches the network.
func (m *Manager) Gate() error {
	if m.State() != StateAuthenticated {
		return common.ErrGuestNotAllowed
	}
	return nil
}

// Init resolves the startup state. A stored marker is revalidated against
// the backend; a missing marker means guest immediately, with no network
// call. A marker the backend no longer accepts is cleared.
func (m *Manager) Init(ctx context.Context) error {
	marker, err := m.markers.Load()
	if err != nil {
		return err
	}
	if marker == nil {
		m.set(StateGuest, nil)
		return nil
	}

	m.tokens.SetSession(marker.Secret)

	user, err := m.identity.GetAccount(ctx)
	if err != nil {
		m.log.Warn(ctx, "stored session rejected, falling back to guest", "error", err)
		// Best effort: tell the backend to drop the stale session too.
		if derr := m.identity.DeleteSession(ctx, remote.CurrentSessionID); derr != nil {
			m.log.Debug(ctx, "stale session cleanup failed", "error", derr)
		}
		m.tokens.ClearSession()
		if cerr := m.markers.Clear(); cerr != nil {
			m.log.Warn(ctx, "clearing session marker failed", "error", cerr)
		}
		m.set(StateGuest, nil)
		return nil
	}

	m.set(StateAuthenticated, user)
	m.log.Info(ctx, "session revalidated", "user", user.ID)
	return nil
}

// SignIn authenticates with email/password. Any existing backend sessions
// for the account are ended first so concurrent stale sessions do not pile
// up, then the new session is persisted as the local marker.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	if err := m.identity.DeleteSessions(ctx); err != nil {
		// Expected for guests with no live session; not fatal.
		m.log.Debug(ctx, "pre-signin session cleanup", "error", err)
	}

	s, err := m.identity.CreateSession(ctx, email, password)
	if err != nil {
		return err
	}
	m.tokens.SetSession(s.Secret)

	user, err := m.identity.GetAccount(ctx)
	if err != nil {
		return err
	}

	if err := m.markers.Save(Marker{SessionID: s.ID, UserID: s.UserID, Secret: s.Secret}); err != nil {
		m.log.Warn(ctx, "persisting session marker failed", "error", err)
	}

	m.set(StateAuthenticated, user)
	return nil
}

// SignUp registers an account and signs in with the new credentials.
func (m *Manager) SignUp(ctx context.Context, email, password, name string) error {
	if _, err := m.identity.CreateAccount(ctx, email, password, name); err != nil {
		return err
	}
	return m.SignIn(ctx, email, password)
}

// SignOut ends the backend session and clears local state. The local
// transition to guest happens even when the backend call fails.
func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.identity.DeleteSession(ctx, remote.CurrentSessionID); err != nil {
		m.log.Warn(ctx, "ending backend session failed", "error", err)
	}
	m.tokens.ClearSession()
	err := m.markers.Clear()
	m.set(StateGuest, nil)
	return err
}
