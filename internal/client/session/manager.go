// Package session is the single authority over the CLI's authentication
// state.
//
// A Manager moves through
//
//	uninitialized → loading → authenticated | anonymous
//
// and every login, register or logout passes through loading again. Failed
// operations restore the previous phase and user and record the error
// message. Each transition is published to subscribers.
//
// Mutating operations are serialized: while one runs, later callers wait.
// State snapshots never wait for an in-flight operation.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/cobragpt/internal/client/client"
	"github.com/dmitrijs2005/cobragpt/internal/client/credentials"
	"github.com/dmitrijs2005/cobragpt/internal/client/models"
	"github.com/dmitrijs2005/cobragpt/internal/logging"
)

// Listener receives session snapshots. It is called synchronously, in
// subscription order, while the operation that caused the transition is
// still holding the operation lock, so it must not call Initialize, Login,
// Register or Logout itself.
type Listener func(models.SessionState)

// Manager owns the session state of one client and publishes its changes.
type Manager struct {
	client client.Client
	store  credentials.Store
	logger logging.Logger

	// opMu serializes mutating operations.
	opMu sync.Mutex

	mu        sync.RWMutex
	state     models.SessionState
	listeners map[int]Listener
	order     []int
	nextID    int
}

// New creates a Manager in the uninitialized phase.
func New(c client.Client, store credentials.Store, logger logging.Logger) *Manager {
	return &Manager{
		client:    c,
		store:     store,
		logger:    logger.With("component", "session"),
		state:     models.SessionState{Phase: models.PhaseUninitialized},
		listeners: make(map[int]Listener),
	}
}

// State returns a snapshot of the current session.
func (m *Manager) State() models.SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return snapshot(m.state)
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (m *Manager) CurrentUser() *models.User {
	return m.State().User
}

// Subscribe registers l for future transitions and returns a function that
// removes it.
func (m *Manager) Subscribe(l Listener) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = l
	m.order = append(m.order, id)
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.listeners, id)
			for i, v := range m.order {
				if v == id {
					m.order = append(m.order[:i], m.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Initialize resolves the session from the credential store. It never
// fails: a store error is logged and treated as "no user". Calling it again
// re-reads the store.
func (m *Manager) Initialize(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.transition(ctx, func(s *models.SessionState) {
		s.Phase = models.PhaseLoading
		s.Error = ""
	})

	u, err := m.store.Load(ctx)
	if err != nil {
		m.logger.Warn(ctx, "credential store unavailable, starting anonymous", "error", err)
		u = nil
	}

	m.transition(ctx, func(s *models.SessionState) {
		s.User = u
		if u != nil {
			s.Phase = models.PhaseAuthenticated
		} else {
			s.Phase = models.PhaseAnonymous
		}
	})
}

// Login authenticates email/password and persists the resulting user.
// On failure the previous state is restored with Error set, and the error
// is returned.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	return m.authenticate(ctx, "login", func(ctx context.Context) (*models.User, error) {
		return m.client.Login(ctx, email, password)
	})
}

// Register creates a user and signs it in. An empty name is derived from
// the email.
func (m *Manager) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	return m.authenticate(ctx, "register", func(ctx context.Context) (*models.User, error) {
		return m.client.Register(ctx, email, password, name)
	})
}

func (m *Manager) authenticate(ctx context.Context, op string, call func(context.Context) (*models.User, error)) (*models.User, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	prev := m.State()
	m.transition(ctx, func(s *models.SessionState) {
		s.Phase = models.PhaseLoading
		s.Error = ""
	})

	u, err := call(ctx)
	if err != nil {
		m.logger.Info(ctx, op+" failed", "error", err)
		m.transition(ctx, func(s *models.SessionState) {
			s.Phase = prev.Phase
			s.User = prev.User
			s.Error = err.Error()
		})
		return nil, err
	}

	// Persist even if ctx was cancelled after the backend answered.
	if err := m.store.Save(context.WithoutCancel(ctx), u); err != nil {
		m.logger.Warn(ctx, "could not persist user", "op", op, "error", err)
	}

	m.transition(ctx, func(s *models.SessionState) {
		s.Phase = models.PhaseAuthenticated
		s.User = u
	})
	m.logger.Info(ctx, op+" succeeded", "email", u.Email)
	return u.Clone(), nil
}

// Logout signs the user out and clears the stored record. It never fails:
// backend and storage errors are logged and the session still ends up
// anonymous.
func (m *Manager) Logout(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.transition(ctx, func(s *models.SessionState) {
		s.Phase = models.PhaseLoading
		s.Error = ""
	})

	if err := m.client.Logout(ctx); err != nil {
		m.logger.Warn(ctx, "backend logout failed", "error", err)
	}
	if err := m.store.Clear(context.WithoutCancel(ctx)); err != nil {
		m.logger.Warn(ctx, "could not clear stored user", "error", err)
	}

	m.transition(ctx, func(s *models.SessionState) {
		s.Phase = models.PhaseAnonymous
		s.User = nil
	})
}

// transition applies mutate under the state lock and publishes the result.
func (m *Manager) transition(ctx context.Context, mutate func(*models.SessionState)) {
	m.mu.Lock()
	mutate(&m.state)
	m.state.IsLoading = m.state.Phase == models.PhaseLoading
	st := snapshot(m.state)
	listeners := make([]Listener, 0, len(m.order))
	for _, id := range m.order {
		listeners = append(listeners, m.listeners[id])
	}
	m.mu.Unlock()

	m.logger.Debug(ctx, "session transition", "phase", st.Phase, "error", st.Error)
	for _, l := range listeners {
		l(snapshot(st))
	}
}

func snapshot(s models.SessionState) models.SessionState {
	s.User = s.User.Clone()
	return s
}
