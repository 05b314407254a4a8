package credentials

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/cobragpt/internal/client/models"
	"github.com/dmitrijs2005/cobragpt/internal/logging"
)

// MemoryStore is an in-process Store. It keeps the encoded record, so it
// goes through the same encode/decode path as the persistent store.
// LoadErr, SaveErr and ClearErr, when set, are returned instead of touching
// the record.
type MemoryStore struct {
	mu     sync.Mutex
	data   []byte
	logger logging.Logger

	LoadErr  error
	SaveErr  error
	ClearErr error
}

// NewMemoryStore returns an empty MemoryStore. Malformed records are reported
// to logger.
func NewMemoryStore(logger logging.Logger) *MemoryStore {
	return &MemoryStore{logger: logger}
}

// Load decodes the stored record. A record that does not decode is logged
// and reported as absent.
func (s *MemoryStore) Load(ctx context.Context) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.data == nil {
		return nil, nil
	}
	u, err := Decode(s.data)
	if err != nil {
		s.logger.Warn(ctx, "ignoring stored user record", "error", err)
		return nil, nil
	}
	return u, nil
}

// Save encodes and keeps u, replacing any previous record.
func (s *MemoryStore) Save(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := Encode(u)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

// Clear drops the record. Clearing an empty store is a no-op.
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.data = nil
	return nil
}

// SetRaw replaces the stored bytes verbatim, bypassing validation.
func (s *MemoryStore) SetRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
}

// Raw returns a copy of the stored bytes, or nil when empty.
func (s *MemoryStore) Raw() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil
	}
	return append([]byte(nil), s.data...)
}
