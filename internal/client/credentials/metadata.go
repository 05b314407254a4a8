package credentials

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cobragpt/internal/client/models"
	"github.com/dmitrijs2005/cobragpt/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cobragpt/internal/common"
	"github.com/dmitrijs2005/cobragpt/internal/logging"
)

// MetadataStore keeps the user record in the metadata repository.
type MetadataStore struct {
	repo   metadata.Repository
	logger logging.Logger
}

// NewMetadataStore returns a Store over repo.
func NewMetadataStore(repo metadata.Repository, logger logging.Logger) *MetadataStore {
	return &MetadataStore{repo: repo, logger: logger}
}

// Load reads and decodes the stored record. Read failures wrap
// ErrStorageUnavailable; a malformed record is logged and reported as absent.
func (s *MetadataStore) Load(ctx context.Context) (*models.User, error) {
	data, ok, err := s.repo.Get(ctx, common.UserKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if !ok {
		return nil, nil
	}

	u, err := Decode(data)
	if err != nil {
		s.logger.Warn(ctx, "ignoring stored user record", "error", err)
		return nil, nil
	}
	return u, nil
}

// Save replaces the stored record with u.
func (s *MetadataStore) Save(ctx context.Context, u *models.User) error {
	data, err := Encode(u)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, common.UserKey, data); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// Clear deletes the stored record. It is idempotent.
func (s *MetadataStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.UserKey); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
