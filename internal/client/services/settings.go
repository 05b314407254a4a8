// Package services contains application services for the CobraGPT client.
// This file defines the preferences service backed by the local metadata
// table.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cobragpt/internal/client/models"
	"github.com/dmitrijs2005/cobragpt/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cobragpt/internal/common"
	"github.com/dmitrijs2005/cobragpt/internal/dbx"
	"github.com/dmitrijs2005/cobragpt/internal/logging"
	"github.com/go-playground/validator/v10"
)

var ErrInvalidSettings = errors.New("invalid settings")

var preferenceKeys = []string{
	common.SettingsKey,
	common.NotificationsKey,
	common.AutoSaveKey,
	common.APIKeyKey,
}

// SettingsService reads and writes user preferences.
//
// The appearance settings live in one JSON blob; notifications and auto-save
// are stringified booleans and the API key a plain string, each under its
// own key. An unreadable blob falls back to the defaults; a flag reads true
// only when stored as "true".
type SettingsService interface {
	Load(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, fn func(*models.Settings)) (models.Settings, error)
	Reset(ctx context.Context) error
}

type settingsService struct {
	db       *sql.DB
	logger   logging.Logger
	validate *validator.Validate
}

func NewSettingsService(db *sql.DB, logger logging.Logger) SettingsService {
	return &settingsService{
		db:       db,
		logger:   logger.With("component", "settings"),
		validate: validator.New(),
	}
}

func (s *settingsService) Load(ctx context.Context) (models.Settings, error) {
	return s.load(ctx, metadata.NewSQLiteRepository(s.db))
}

func (s *settingsService) load(ctx context.Context, repo metadata.Repository) (models.Settings, error) {
	out := models.DefaultSettings()

	values, err := repo.List(ctx)
	if err != nil {
		return out, err
	}

	if raw, ok := values[common.SettingsKey]; ok {
		blob := out
		if err := json.Unmarshal(raw, &blob); err != nil {
			s.logger.Warn(ctx, "ignoring stored settings", "error", err)
		} else if err := s.validate.Struct(blob); err != nil {
			s.logger.Warn(ctx, "ignoring stored settings", "error", err)
		} else {
			out = blob
			applyBlobExtras(raw, &out)
		}
	}

	out.Notifications = parseFlag(values, common.NotificationsKey, out.Notifications)
	out.AutoSave = parseFlag(values, common.AutoSaveKey, out.AutoSave)
	if raw, ok := values[common.APIKeyKey]; ok {
		out.APIKey = string(raw)
	}
	return out, nil
}

// blobExtras are fields older clients kept inside the settings blob. The
// dedicated keys take precedence when both are present.
type blobExtras struct {
	Notifications *bool   `json:"notifications"`
	APIKey        *string `json:"apiKey"`
}

func applyBlobExtras(raw []byte, out *models.Settings) {
	var ex blobExtras
	if err := json.Unmarshal(raw, &ex); err != nil {
		return
	}
	if ex.Notifications != nil {
		out.Notifications = *ex.Notifications
	}
	if ex.APIKey != nil {
		out.APIKey = *ex.APIKey
	}
}

// parseFlag reads a stored boolean. Only "true" is true; any other stored
// value is false.
func parseFlag(values map[string][]byte, key string, def bool) bool {
	raw, ok := values[key]
	if !ok {
		return def
	}
	return string(raw) == common.BoolString(true)
}

// Update loads the current settings, applies fn and stores the result in a
// single transaction.
func (s *settingsService) Update(ctx context.Context, fn func(*models.Settings)) (models.Settings, error) {
	var updated models.Settings

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		current, err := s.load(ctx, repo)
		if err != nil {
			return err
		}
		fn(&current)

		if err := s.validate.Struct(current); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}

		blob, err := json.Marshal(current)
		if err != nil {
			return err
		}
		if err := repo.Set(ctx, common.SettingsKey, blob); err != nil {
			return err
		}
		if err := repo.Set(ctx, common.NotificationsKey, []byte(common.BoolString(current.Notifications))); err != nil {
			return err
		}
		if err := repo.Set(ctx, common.AutoSaveKey, []byte(common.BoolString(current.AutoSave))); err != nil {
			return err
		}
		if current.APIKey != "" {
			err = repo.Set(ctx, common.APIKeyKey, []byte(current.APIKey))
		} else {
			err = repo.Delete(ctx, common.APIKeyKey)
		}
		if err != nil {
			return err
		}

		updated = current
		return nil
	})
	if err != nil {
		return models.Settings{}, err
	}
	return updated, nil
}

// Reset removes every stored preference so defaults apply again.
func (s *settingsService) Reset(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, preferenceKeys...)
}
