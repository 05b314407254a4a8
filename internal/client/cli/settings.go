package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/cobragpt/internal/client/models"
)

// Settings prints the stored preferences.
func (a *App) Settings(ctx context.Context) error {
	s, err := a.settings.Load(ctx)
	if err != nil {
		return err
	}

	apiKey := "(not set)"
	if s.APIKey != "" {
		apiKey = maskSecret(s.APIKey)
	}

	printlnFn(fmt.Sprintf("theme: %s", s.Theme))
	printlnFn(fmt.Sprintf("language: %s", s.Language))
	printlnFn(fmt.Sprintf("sound: %t", s.SoundEnabled))
	printlnFn(fmt.Sprintf("incognito: %t", s.IncognitoDefault))
	printlnFn(fmt.Sprintf("notifications: %t", s.Notifications))
	printlnFn(fmt.Sprintf("autosave: %t", s.AutoSave))
	printlnFn(fmt.Sprintf("apikey: %s", apiKey))
	return nil
}

// Set changes one preference: set <key> <value>. An apikey without value
// removes the stored key.
func (a *App) Set(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: set <theme|language|sound|incognito|notifications|autosave|apikey> <value>")
	}
	key := strings.ToLower(args[0])
	value := strings.Join(args[1:], " ")

	apply, err := settingSetter(key, value)
	if err != nil {
		return err
	}
	if _, err := a.settings.Update(ctx, apply); err != nil {
		return err
	}

	printlnFn("Settings saved")
	return nil
}

func settingSetter(key, value string) (func(*models.Settings), error) {
	parseBool := func() (bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		return b, nil
	}

	switch key {
	case "theme":
		return func(s *models.Settings) { s.Theme = models.Theme(value) }, nil
	case "language":
		return func(s *models.Settings) { s.Language = value }, nil
	case "apikey":
		return func(s *models.Settings) { s.APIKey = value }, nil
	case "sound", "incognito", "notifications", "autosave":
		b, err := parseBool()
		if err != nil {
			return nil, err
		}
		return func(s *models.Settings) {
			switch key {
			case "sound":
				s.SoundEnabled = b
			case "incognito":
				s.IncognitoDefault = b
			case "notifications":
				s.Notifications = b
			case "autosave":
				s.AutoSave = b
			}
		}, nil
	default:
		return nil, fmt.Errorf("unknown setting %q", key)
	}
}

// Reset restores default preferences.
func (a *App) Reset(ctx context.Context) error {
	if err := a.settings.Reset(ctx); err != nil {
		return err
	}
	printlnFn("Settings reset to defaults")
	return nil
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
