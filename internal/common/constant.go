// Package common contains shared constants used across CobraGPT client
// components: well-known storage keys and the password policy.
package common

// Well-known metadata keys. The user record lives under UserKey; the rest
// hold preference values.
const (
	UserKey          = "user"
	SettingsKey      = "settings"
	NotificationsKey = "notifications"
	AutoSaveKey      = "autoSave"
	APIKeyKey        = "apiKey"
)

// MinPasswordLength is the shortest password accepted by login and
// registration.
const MinPasswordLength = 6

// TrialPeriodDays is the length of the trial subscription granted to new
// sessions.
const TrialPeriodDays = 14
