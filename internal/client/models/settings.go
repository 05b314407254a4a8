package models

type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
)

// Settings are the user preferences kept in local storage.
type Settings struct {
	Theme            Theme  `json:"theme" validate:"required,oneof=system dark light"`
	Language         string `json:"language" validate:"required,min=2,max=8"`
	SoundEnabled     bool   `json:"soundEnabled"`
	IncognitoDefault bool   `json:"incognitoDefault"`

	// Stored under their own keys rather than in the settings blob.
	Notifications bool   `json:"-"`
	AutoSave      bool   `json:"-"`
	APIKey        string `json:"-"`
}

// DefaultSettings returns the preferences used when nothing is stored.
func DefaultSettings() Settings {
	return Settings{
		Theme:         ThemeSystem,
		Language:      "en",
		SoundEnabled:  true,
		Notifications: true,
		AutoSave:      true,
	}
}
