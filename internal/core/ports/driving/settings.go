package driving

import "github.com/alao-ohio/roster/internal/core/domain"

// SettingsService manages clean settings.
type SettingsService interface {
	// Get retrieves current settings, defaults filled in.
	Get() (*domain.CleanSettings, error)

	// Save persists settings.
	Save(settings *domain.CleanSettings) error

	// Validate checks the current settings for unusable values.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.CleanSettings

	// Path returns where settings are stored.
	Path() string
}
