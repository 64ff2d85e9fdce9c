package services

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
	"github.com/alao-ohio/roster/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyInputPath      = "input.path"
	keyOutputPath     = "output.path"
	keyOutputIndex    = "output.index"
	keyStrict         = "clean.strict"
	keyDropColumns    = "clean.drop_columns"
	keyMissingMarkers = "clean.missing_markers"
	keyUnicodeNFC     = "clean.unicode_nfc"

	// prefixColumns maps a column name to a rule: columns.<Column> = "<rule>".
	prefixColumns = "columns"

	// prefixAliases extends the organization alias table.
	prefixAliases = "organization.aliases"
)

// RuleNone unbinds a column when used as its rule.
const RuleNone = "none"

// SettingsService manages clean settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current settings. Keys that are not set keep their defaults.
func (s *SettingsService) Get() (*domain.CleanSettings, error) {
	defaults := domain.DefaultCleanSettings()

	settings := &domain.CleanSettings{
		InputPath:           s.getString(keyInputPath, defaults.InputPath),
		OutputPath:          s.getString(keyOutputPath, defaults.OutputPath),
		WriteIndex:          s.getBool(keyOutputIndex, defaults.WriteIndex),
		Strict:              s.getBool(keyStrict, defaults.Strict),
		NormalizeUnicode:    s.getBool(keyUnicodeNFC, defaults.NormalizeUnicode),
		DropColumns:         s.getStringSlice(keyDropColumns, defaults.DropColumns),
		MissingMarkers:      s.getStringSlice(keyMissingMarkers, defaults.MissingMarkers),
		Bindings:            mergeBindings(defaults.Bindings, s.configStore.GetStringMap(prefixColumns)),
		OrganizationAliases: s.configStore.GetStringMap(prefixAliases),
	}

	return settings, nil
}

// Save persists settings. Default bindings missing from settings are
// stored as "none" so they stay unbound when read back.
func (s *SettingsService) Save(settings *domain.CleanSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}

	values := []struct {
		key   string
		value any
	}{
		{keyInputPath, settings.InputPath},
		{keyOutputPath, settings.OutputPath},
		{keyOutputIndex, settings.WriteIndex},
		{keyStrict, settings.Strict},
		{keyUnicodeNFC, settings.NormalizeUnicode},
		{keyDropColumns, nonNil(settings.DropColumns)},
		{keyMissingMarkers, nonNil(settings.MissingMarkers)},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	bound := make(map[string]struct{}, len(settings.Bindings))
	for _, b := range settings.Bindings {
		bound[b.Column] = struct{}{}
		if err := s.configStore.Set(prefixColumns+"."+b.Column, b.Rule.String()); err != nil {
			return fmt.Errorf("save column %q: %w", b.Column, err)
		}
	}
	for _, b := range domain.DefaultBindings() {
		if _, ok := bound[b.Column]; ok {
			continue
		}
		if err := s.configStore.Set(prefixColumns+"."+b.Column, RuleNone); err != nil {
			return fmt.Errorf("save column %q: %w", b.Column, err)
		}
	}

	for _, k := range slices.Sorted(maps.Keys(settings.OrganizationAliases)) {
		if err := s.configStore.Set(prefixAliases+"."+k, settings.OrganizationAliases[k]); err != nil {
			return fmt.Errorf("save alias %q: %w", k, err)
		}
	}

	return nil
}

// Validate checks the current settings for unusable values.
// All problems are reported together.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	return errors.Join(validateSettings(settings)...)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.CleanSettings {
	return domain.DefaultCleanSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// mergeBindings applies column overrides to the default bindings. Overridden
// defaults keep their position; "none" or an empty rule removes a binding.
// Columns not bound by default are appended in name order.
func mergeBindings(defaults []domain.ColumnBinding, overrides map[string]string) []domain.ColumnBinding {
	merged := make([]domain.ColumnBinding, 0, len(defaults)+len(overrides))
	known := make(map[string]struct{}, len(defaults))

	for _, b := range defaults {
		known[b.Column] = struct{}{}
		if rule, ok := overrides[b.Column]; ok {
			if unbound(rule) {
				continue
			}
			b.Rule = domain.Rule(strings.ToLower(strings.TrimSpace(rule)))
		}
		merged = append(merged, b)
	}

	for _, col := range slices.Sorted(maps.Keys(overrides)) {
		if _, ok := known[col]; ok {
			continue
		}
		rule := overrides[col]
		if unbound(rule) {
			continue
		}
		merged = append(merged, domain.ColumnBinding{
			Column: col,
			Rule:   domain.Rule(strings.ToLower(strings.TrimSpace(rule))),
		})
	}

	return merged
}

func unbound(rule string) bool {
	rule = strings.TrimSpace(rule)
	return rule == "" || strings.EqualFold(rule, RuleNone)
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

// getString retrieves a string with default fallback.
func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

// getBool retrieves a bool with default fallback.
func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if !s.configStore.Has(key) {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

// getStringSlice retrieves a list with default fallback. An explicitly
// empty list is kept.
func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if !s.configStore.Has(key) {
		return defaultVal
	}
	if val := s.configStore.GetStringSlice(key); val != nil {
		return val
	}
	return defaultVal
}
