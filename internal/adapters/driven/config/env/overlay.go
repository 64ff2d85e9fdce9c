package env

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/alao-ohio/roster/internal/core/ports/driven"
)

// Prefix namespaces the recognised environment variables.
const Prefix = "ROSTER"

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// Overrides are the settings that can be taken from the environment.
// Unset variables leave the field at its zero value.
type Overrides struct {
	InputPath   string   `envconfig:"INPUT_PATH"`
	OutputPath  string   `envconfig:"OUTPUT_PATH"`
	Index       *bool    `envconfig:"OUTPUT_INDEX"`
	Strict      *bool    `envconfig:"CLEAN_STRICT"`
	DropColumns []string `envconfig:"CLEAN_DROP_COLUMNS"`
}

// Load reads overrides from the environment.
func Load() (Overrides, error) {
	var o Overrides
	if err := envconfig.Process(Prefix, &o); err != nil {
		return Overrides{}, fmt.Errorf("environment: %w", err)
	}
	return o, nil
}

// values maps the overrides that are set to config keys.
func (o Overrides) values() map[string]any {
	v := make(map[string]any)
	if o.InputPath != "" {
		v["input.path"] = o.InputPath
	}
	if o.OutputPath != "" {
		v["output.path"] = o.OutputPath
	}
	if o.Index != nil {
		v["output.index"] = *o.Index
	}
	if o.Strict != nil {
		v["clean.strict"] = *o.Strict
	}
	if o.DropColumns != nil {
		v["clean.drop_columns"] = o.DropColumns
	}
	return v
}

// ConfigStore serves environment overrides ahead of the wrapped store.
// Writes go to the wrapped store; an override keeps shadowing the written
// value for the life of the process.
type ConfigStore struct {
	driven.ConfigStore
	values map[string]any
}

// Wrap loads overrides from the environment and layers them over store.
func Wrap(store driven.ConfigStore) (*ConfigStore, error) {
	o, err := Load()
	if err != nil {
		return nil, err
	}
	return WrapWith(store, o), nil
}

// WrapWith layers explicit overrides over store.
func WrapWith(store driven.ConfigStore, o Overrides) *ConfigStore {
	return &ConfigStore{ConfigStore: store, values: o.values()}
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	if v, ok := s.values[key]; ok {
		return v, true
	}
	return s.ConfigStore.Get(key)
}

// Has reports whether a key is set in the environment or the wrapped store.
func (s *ConfigStore) Has(key string) bool {
	if _, ok := s.values[key]; ok {
		return true
	}
	return s.ConfigStore.Has(key)
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	if v, ok := s.values[key].(string); ok {
		return v
	}
	return s.ConfigStore.GetString(key)
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	if v, ok := s.values[key].(bool); ok {
		return v
	}
	return s.ConfigStore.GetBool(key)
}

// GetStringSlice retrieves a string slice configuration value.
func (s *ConfigStore) GetStringSlice(key string) []string {
	if v, ok := s.values[key].([]string); ok {
		return v
	}
	return s.ConfigStore.GetStringSlice(key)
}
