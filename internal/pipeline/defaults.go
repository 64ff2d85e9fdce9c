package pipeline

import (
	"fmt"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
	"github.com/alao-ohio/roster/internal/normalisers/address"
	"github.com/alao-ohio/roster/internal/normalisers/city"
	"github.com/alao-ohio/roster/internal/normalisers/country"
	"github.com/alao-ohio/roster/internal/normalisers/name"
	"github.com/alao-ohio/roster/internal/normalisers/organization"
	"github.com/alao-ohio/roster/internal/normalisers/phone"
	"github.com/alao-ohio/roster/internal/normalisers/postal"
	"github.com/alao-ohio/roster/internal/normalisers/state"
)

// AliasesKey is the organization builder config key holding extra aliases.
const AliasesKey = "aliases"

// RegisterDefaults registers all built-in normalisers with the registry.
// Call this during application initialisation to enable the standard rules.
func RegisterDefaults(r *Registry) {
	r.Register(domain.RuleName.String(), stateless(name.New()))
	r.Register(domain.RuleCity.String(), stateless(city.New()))
	r.Register(domain.RuleOrganization.String(), buildOrganization)
	r.Register(domain.RuleState.String(), stateless(state.New()))
	r.Register(domain.RulePostal.String(), stateless(postal.New()))
	r.Register(domain.RulePhone.String(), stateless(phone.New()))
	r.Register(domain.RuleCountry.String(), stateless(country.New()))
	r.Register(domain.RuleAddress.String(), stateless(address.New()))
}

// DefaultRegistry returns a registry with the built-in rules registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// stateless wraps a normaliser that takes no configuration.
func stateless(n driven.FieldNormaliser) BuilderFunc {
	return func(_ map[string]any) (driven.FieldNormaliser, error) {
		return n, nil
	}
}

// buildOrganization creates an organization normaliser from generic config.
// Supported config keys:
//   - aliases (map of string to string): extra or overriding alias entries
func buildOrganization(cfg map[string]any) (driven.FieldNormaliser, error) {
	var opts []organization.Option

	if raw, ok := cfg[AliasesKey]; ok && raw != nil {
		aliases, err := getStringMapFromConfig(raw)
		if err != nil {
			return nil, fmt.Errorf("organization %s: %w", AliasesKey, err)
		}
		opts = append(opts, organization.WithAliases(aliases))
	}

	return organization.New(opts...), nil
}

// getStringMapFromConfig accepts the map shapes produced by TOML parsing and
// by callers building config in code.
func getStringMapFromConfig(raw any) (map[string]string, error) {
	switch v := raw.(type) {
	case map[string]string:
		return v, nil
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, val := range v {
			s, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("%w: value for %q is %T, want string", domain.ErrInvalidInput, k, val)
			}
			out[k] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: got %T, want map", domain.ErrInvalidInput, raw)
	}
}
