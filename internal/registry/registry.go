package registry

import (
	"fmt"
	"sort"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/sports/basketball_nba"
)

// Registry manages available display locales
type Registry struct {
	locales map[string]*basketball_nba.Locale
}

// New creates a registry with all built-in locales
func New() *Registry {
	r := &Registry{
		locales: make(map[string]*basketball_nba.Locale),
	}

	r.Register(basketball_nba.English())
	r.Register(basketball_nba.TraditionalChinese())

	return r
}

// Register adds a locale to the registry
func (r *Registry) Register(locale *basketball_nba.Locale) {
	r.locales[locale.Key] = locale
}

// GetLocale retrieves a locale by key
func (r *Registry) GetLocale(key string) (*basketball_nba.Locale, error) {
	locale, ok := r.locales[key]
	if !ok {
		return nil, fmt.Errorf("locale not found: %s", key)
	}
	return locale, nil
}

// Has reports whether key is registered
func (r *Registry) Has(key string) bool {
	_, ok := r.locales[key]
	return ok
}

// Keys returns all registered locale keys, sorted
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.locales))
	for key := range r.locales {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
