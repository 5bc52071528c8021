package profiles

import (
	"sort"
	"time"
)

// Registry represents the entire profiles file.
type Registry struct {
	Version  int                 `yaml:"version"`
	Profiles map[string]*Profile `yaml:"profiles,omitempty"` // Keyed by profile name
}

// Profile represents a saved network, keyed by a user-chosen name in the
// Registry. Passwords are never stored; see the package comment.
type Profile struct {
	SSID     string    `yaml:"ssid"`
	Security string    `yaml:"security,omitempty"` // Free-form; resolved on use
	Hidden   bool      `yaml:"hidden,omitempty"`
	Style    string    `yaml:"style,omitempty"` // Preferred module style
	Color    string    `yaml:"color,omitempty"` // Preferred foreground color
	LastUsed time.Time `yaml:"last_used,omitempty"`
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:  1,
		Profiles: make(map[string]*Profile),
	}
}

// Get retrieves a profile by name. Returns nil if it doesn't exist.
func (r *Registry) Get(name string) *Profile {
	return r.Profiles[name]
}

// Set stores or replaces a profile under the given name.
func (r *Registry) Set(name string, p *Profile) {
	if r.Profiles == nil {
		r.Profiles = make(map[string]*Profile)
	}
	r.Profiles[name] = p
}

// Delete removes a profile by name. Returns true if it existed.
func (r *Registry) Delete(name string) bool {
	if _, ok := r.Profiles[name]; !ok {
		return false
	}
	delete(r.Profiles, name)
	return true
}

// Names returns the profile names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Profiles))
	for name := range r.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Touch updates the last-used timestamp for a profile, if it exists.
func (r *Registry) Touch(name string) {
	if p, ok := r.Profiles[name]; ok {
		p.LastUsed = time.Now()
	}
}
