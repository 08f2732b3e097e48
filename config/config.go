package config

import "github.com/wippyai/wit-bindgen/wit"

// Configuration maps element paths to overrides. Built once, read-only
// afterward; lookups are O(1) and never fail.
type Configuration struct {
	mappings map[string]ElementConfig
}

// New builds a Configuration from an already deserialized mapping. The map
// is copied so later caller mutation cannot leak into the store.
func New(mappings map[string]ElementConfig) *Configuration {
	copied := make(map[string]ElementConfig, len(mappings))
	for path, cfg := range mappings {
		if cfg == nil {
			cfg = None{}
		}
		copied[path] = cfg
	}
	return &Configuration{mappings: copied}
}

// Get returns the override for el, or the None arm when el has no entry.
func (c *Configuration) Get(r *wit.Resolve, el Element) ElementConfig {
	return c.lookup(Path(r, el))
}

// GetMember returns the override for el's member, addressed as
// "<element path>.<member>", or the None arm when absent.
func (c *Configuration) GetMember(r *wit.Resolve, el Element, member string) ElementConfig {
	return c.lookup(Path(r, el) + "." + member)
}

func (c *Configuration) lookup(path string) ElementConfig {
	if c == nil || c.mappings == nil {
		return None{}
	}
	if cfg, ok := c.mappings[path]; ok {
		return cfg
	}
	return None{}
}

// Len reports the number of configured paths.
func (c *Configuration) Len() int {
	if c == nil {
		return 0
	}
	return len(c.mappings)
}
