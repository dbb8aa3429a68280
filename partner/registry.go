package partner

import "sync"

// Registry is an in-process Lookup backed by a map keyed on the
// (qualifier, ID) pair a partner is identified by. Safe for concurrent
// use: Register and Lookup both take the same RWMutex, the same
// read-mostly posture the pack's other registries use.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]Profile)}
}

// Register associates qualifier/id with profile, replacing any
// existing entry for that pair.
func (r *Registry) Register(qualifier, id string, profile Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[registryKey(qualifier, id)] = profile
}

// Lookup implements Lookup.
func (r *Registry) Lookup(qualifier, id string) (Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[registryKey(qualifier, id)]
	return p, ok
}

func registryKey(qualifier, id string) string {
	return qualifier + "|" + id
}
