package module

import (
	"maps"
	"slices"
	"sync"
)

// registry maps module names to their port bundles. modkit.MountAll fills
// the process-wide one; mounting a name again replaces its entry
type registry struct {
	mu    sync.RWMutex
	ports map[string]any
}

var global = &registry{}

func (r *registry) put(name string, ports any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ports == nil {
		r.ports = map[string]any{}
	}
	r.ports[name] = ports
}

func (r *registry) get(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.ports[name]
	return p, ok
}

func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.ports))
}

// Register records the port bundle of module name
func Register(name string, ports any) { global.put(name, ports) }

// PortsAs returns the bundle registered under name when it is a T
func PortsAs[T any](name string) (T, bool) {
	p, _ := global.get(name)
	v, ok := p.(T)
	return v, ok
}

// Names lists the registered modules in sorted order
func Names() []string { return global.names() }

// Reset empties the registry; tests only
func Reset() {
	global.mu.Lock()
	global.ports = nil
	global.mu.Unlock()
}
