package engine

import (
	"sort"
	"sync"

	perr "langshim/internal/platform/errors"
)

var (
	regMu    sync.RWMutex
	registry = map[string]Engine{}
)

// preference order for Default
var preferred = []string{"cld2", "script"}

// Register makes e available by name. Engines register from init; a second
// registration under the same name panics
func Register(e Engine) {
	regMu.Lock()
	defer regMu.Unlock()
	name := e.Name()
	if name == "" {
		panic("engine: empty name")
	}
	if _, dup := registry[name]; dup {
		panic("engine: duplicate registration " + name)
	}
	registry[name] = e
}

// Lookup returns the engine registered under name
func Lookup(name string) (Engine, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	if e, ok := registry[name]; ok {
		return e, nil
	}
	return nil, perr.NotFoundf("engine %q is not compiled in", name)
}

// Names lists registered engines, sorted
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Default returns the most capable registered engine, or an error when none is
func Default() (Engine, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	for _, n := range preferred {
		if e, ok := registry[n]; ok {
			return e, nil
		}
	}
	for _, e := range registry {
		return e, nil
	}
	return nil, perr.NotFoundf("no detection engine registered")
}

// Select returns the named engine, or Default when name is empty
func Select(name string) (Engine, error) {
	if name == "" {
		return Default()
	}
	return Lookup(name)
}
