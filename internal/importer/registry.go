package importer

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/neurokit/neuroimport/internal/signal"
)

// Registry maps file extensions to format importers. Keys are
// case-insensitive and matched by exact string equality after case folding;
// registering an extension twice replaces the earlier importer. Registration
// and resolution may happen concurrently, so access is guarded by a
// read-mostly lock.
type Registry struct {
	mu        sync.RWMutex
	importers map[string]Importer
}

// NewRegistry creates an empty importer registry.
func NewRegistry() *Registry {
	return &Registry{importers: make(map[string]Importer)}
}

// Register associates an importer with a file extension (including the dot,
// e.g. ".rhs"). A later call for the same extension replaces the prior
// association.
func (r *Registry) Register(extension string, imp Importer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.importers[strings.ToLower(extension)] = imp
}

// Resolve returns the importer registered for the extension, or false if
// none is registered.
func (r *Registry) Resolve(extension string) (Importer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	imp, ok := r.importers[strings.ToLower(extension)]
	return imp, ok
}

// Load dispatches the file at path to the importer registered for its
// extension. An unregistered extension aborts the load with
// ErrUnknownFormat.
func (r *Registry) Load(path string) (*signal.Recording, bool, error) {
	ext := filepath.Ext(path)
	imp, ok := r.Resolve(ext)
	if !ok {
		return nil, false, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return imp.Load(path)
}

// defaultRegistry is the process-wide registry used by the package-level
// functions. Tests should prefer constructing their own Registry.
var defaultRegistry = NewRegistry()

// Register adds an importer to the process-wide registry.
func Register(extension string, imp Importer) {
	defaultRegistry.Register(extension, imp)
}

// Resolve looks an extension up in the process-wide registry.
func Resolve(extension string) (Importer, bool) {
	return defaultRegistry.Resolve(extension)
}

// Load dispatches a file through the process-wide registry.
func Load(path string) (*signal.Recording, bool, error) {
	return defaultRegistry.Load(path)
}
