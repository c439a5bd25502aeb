package codec

import (
	"fmt"

	"github.com/ssargent/njord/pkg/metadata"
)

// Factory constructs a codec from the configuration mapping of a named
// configuration. A nil mapping means the configuration key was absent; the
// factory either defaults internally or rejects it.
type Factory func(config map[string]any) (Codec, error)

// Registry maps codec names to factories. Multiple names may resolve to the
// same factory, which is how backward-compatible aliases are kept alive.
//
// Registration is not synchronized: register everything during process
// startup, before concurrent lookups begin.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register associates a name with a codec factory, replacing any previous
// registration under that name.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// FromDict resolves a named configuration to a codec instance.
func (r *Registry) FromDict(data metadata.NamedConfiguration) (Codec, error) {
	if data.Name == "" {
		return nil, fmt.Errorf("%w: missing name", metadata.ErrMalformedConfiguration)
	}
	factory, ok := r.factories[data.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, data.Name)
	}
	return factory(data.Configuration)
}

// defaultRegistry carries the codecs built into this module. It is
// populated at init time only.
var defaultRegistry = NewRegistry()

func init() {
	defaultRegistry.Register("bytes", bytesCodecFactory)
	// "endian" is the pre-1.0 name for the bytes codec; older metadata still
	// uses it.
	defaultRegistry.Register("endian", bytesCodecFactory)
}

// DefaultRegistry returns the process-wide registry with the built-in
// codecs registered.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// FromDict resolves a named configuration against the default registry.
func FromDict(data metadata.NamedConfiguration) (Codec, error) {
	return defaultRegistry.FromDict(data)
}
