package cast

import (
	"fmt"
	"reflect"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

// Pair is a (source type, target type) conversion key.
type Pair struct{ Src, Dst reflect.Type }

// Registry holds caster functions by target type. Casters registered later
// take precedence over earlier ones for the same target.
//
// A Registry is not safe for concurrent registration; engines take a clone.
type Registry struct {
	byDst map[reflect.Type][]Caster
}

func NewRegistry() *Registry {
	return &Registry{byDst: map[reflect.Type][]Caster{}}
}

// DefaultRegistry returns a new registry with casters for uuid.UUID and
// strfmt.DateTime.
func DefaultRegistry() *Registry {
	return NewRegistry().MustRegister(
		uuid.Parse,
		uuid.FromBytes,
		strfmt.ParseDateTime,
	)
}

// Register parses fn with ParseCaster and adds it.
func (r *Registry) Register(fn any) error {
	c, err := ParseCaster(fn)
	if err != nil {
		return fmt.Errorf("register %T: %w", fn, err)
	}

	r.byDst[c.Dst] = append([]Caster{c}, r.byDst[c.Dst]...)
	return nil
}

// MustRegister registers every fn and panics on the first invalid one.
func (r *Registry) MustRegister(fns ...any) *Registry {
	for _, fn := range fns {
		if err := r.Register(fn); err != nil {
			panic(err)
		}
	}

	return r
}

// Lookup returns the caster for pair. A caster whose source type is exactly
// pair.Src wins over one that merely accepts it.
func (r *Registry) Lookup(pair Pair) (Caster, bool) {
	casters := r.byDst[pair.Dst]

	for _, c := range casters {
		if c.Src == pair.Src {
			return c, true
		}
	}

	for _, c := range casters {
		if c.Accepts(pair.Src) {
			return c, true
		}
	}

	return Caster{}, false
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	clone := NewRegistry()
	for dst, casters := range r.byDst {
		clone.byDst[dst] = append([]Caster(nil), casters...)
	}

	return clone
}
