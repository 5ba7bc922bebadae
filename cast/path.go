package cast

import (
	"fmt"
	"strconv"
)

// Path locates a value inside a record being built.
// Examples:
//   - "bar" for a top-level field
//   - "items[2]" for a slice element
//   - "labels[\"env\"]" for a map value
//   - "owner.name" for a field of a nested record
type Path struct {
	head string
	full string
}

// Root is the empty path of the record itself.
func Root() Path { return Path{} }

// Field appends a field name to the path.
func (p Path) Field(name string) Path {
	if p.full == "" {
		return Path{head: name, full: name}
	}

	return Path{head: p.head, full: p.full + "." + name}
}

// Index appends a slice or array index to the path.
func (p Path) Index(i int) Path {
	return Path{head: p.head, full: p.full + "[" + strconv.Itoa(i) + "]"}
}

// Key appends a map key to the path.
func (p Path) Key(key any) Path {
	if s, ok := key.(string); ok {
		return Path{head: p.head, full: p.full + "[" + strconv.Quote(s) + "]"}
	}

	return Path{head: p.head, full: fmt.Sprintf("%s[%v]", p.full, key)}
}

// Head returns the top-level field name.
func (p Path) Head() string { return p.head }

// String returns the full path string.
func (p Path) String() string { return p.full }
