package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var (
	ErrNotStruct     = errors.New("record type must be a struct")
	ErrDuplicateName = errors.New("duplicate field name")
)

// TagKey is the struct tag read for field names and options.
const TagKey = "strict"

// Field is a declared record field.
type Field struct {
	Name     string       // declared name: the tag name or the Go field name
	GoName   string       // Go field name
	Index    []int        // index sequence for reflect.Value.FieldByIndex
	Type     reflect.Type // declared type
	Required bool         // must be supplied by the caller
	Position int          // position among the record's fields

	depth   int
	aliases []string
}

// Schema is the ordered set of declared fields of a struct type.
type Schema struct {
	Type   reflect.Type
	Fields []Field

	byName map[string]int
	byNorm map[string]int
}

var cache sync.Map // reflect.Type -> *Schema

// For returns the schema of T.
func For[T any]() (*Schema, error) {
	return Of(reflect.TypeFor[T]())
}

// Of returns the schema of struct type t. Results are cached per type.
func Of(t reflect.Type) (*Schema, error) {
	if cached, ok := cache.Load(t); ok {
		return cached.(*Schema), nil
	}

	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %v", ErrNotStruct, t)
	}

	s, err := build(t)
	if err != nil {
		return nil, err
	}

	actual, _ := cache.LoadOrStore(t, s)
	return actual.(*Schema), nil
}

func build(t reflect.Type) (*Schema, error) {
	var fields []Field
	collect(t, nil, 0, map[reflect.Type]bool{t: true}, &fields)

	fields, err := resolveShadowing(t, fields)
	if err != nil {
		return nil, err
	}

	s := &Schema{
		Type:   t,
		Fields: fields,
		byName: make(map[string]int, len(fields)),
		byNorm: make(map[string]int, len(fields)),
	}

	ambiguous := map[string]bool{}
	for i := range s.Fields {
		f := &s.Fields[i]
		f.Position = i

		for _, name := range append([]string{f.Name, f.GoName}, f.aliases...) {
			if _, ok := s.byName[name]; !ok {
				s.byName[name] = i
			}

			norm := normalize(name)
			if prev, ok := s.byNorm[norm]; ok && prev != i {
				ambiguous[norm] = true
			}
			s.byNorm[norm] = i
		}
	}

	for norm := range ambiguous {
		delete(s.byNorm, norm)
	}

	return s, nil
}

func collect(t reflect.Type, index []int, depth int, visiting map[reflect.Type]bool, out *[]Field) {
	for i := range t.NumField() {
		sf := t.Field(i)

		tag := sf.Tag.Get(TagKey)
		if tag == "-" {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		fieldIndex := append(append([]int{}, index...), i)

		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct {
			if !visiting[sf.Type] {
				visiting[sf.Type] = true
				collect(sf.Type, fieldIndex, depth+1, visiting, out)
				delete(visiting, sf.Type)
			}

			continue
		}

		if !sf.IsExported() {
			continue
		}

		if name == "" {
			name = sf.Name
		}

		*out = append(*out, Field{
			Name:     name,
			GoName:   sf.Name,
			Index:    fieldIndex,
			Type:     sf.Type,
			Required: hasOption(opts, "required"),
			depth:    depth,
			aliases:  aliases(sf.Tag),
		})
	}
}

// resolveShadowing keeps the shallowest field for each declared name, as Go does
// for promoted fields. Two fields with one name at the same depth are an error.
func resolveShadowing(t reflect.Type, fields []Field) ([]Field, error) {
	shallowest := map[string]int{}
	for i, f := range fields {
		if prev, ok := shallowest[f.Name]; !ok || f.depth < fields[prev].depth {
			shallowest[f.Name] = i
		}
	}

	res := make([]Field, 0, len(shallowest))
	for i, f := range fields {
		keep := shallowest[f.Name]
		switch {
		case keep == i:
			res = append(res, f)
		case f.depth == fields[keep].depth:
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateName, t, f.Name)
		}
	}

	return res, nil
}

func hasOption(opts, option string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if strings.TrimSpace(opt) == option {
			return true
		}
	}

	return false
}

// aliases returns json and yaml tag names, so documents decoded with those
// names bind to the same fields.
func aliases(tag reflect.StructTag) []string {
	var res []string
	for _, key := range []string{"json", "yaml"} {
		name, _, _ := strings.Cut(tag.Get(key), ",")
		if name != "" && name != "-" {
			res = append(res, name)
		}
	}

	return res
}

// Lookup finds a field by declared name, Go name, json/yaml name or, failing
// those, by the normalized identifier (retry_count matches RetryCount).
func (s *Schema) Lookup(key string) (*Field, bool) {
	if i, ok := s.byName[key]; ok {
		return &s.Fields[i], true
	}

	if i, ok := s.byNorm[normalize(key)]; ok {
		return &s.Fields[i], true
	}

	return nil, false
}

// At returns the field at position i.
func (s *Schema) At(i int) (*Field, bool) {
	if i < 0 || i >= len(s.Fields) {
		return nil, false
	}

	return &s.Fields[i], true
}

// Names returns the declared field names in order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}

	return names
}

// Types maps declared field names to declared types.
func (s *Schema) Types() map[string]reflect.Type {
	types := make(map[string]reflect.Type, len(s.Fields))
	for _, f := range s.Fields {
		types[f.Name] = f.Type
	}

	return types
}
