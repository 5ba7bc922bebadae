package strict

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrNotDocument   = errors.New("document must be a mapping or a sequence")
	ErrUnknownFormat = errors.New("unknown document format")
	ErrTrailingData  = errors.New("unexpected data after the document")
)

// FromYAML builds a record from a YAML document. A mapping supplies named
// arguments, a sequence positional ones.
func (t *Type[T]) FromYAML(data []byte) (T, error) {
	var zero T

	args, err := yamlArgs(data)
	if err != nil {
		return zero, fmt.Errorf("failed to parse %v YAML: %w", t.schema.Type, err)
	}

	return t.New(args)
}

// FromJSON builds a record from a JSON document. Integers keep their full
// precision; numbers are cast the same way as YAML numbers.
func (t *Type[T]) FromJSON(data []byte) (T, error) {
	var zero T

	args, err := jsonArgs(data)
	if err != nil {
		return zero, fmt.Errorf("failed to parse %v JSON: %w", t.schema.Type, err)
	}

	return t.New(args)
}

// LoadFile builds a record from a .yaml, .yml or .json file.
func (t *Type[T]) LoadFile(path string) (T, error) {
	var zero T

	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("failed to read record file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return t.FromYAML(data)
	case ".json":
		return t.FromJSON(data)
	default:
		return zero, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

func yamlArgs(data []byte) (Args, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Args{}, err
	}

	if doc.Kind == 0 {
		return Args{}, nil
	}

	node := &doc
	if node.Kind == yaml.DocumentNode {
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.MappingNode:
		var named map[string]any
		if err := node.Decode(&named); err != nil {
			return Args{}, err
		}

		return Named(named), nil

	case yaml.SequenceNode:
		var positional []any
		if err := node.Decode(&positional); err != nil {
			return Args{}, err
		}

		return Pos(positional...), nil

	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return Args{}, nil
		}
	}

	return Args{}, fmt.Errorf("%w: got YAML %s", ErrNotDocument, node.ShortTag())
}

func jsonArgs(data []byte) (Args, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return Args{}, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Args{}, fmt.Errorf("%w after offset %d", ErrTrailingData, dec.InputOffset())
	}

	switch v := jsonNumbers(doc).(type) {
	case map[string]any:
		return Named(v), nil
	case []any:
		return Pos(v...), nil
	case nil:
		return Args{}, nil
	default:
		return Args{}, fmt.Errorf("%w: got JSON %T", ErrNotDocument, doc)
	}
}

// jsonNumbers replaces every json.Number in doc with an int when it is an
// integer that fits, an int64 when it only fits that, and a float64 otherwise,
// matching what the YAML decoder produces.
func jsonNumbers(doc any) any {
	switch v := doc.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			if n >= math.MinInt && n <= math.MaxInt {
				return int(n)
			}

			return n
		}

		if f, err := v.Float64(); err == nil {
			return f
		}

		return v.String()
	case map[string]any:
		for k, elem := range v {
			v[k] = jsonNumbers(elem)
		}
	case []any:
		for i, elem := range v {
			v[i] = jsonNumbers(elem)
		}
	}

	return doc
}
