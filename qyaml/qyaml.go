// Package qyaml offers typed access to YAML documents, keeping mapping
// keys in document order.
package qyaml

import (
	"gopkg.in/yaml.v2"

	"github.com/lethallib/go-levels/conv"
	"github.com/lethallib/go-levels/text"
)

// YAML is a decoded YAML mapping.
type YAML struct {
	Doc yaml.MapSlice
}

// Parse decodes a YAML document whose top level is a mapping. An empty
// document gives an empty YAML.
func Parse(data []byte) (YAML, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return YAML{}, err
	}
	return YAML{Doc: doc}, nil
}

// Has reports whether key is present, even with a null value.
func (y YAML) Has(key string) bool {
	_, ok := y.lookup(key)
	return ok
}

// Key returns the value for key, or nil.
func (y YAML) Key(key string) interface{} {
	v, _ := y.lookup(key)
	return v
}

func (y YAML) lookup(key string) (interface{}, bool) {
	for _, item := range y.Doc {
		if text.Str(item.Key) == key {
			return item.Value, true
		}
	}
	return nil, false
}

// Map returns the mapping under key, in document order, or nil if key does
// not hold a mapping.
func (y YAML) Map(key string) yaml.MapSlice {
	if m, ok := y.Key(key).(yaml.MapSlice); ok {
		return m
	}
	return nil
}

// StringSlice returns the sequence under key as strings, or nil.
func (y YAML) StringSlice(key string) []string {
	return conv.IStringSlice(y.Key(key))
}

// Keys lists the top-level keys in document order.
func (y YAML) Keys() []string {
	keys := make([]string, len(y.Doc))
	for i, item := range y.Doc {
		keys[i] = text.Str(item.Key)
	}
	return keys
}
