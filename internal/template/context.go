package template

import (
	"maps"

	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// Data is the render context handed to every template. Keys are the
// camelCase ProjectConfig field names plus generator-specific additions
// such as authSecret or requiresDatabase.
type Data map[string]any

// DataOption configures a Data value.
type DataOption func(Data)

// NewData builds the render context for cfg, then applies any options.
func NewData(cfg models.ProjectConfig, opts ...DataOption) Data {
	d := Data(cfg.Values())
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithValue sets a single key.
func WithValue(key string, value any) DataOption {
	return func(d Data) {
		d[key] = value
	}
}

// WithValues merges values, overriding existing keys.
func WithValues(values map[string]any) DataOption {
	return func(d Data) {
		maps.Copy(d, values)
	}
}

// With returns a copy of d extended by opts. The receiver is not modified.
func (d Data) With(opts ...DataOption) Data {
	cp := maps.Clone(d)
	if cp == nil {
		cp = Data{}
	}
	for _, opt := range opts {
		opt(cp)
	}
	return cp
}

// Bool returns the boolean stored at key, false when absent or not a bool.
func (d Data) Bool(key string) bool {
	b, _ := d[key].(bool)
	return b
}

// String returns the string stored at key, "" when absent or not a string.
func (d Data) String(key string) string {
	s, _ := d[key].(string)
	return s
}
