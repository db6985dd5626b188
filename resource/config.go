package resource

import (
	"fmt"

	"github.com/go-openapi/inflect"
	"gopkg.in/yaml.v3"

	"github.com/syssam/rowmap/field"
)

// Config is the declarative form of a resource mapping.
type Config struct {
	Name   string        `yaml:"name"`
	Fields []FieldConfig `yaml:"fields"`
}

// FieldConfig declares one field of a resource mapping. Column is
// required; an omitted attribute is derived from the column name by
// underscore inflection.
type FieldConfig struct {
	Column    string `yaml:"column"`
	Attribute string `yaml:"attribute"`
	Default   any    `yaml:"default"`
	NoDefault bool   `yaml:"no_default"`
	ReadOnly  bool   `yaml:"readonly"`
}

// Parse unmarshals a YAML mapping definition and builds the resource
// it declares.
func Parse(data []byte) (*Resource, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("resource: parse mapping: %w", err)
	}
	return cfg.Build()
}

// Build constructs the resource declared by the config. Widgets beyond
// the default pass-through are attached in code after building.
func (c *Config) Build() (*Resource, error) {
	fields := make([]*field.Field, 0, len(c.Fields))
	for i, fc := range c.Fields {
		f, err := fc.build()
		if err != nil {
			return nil, fmt.Errorf("resource: %s: field %d: %w", c.Name, i, err)
		}
		fields = append(fields, f)
	}
	return New(c.Name, fields...), nil
}

func (fc *FieldConfig) build() (*field.Field, error) {
	if fc.Column == "" {
		return nil, fmt.Errorf("missing column")
	}
	attr := fc.Attribute
	if attr == "" {
		attr = inflect.Underscore(fc.Column)
	}
	f := field.New(fc.Column).Attribute(attr)
	switch {
	case fc.NoDefault:
		f.NoDefault()
	case fc.Default != nil:
		f.Default(fc.Default)
	}
	if fc.ReadOnly {
		f.ReadOnly()
	}
	return f, nil
}
