// Package manifest loads flag schemas from argscan.toml files so the CLI
// can exercise a schema without writing Go code. The manifest layer only
// maps TOML onto the schema model; the real validation is the normalizer's
// job and happens on first parse.
package manifest

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"argscan/internal/flagspec"
)

// Manifest is a named schema loaded from disk.
type Manifest struct {
	Path   string
	Name   string
	Schema flagspec.Schema
}

type fileConfig struct {
	Package packageConfig         `toml:"package"`
	Flags   map[string]flagConfig `toml:"flags"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type flagConfig struct {
	Type       string   `toml:"type"`
	Flags      []string `toml:"flags"`
	Required   bool     `toml:"required"`
	Default    any      `toml:"default"`
	AllowEmpty bool     `toml:"allow_empty"`
	AllowNo    *bool    `toml:"allow_no"`
}

// Load reads and maps a manifest file.
func Load(path string) (*Manifest, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	m, err := build(cfg, meta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

// Decode maps a manifest from a reader; used by tests and stdin input.
func Decode(r io.Reader) (*Manifest, error) {
	var cfg fileConfig
	meta, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return build(cfg, meta)
}

func build(cfg fileConfig, meta toml.MetaData) (*Manifest, error) {
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("missing [package]")
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, fmt.Errorf("missing [package].name")
	}
	if !meta.IsDefined("flags") || len(cfg.Flags) == 0 {
		return nil, fmt.Errorf("missing [flags] tables")
	}

	schema := make(flagspec.Schema, len(cfg.Flags))
	for key, fc := range cfg.Flags {
		if !meta.IsDefined("flags", key, "type") {
			return nil, fmt.Errorf("[flags.%s]: missing type", key)
		}
		typ, ok := parseType(fc.Type)
		if !ok {
			return nil, fmt.Errorf("[flags.%s]: unrecognized type %q", key, fc.Type)
		}
		schema[key] = flagspec.Spec{
			Type:       typ,
			Flags:      fc.Flags,
			Required:   fc.Required,
			Default:    fc.Default,
			AllowEmpty: fc.AllowEmpty,
			AllowNo:    fc.AllowNo,
		}
	}

	return &Manifest{
		Name:   strings.TrimSpace(cfg.Package.Name),
		Schema: schema,
	}, nil
}

func parseType(s string) (flagspec.Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string":
		return flagspec.TypeString, true
	case "boolean", "bool":
		return flagspec.TypeBool, true
	case "number":
		return flagspec.TypeNumber, true
	case "array":
		return flagspec.TypeArray, true
	}
	return flagspec.TypeInvalid, false
}
