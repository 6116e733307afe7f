// Package palette loads named color sets from TOML or YAML files.
//
// A palette file maps names to colors accepted by dry.Resolve:
//
//	name = "sunset"
//	[colors]
//	sky = "#FF7E5F"
//	sea = "feb47bcc"
//	ink = "midnightblue"
package palette

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/dry"
)

var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .toml, .yaml and .yml.
	ErrUnsupportedFormat = errors.New("palette: unsupported format")

	// ErrColorNotFound is returned by Sample for unknown names.
	ErrColorNotFound = errors.New("palette: color not found")

	// ErrInvalid is matched by every *ValidationError.
	ErrInvalid = errors.New("palette: invalid palette")
)

// Format is a palette file encoding.
type Format uint8

const (
	// FormatTOML is decoded with BurntSushi/toml.
	FormatTOML Format = iota + 1
	// FormatYAML is decoded with gopkg.in/yaml.v3.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Palette is a validated set of named colors.
type Palette struct {
	Name        string            `toml:"name" yaml:"name" validate:"required"`
	Description string            `toml:"description" yaml:"description"`
	Colors      map[string]string `toml:"colors" yaml:"colors" validate:"required,min=1,dive,keys,required,endkeys,required,dry_color"`
}

// Load reads and validates a palette file.
func Load(path string) (*Palette, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("palette: read %s: %w", path, err)
	}
	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates palette data.
func Parse(data []byte, format Format) (*Palette, error) {
	var p Palette
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return nil, fmt.Errorf("palette: decode toml: %w", err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			dry.Logger().Debug("palette: ignoring unknown keys", "keys", fmt.Sprint(keys))
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("palette: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Sample resolves a named entry.
func (p *Palette) Sample(name string) (dry.Sample, error) {
	v, ok := p.Colors[name]
	if !ok {
		return dry.Sample{}, fmt.Errorf("%w: %q in palette %q", ErrColorNotFound, name, p.Name)
	}
	return dry.Resolve(v)
}

// Names returns the entry names in sorted order.
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.Colors))
	for k := range p.Colors {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
