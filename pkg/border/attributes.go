package border

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/dashed/pkg/errors"
	"github.com/go-drift/dashed/pkg/graphics"
)

// AttributesVersion is the attribute file format major version this
// package reads.
const AttributesVersion = "v1"

// Attributes holds raw widget attributes as a host or attribute file
// supplies them. Nil fields take the default.
type Attributes struct {
	Version          *string  `yaml:"version,omitempty" toml:"version,omitempty" hcl:"version,optional"`
	BorderShape      *int     `yaml:"border_shape,omitempty" toml:"border_shape,omitempty" hcl:"border_shape,optional"`
	BorderRadius     *float64 `yaml:"border_radius,omitempty" toml:"border_radius,omitempty" hcl:"border_radius,optional"`
	DashedLength     *float64 `yaml:"dashed_length,omitempty" toml:"dashed_length,omitempty" hcl:"dashed_length,optional"`
	DashedWidth      *float64 `yaml:"dashed_width,omitempty" toml:"dashed_width,omitempty" hcl:"dashed_width,optional"`
	SpaceLength      *float64 `yaml:"space_length,omitempty" toml:"space_length,omitempty" hcl:"space_length,optional"`
	DashedColor      *string  `yaml:"dashed_color,omitempty" toml:"dashed_color,omitempty" hcl:"dashed_color,optional"`
	AnimateDirection *int     `yaml:"animate_direction,omitempty" toml:"animate_direction,omitempty" hcl:"animate_direction,optional"`
	AnimateSpeed     *int     `yaml:"animate_speed,omitempty" toml:"animate_speed,omitempty" hcl:"animate_speed,optional"`
}

// Resolve applies attrs over DefaultConfig. Numbers are taken as given.
// A border_shape of 0 selects a circle and any other value a rounded rect;
// unknown direction or speed ordinals keep the default. A color that does
// not parse is reported and the default red is kept.
func Resolve(attrs Attributes) Config {
	cfg := DefaultConfig()
	if attrs.BorderShape != nil {
		if *attrs.BorderShape == int(ShapeCircle) {
			cfg.Shape = ShapeCircle
		} else {
			cfg.Shape = ShapeRoundedRect
		}
	}
	if attrs.BorderRadius != nil {
		cfg.CornerRadius = *attrs.BorderRadius
	}
	if attrs.DashedLength != nil {
		cfg.DashLength = *attrs.DashedLength
	}
	if attrs.DashedWidth != nil {
		cfg.StrokeWidth = *attrs.DashedWidth
	}
	if attrs.SpaceLength != nil {
		cfg.GapLength = *attrs.SpaceLength
	}
	if attrs.DashedColor != nil {
		c, err := graphics.ParseColor(*attrs.DashedColor)
		if err != nil {
			errors.Report(&errors.Error{
				Op:   "border.Resolve",
				Kind: errors.KindParsing,
				Err: &errors.ParseError{
					Attribute: "dashed_color",
					Got:       *attrs.DashedColor,
				},
			})
		} else {
			cfg.Color = c
		}
	}
	if attrs.AnimateDirection != nil {
		switch d := Direction(*attrs.AnimateDirection); d {
		case DirectionNone, DirectionClockwise, DirectionCounterClockwise:
			cfg.Direction = d
		}
	}
	if attrs.AnimateSpeed != nil {
		switch s := Speed(*attrs.AnimateSpeed); s {
		case SpeedLow, SpeedNormal, SpeedFast:
			cfg.Speed = s
		}
	}
	return cfg
}

// AttributesFromConfig returns the attributes that resolve to cfg.
func AttributesFromConfig(cfg Config) Attributes {
	version := AttributesVersion + ".0.0"
	shape := int(cfg.Shape)
	color := cfg.Color.String()
	direction := int(cfg.Direction)
	speed := int(cfg.Speed)
	return Attributes{
		Version:          &version,
		BorderShape:      &shape,
		BorderRadius:     &cfg.CornerRadius,
		DashedLength:     &cfg.DashLength,
		DashedWidth:      &cfg.StrokeWidth,
		SpaceLength:      &cfg.GapLength,
		DashedColor:      &color,
		AnimateDirection: &direction,
		AnimateSpeed:     &speed,
	}
}

// LoadAttributes reads an attribute file. The format is chosen by
// extension: .yaml/.yml, .toml or .hcl. Errors are *errors.Error with
// KindConfig.
func LoadAttributes(path string) (Attributes, error) {
	var attrs Attributes
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".hcl" {
		if err := hclsimple.DecodeFile(path, nil, &attrs); err != nil {
			return Attributes{}, configError(path, err)
		}
		return checkVersion(path, attrs)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Attributes{}, configError(path, err)
	}
	switch ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&attrs); err != nil && err != io.EOF {
			return Attributes{}, configError(path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&attrs); err != nil {
			return Attributes{}, configError(path, err)
		}
	default:
		return Attributes{}, configError(path, fmt.Errorf("unsupported attribute file extension %q", ext))
	}
	return checkVersion(path, attrs)
}

// MarshalYAML encodes attrs the way LoadAttributes reads .yaml files.
func MarshalYAML(attrs Attributes) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(attrs); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// checkVersion accepts a missing version or any valid semver with the
// supported major version.
func checkVersion(path string, attrs Attributes) (Attributes, error) {
	if attrs.Version == nil {
		return attrs, nil
	}
	v := *attrs.Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return Attributes{}, configError(path, fmt.Errorf("invalid version %q", *attrs.Version))
	}
	if semver.Major(v) != AttributesVersion {
		return Attributes{}, configError(path, fmt.Errorf("unsupported version %s, want %s.x", *attrs.Version, AttributesVersion))
	}
	return attrs, nil
}

func configError(path string, err error) *errors.Error {
	return &errors.Error{
		Op:     "border.LoadAttributes",
		Kind:   errors.KindConfig,
		Source: path,
		Err:    err,
	}
}
