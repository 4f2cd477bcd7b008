// Package config locates and resolves the attribute file used by the
// dashed CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-drift/dashed/pkg/border"
)

// DefaultNames are the attribute files looked for, in order, when no
// file is given explicitly.
var DefaultNames = []string{"dashed.yaml", "dashed.yml", "dashed.toml", "dashed.hcl"}

// Resolved contains resolved configuration values.
type Resolved struct {
	// Source is the attribute file read, or empty for defaults.
	Source     string
	Attributes border.Attributes
	Config     border.Config
}

// Overrides replace resolved values from command-line flags. Empty fields
// keep the file's value.
type Overrides struct {
	Shape     string
	Direction string
	Speed     string
	Color     string
}

// Find returns the first of DefaultNames present in dir, or "" if none is.
func Find(dir string) (string, error) {
	for _, name := range DefaultNames {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}
	return "", nil
}

// Resolve loads path, or the default attribute file in dir when path is
// empty, and applies overrides. With no file at all the defaults are used.
func Resolve(path, dir string, overrides Overrides) (*Resolved, error) {
	if path == "" {
		found, err := Find(dir)
		if err != nil {
			return nil, err
		}
		path = found
	}

	var attrs border.Attributes
	if path != "" {
		loaded, err := border.LoadAttributes(path)
		if err != nil {
			return nil, err
		}
		attrs = loaded
	}

	if err := overrides.apply(&attrs); err != nil {
		return nil, err
	}

	return &Resolved{
		Source:     path,
		Attributes: attrs,
		Config:     border.Resolve(attrs),
	}, nil
}

func (o Overrides) apply(attrs *border.Attributes) error {
	if o.Shape != "" {
		shape, err := ParseShape(o.Shape)
		if err != nil {
			return err
		}
		v := int(shape)
		attrs.BorderShape = &v
	}
	if o.Direction != "" {
		d, err := ParseDirection(o.Direction)
		if err != nil {
			return err
		}
		v := int(d)
		attrs.AnimateDirection = &v
	}
	if o.Speed != "" {
		s, err := ParseSpeed(o.Speed)
		if err != nil {
			return err
		}
		v := int(s)
		attrs.AnimateSpeed = &v
	}
	if o.Color != "" {
		c := o.Color
		attrs.DashedColor = &c
	}
	return nil
}

// ParseShape accepts circle, rect (or rounded_rect) and the ordinals 0 and 1.
func ParseShape(s string) (border.Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle", "oval", "0":
		return border.ShapeCircle, nil
	case "rect", "rounded_rect", "rrect", "1":
		return border.ShapeRoundedRect, nil
	}
	return 0, fmt.Errorf("unknown shape %q (use circle or rect)", s)
}

// ParseDirection accepts none, cw (clockwise), ccw (counterclockwise) and
// the ordinals 0, 1 and 2.
func ParseDirection(s string) (border.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "0":
		return border.DirectionNone, nil
	case "cw", "clockwise", "1":
		return border.DirectionClockwise, nil
	case "ccw", "counterclockwise", "2":
		return border.DirectionCounterClockwise, nil
	}
	return 0, fmt.Errorf("unknown direction %q (use none, cw or ccw)", s)
}

// ParseSpeed accepts low, normal, fast and the ordinals 0, 1 and 2.
func ParseSpeed(s string) (border.Speed, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "low", "slow":
		return border.SpeedLow, nil
	case "normal":
		return border.SpeedNormal, nil
	case "fast":
		return border.SpeedFast, nil
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 2 {
		return border.Speed(n), nil
	}
	return 0, fmt.Errorf("unknown speed %q (use low, normal or fast)", s)
}
