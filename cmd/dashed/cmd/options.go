package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/dashed/cmd/dashed/internal/config"
)

// borderOptions are the flags shared by every command that draws a border.
type borderOptions struct {
	attrs     string
	overrides config.Overrides
}

// parseBorderFlag consumes args[i] (and its value) if it is a border flag.
// It returns the index of the last consumed argument and whether the flag
// was recognized.
func (o *borderOptions) parseBorderFlag(args []string, i int) (int, bool, error) {
	name, value, hasValue := strings.Cut(args[i], "=")
	var target *string
	switch name {
	case "--attrs":
		target = &o.attrs
	case "--shape":
		target = &o.overrides.Shape
	case "--direction":
		target = &o.overrides.Direction
	case "--speed":
		target = &o.overrides.Speed
	case "--color":
		target = &o.overrides.Color
	default:
		return i, false, nil
	}
	if !hasValue {
		if i+1 >= len(args) {
			return i, true, fmt.Errorf("%s requires a value", name)
		}
		value = args[i+1]
		i++
	}
	*target = value
	return i, true, nil
}

func (o *borderOptions) resolve() (*config.Resolved, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Resolve(o.attrs, dir, o.overrides)
}

// flagValue returns the value of a --name VALUE or --name=VALUE flag.
func flagValue(args []string, i int) (string, int, error) {
	if _, value, ok := strings.Cut(args[i], "="); ok {
		return value, i, nil
	}
	if i+1 >= len(args) {
		return "", i, fmt.Errorf("%s requires a value", args[i])
	}
	return args[i+1], i + 1, nil
}

// parseSize parses WIDTHxHEIGHT.
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q (want WIDTHxHEIGHT)", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}
