package border_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/dashed/pkg/border"
	"github.com/go-drift/dashed/pkg/errors"
	"github.com/go-drift/dashed/pkg/graphics"
)

type errorRecorder struct {
	errs []*errors.Error
}

func (r *errorRecorder) HandleError(err *errors.Error)      { r.errs = append(r.errs, err) }
func (r *errorRecorder) HandlePanic(err *errors.PanicError) {}

func recordErrors(t *testing.T) *errorRecorder {
	t.Helper()
	rec := &errorRecorder{}
	prev := errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return rec
}

func ptr[T any](v T) *T { return &v }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve_Defaults(t *testing.T) {
	got := border.Resolve(border.Attributes{})
	want := border.Config{
		Shape:        border.ShapeRoundedRect,
		CornerRadius: 0,
		DashLength:   20,
		GapLength:    10,
		StrokeWidth:  4,
		Color:        graphics.Color(0xFFFF0000),
		Direction:    border.DirectionNone,
		Speed:        border.SpeedNormal,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Overrides(t *testing.T) {
	got := border.Resolve(border.Attributes{
		BorderShape:      ptr(0),
		BorderRadius:     ptr(8.0),
		DashedLength:     ptr(12.0),
		DashedWidth:      ptr(2.0),
		SpaceLength:      ptr(6.0),
		DashedColor:      ptr("#80112233"),
		AnimateDirection: ptr(1),
		AnimateSpeed:     ptr(2),
	})
	want := border.Config{
		Shape:        border.ShapeCircle,
		CornerRadius: 8,
		DashLength:   12,
		GapLength:    6,
		StrokeWidth:  2,
		Color:        graphics.Color(0x80112233),
		Direction:    border.DirectionClockwise,
		Speed:        border.SpeedFast,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_OrdinalRules(t *testing.T) {
	got := border.Resolve(border.Attributes{
		BorderShape:      ptr(7),
		AnimateDirection: ptr(9),
		AnimateSpeed:     ptr(-1),
	})
	if got.Shape != border.ShapeRoundedRect {
		t.Errorf("Shape = %v, want rounded rect for a non-zero shape", got.Shape)
	}
	if got.Direction != border.DirectionNone {
		t.Errorf("Direction = %v, want default", got.Direction)
	}
	if got.Speed != border.SpeedNormal {
		t.Errorf("Speed = %v, want default", got.Speed)
	}
}

func TestResolve_OutOfRangeNumbersKept(t *testing.T) {
	got := border.Resolve(border.Attributes{
		BorderRadius: ptr(-3.0),
		DashedLength: ptr(0.0),
		DashedWidth:  ptr(-1.0),
	})
	if got.CornerRadius != -3 || got.DashLength != 0 || got.StrokeWidth != -1 {
		t.Errorf("Resolve = %+v, want values passed through", got)
	}
}

func TestResolve_BadColorReported(t *testing.T) {
	rec := recordErrors(t)

	got := border.Resolve(border.Attributes{DashedColor: ptr("mauve-ish")})

	if got.Color != graphics.ColorRed {
		t.Errorf("Color = %v, want default red", got.Color)
	}
	if len(rec.errs) != 1 {
		t.Fatalf("reported %d errors, want 1", len(rec.errs))
	}
	if rec.errs[0].Kind != errors.KindParsing {
		t.Errorf("Kind = %v, want parsing", rec.errs[0].Kind)
	}
	var perr *errors.ParseError
	if !stderrors.As(rec.errs[0], &perr) || perr.Attribute != "dashed_color" {
		t.Errorf("err = %v, want a dashed_color ParseError", rec.errs[0])
	}
}

func TestLoadAttributes_Formats(t *testing.T) {
	want := border.Config{
		Shape:        border.ShapeCircle,
		CornerRadius: 0,
		DashLength:   16,
		GapLength:    8,
		StrokeWidth:  3,
		Color:        graphics.ColorBlue,
		Direction:    border.DirectionCounterClockwise,
		Speed:        border.SpeedLow,
	}
	files := map[string]string{
		"border.yaml": `version: v1.2.0
border_shape: 0
dashed_length: 16
dashed_width: 3
space_length: 8
dashed_color: blue
animate_direction: 2
animate_speed: 0
`,
		"border.toml": `version = "1.0.0"
border_shape = 0
dashed_length = 16.0
dashed_width = 3.0
space_length = 8.0
dashed_color = "#0000FF"
animate_direction = 2
animate_speed = 0
`,
		"border.hcl": `version           = "v1.0.0"
border_shape      = 0
dashed_length     = 16
dashed_width      = 3
space_length      = 8
dashed_color      = "blue"
animate_direction = 2
animate_speed     = 0
`,
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			attrs, err := border.LoadAttributes(writeFile(t, name, content))
			if err != nil {
				t.Fatalf("LoadAttributes: %v", err)
			}
			if diff := cmp.Diff(want, border.Resolve(attrs)); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadAttributes_PartialFileKeepsDefaults(t *testing.T) {
	attrs, err := border.LoadAttributes(writeFile(t, "partial.yml", "animate_direction: 1\n"))
	if err != nil {
		t.Fatalf("LoadAttributes: %v", err)
	}
	cfg := border.Resolve(attrs)
	want := border.DefaultConfig()
	want.Direction = border.DirectionClockwise
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAttributes_EmptyYAML(t *testing.T) {
	attrs, err := border.LoadAttributes(writeFile(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("LoadAttributes: %v", err)
	}
	if diff := cmp.Diff(border.DefaultConfig(), border.Resolve(attrs)); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAttributes_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"major version", "v2.yaml", "version: v2.0.0\n"},
		{"bad version", "bad.toml", "version = \"one\"\n"},
		{"unknown field", "extra.yaml", "dash_colour: red\n"},
		{"unknown hcl field", "extra.hcl", "wobble = 1\n"},
		{"syntax", "broken.toml", "border_shape = \n"},
		{"extension", "border.json", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := border.LoadAttributes(path)
			if err == nil {
				t.Fatal("LoadAttributes succeeded, want error")
			}
			var derr *errors.Error
			if !stderrors.As(err, &derr) {
				t.Fatalf("err = %T, want *errors.Error", err)
			}
			if derr.Kind != errors.KindConfig || derr.Source != path {
				t.Errorf("Kind=%v Source=%q, want config and %q", derr.Kind, derr.Source, path)
			}
		})
	}
}

func TestLoadAttributes_MissingFile(t *testing.T) {
	_, err := border.LoadAttributes(filepath.Join(t.TempDir(), "nope.yaml"))
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestAttributesFromConfig_RoundTripsThroughYAML(t *testing.T) {
	cfg := border.DefaultConfig()
	cfg.Shape = border.ShapeCircle
	cfg.Color = graphics.RGB(0x12, 0x34, 0x56)
	cfg.Speed = border.SpeedFast

	data, err := border.MarshalYAML(border.AttributesFromConfig(cfg))
	if err != nil {
		t.Fatalf("MarshalYAML: %v", err)
	}
	attrs, err := border.LoadAttributes(writeFile(t, "out.yaml", string(data)))
	if err != nil {
		t.Fatalf("LoadAttributes: %v\n%s", err, data)
	}
	if diff := cmp.Diff(cfg, border.Resolve(attrs)); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}
