package border

import (
	"testing"

	"github.com/go-drift/dashed/pkg/graphics"
)

type nopCanvas struct{ graphics.Canvas }

func (nopCanvas) DrawOval(graphics.Rect, graphics.Paint)   {}
func (nopCanvas) DrawRRect(graphics.RRect, graphics.Paint) {}

func TestRenderer_InsetCachedPerSize(t *testing.T) {
	cfg := DefaultConfig()
	r := NewRenderer(&cfg)
	small := graphics.Size{Width: 100, Height: 100}
	large := graphics.Size{Width: 300, Height: 120}

	for i := 0; i < 10; i++ {
		r.Paint(nopCanvas{}, small, float64(i))
	}
	if r.insetRuns != 1 {
		t.Fatalf("insetRuns = %d after repaints at one size, want 1", r.insetRuns)
	}

	r.Paint(nopCanvas{}, large, 0)
	r.Paint(nopCanvas{}, large, 1)
	if r.insetRuns != 2 {
		t.Errorf("insetRuns = %d after resize, want 2", r.insetRuns)
	}
	if got := r.DrawableRect(large); got.Right != 298 || got.Bottom != 118 {
		t.Errorf("DrawableRect(large) = %+v", got)
	}
	if r.insetRuns != 2 {
		t.Errorf("insetRuns = %d, DrawableRect at the cached size recomputed", r.insetRuns)
	}
}
