package layout

import "slices"

// PipelineOwner tracks render objects that need paint.
//
// Paint requests are deduplicated between frames: any number of
// SchedulePaint calls before the next FlushPaint produce a single
// visual-update notification, so a host that draws one frame per
// notification paints once with the newest state.
type PipelineOwner struct {
	dirtyPaint map[RenderObject]struct{}
	needsPaint bool

	// OnNeedVisualUpdate is called when the owner goes from clean to
	// having pending paint work. Hosts use it to request a frame.
	OnNeedVisualUpdate func()
}

// SchedulePaint marks a render object as needing paint.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	if p.dirtyPaint == nil {
		p.dirtyPaint = make(map[RenderObject]struct{})
	}
	if _, exists := p.dirtyPaint[object]; exists {
		return
	}
	p.dirtyPaint[object] = struct{}{}
	wasClean := !p.needsPaint
	p.needsPaint = true
	if wasClean && p.OnNeedVisualUpdate != nil {
		p.OnNeedVisualUpdate()
	}
}

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool {
	return p.needsPaint
}

// FlushPaint returns the scheduled objects that still need paint, parents
// first, and resets the owner for the next frame.
func (p *PipelineOwner) FlushPaint() []RenderObject {
	if !p.needsPaint || len(p.dirtyPaint) == 0 {
		p.dirtyPaint = nil
		p.needsPaint = false
		return nil
	}

	dirty := make([]RenderObject, 0, len(p.dirtyPaint))
	for obj := range p.dirtyPaint {
		dirty = append(dirty, obj)
	}

	slices.SortFunc(dirty, func(a, b RenderObject) int {
		return getDepth(a) - getDepth(b)
	})

	result := make([]RenderObject, 0, len(dirty))
	for _, node := range dirty {
		if node.NeedsPaint() {
			result = append(result, node)
		}
	}

	p.dirtyPaint = nil
	p.needsPaint = false
	return result
}

// getDepth returns the tree depth of a render object.
func getDepth(obj RenderObject) int {
	if getter, ok := obj.(interface{ Depth() int }); ok {
		return getter.Depth()
	}
	return 0
}
