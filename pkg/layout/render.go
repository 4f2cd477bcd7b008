// Package layout holds the render tree plumbing dashed widgets paint
// through: render objects, the paint context, and the pipeline owner that
// batches paint requests into frames.
package layout

import "github.com/go-drift/dashed/pkg/graphics"

// RenderObject is a node in the render tree that can paint itself.
type RenderObject interface {
	Size() graphics.Size
	Paint(ctx *PaintContext)
	MarkNeedsPaint()
	NeedsPaint() bool
	ClearNeedsPaint()
	SetOwner(owner *PipelineOwner)
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	// VisitChildren calls the visitor function for each child.
	VisitChildren(visitor func(RenderObject))
}

// RenderBoxBase provides base behavior for render boxes. Embedders call
// SetSelf with the concrete object before attaching it to an owner.
type RenderBoxBase struct {
	size       graphics.Size
	owner      *PipelineOwner
	self       RenderObject
	parent     RenderObject // parent reference for tree walking
	depth      int          // tree depth (root = 0)
	needsPaint bool         // local dirty flag for paint
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize updates the render box size and marks paint dirty if it changed.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

// MarkNeedsPaint marks this render box as needing paint and schedules the
// root of its tree with the pipeline owner.
//
// There is no early return when needsPaint is already set: SetSelf pre-sets
// the flag without scheduling, and SchedulePaint deduplicates on its own.
func (r *RenderBoxBase) MarkNeedsPaint() {
	r.needsPaint = true
	if r.parent != nil {
		r.parent.MarkNeedsPaint()
		return
	}
	if r.owner == nil || r.self == nil {
		return
	}
	r.owner.SchedulePaint(r.self)
}

// NeedsPaint returns true if this render box needs paint.
func (r *RenderBoxBase) NeedsPaint() bool {
	return r.needsPaint
}

// ClearNeedsPaint marks this render box as painted.
func (r *RenderBoxBase) ClearNeedsPaint() {
	r.needsPaint = false
}

// SetOwner assigns the pipeline owner used for scheduling paint.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
}

// Owner returns the pipeline owner, or nil when detached.
func (r *RenderBoxBase) Owner() *PipelineOwner {
	return r.owner
}

// SetSelf registers the concrete render object for scheduling.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsPaint = true // New render objects always need initial paint
}

// SetParent sets the parent render object and computes depth. Both the old
// and the new parent are marked for repaint.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	if r.parent == parent {
		return
	}
	oldParent := r.parent
	r.parent = parent
	if parent == nil {
		r.depth = 0
	} else if getter, ok := parent.(interface{ Depth() int }); ok {
		r.depth = getter.Depth() + 1
	} else {
		r.depth = 1
	}
	r.needsPaint = true

	if oldParent != nil {
		oldParent.MarkNeedsPaint()
	}
	if parent != nil {
		parent.MarkNeedsPaint()
	}
}

// Depth returns the tree depth (root = 0).
func (r *RenderBoxBase) Depth() int {
	return r.depth
}

// Attach sets the owner on root and all of its descendants, then schedules
// a paint of root.
func Attach(root RenderObject, owner *PipelineOwner) {
	if root == nil {
		return
	}
	visit(root, func(obj RenderObject) { obj.SetOwner(owner) })
	if owner != nil {
		root.MarkNeedsPaint()
	}
}

// Detach clears the owner on root and all of its descendants.
func Detach(root RenderObject) {
	if root == nil {
		return
	}
	visit(root, func(obj RenderObject) { obj.SetOwner(nil) })
}

func visit(obj RenderObject, fn func(RenderObject)) {
	fn(obj)
	if v, ok := obj.(ChildVisitor); ok {
		v.VisitChildren(func(child RenderObject) {
			if child != nil {
				visit(child, fn)
			}
		})
	}
}
