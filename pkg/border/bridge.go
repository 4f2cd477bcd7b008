package border

import "github.com/go-drift/dashed/pkg/platform"

// LifecycleSource reports host visibility. *platform.LifecycleService
// satisfies it.
type LifecycleSource interface {
	State() platform.LifecycleState
	AddHandler(handler platform.LifecycleHandler) func()
}

// Runner is the part of an Animator the bridge drives.
type Runner interface {
	Start()
	Stop()
}

// Bridge starts and stops a Runner as its lifecycle source becomes
// visible or hidden. It listens to at most one source at a time.
type Bridge struct {
	animator Runner
	source   LifecycleSource
	detach   func()
}

// NewBridge creates an unbound bridge for animator.
func NewBridge(animator Runner) *Bridge {
	return &Bridge{animator: animator}
}

// Bind detaches from any previous source and subscribes to source. If the
// source is already resumed the animator starts right away, the same as if
// the resume event had just arrived. A nil source only detaches.
func (b *Bridge) Bind(source LifecycleSource) {
	b.Unbind()
	if source == nil {
		return
	}
	b.source = source
	b.detach = source.AddHandler(b.handle)
	if source.State() == platform.LifecycleStateResumed {
		b.animator.Start()
	}
}

// Unbind stops listening without touching the animator.
func (b *Bridge) Unbind() {
	if b.detach != nil {
		b.detach()
	}
	b.detach = nil
	b.source = nil
}

// Source returns the currently bound source, or nil.
func (b *Bridge) Source() LifecycleSource {
	return b.source
}

func (b *Bridge) handle(state platform.LifecycleState) {
	switch state {
	case platform.LifecycleStateResumed:
		b.animator.Start()
	case platform.LifecycleStatePaused, platform.LifecycleStateDetached:
		b.animator.Stop()
	}
}
