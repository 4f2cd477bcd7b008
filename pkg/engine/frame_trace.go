package engine

const frameTraceSamplesDefault = 240

// FrameSample is a single frame trace sample.
type FrameSample struct {
	Timestamp  int64   `json:"ts"`
	FrameMs    float64 `json:"frameMs"`
	DirtyPaint int     `json:"dirtyPaint"`
	Ops        int     `json:"ops"`
}

// frameTrace keeps the most recent samples in a ring buffer.
type frameTrace struct {
	samples []FrameSample
	next    int
	full    bool
}

func newFrameTrace(capacity int) *frameTrace {
	if capacity <= 0 {
		capacity = frameTraceSamplesDefault
	}
	return &frameTrace{samples: make([]FrameSample, capacity)}
}

func (t *frameTrace) add(s FrameSample) {
	t.samples[t.next] = s
	t.next = (t.next + 1) % len(t.samples)
	if t.next == 0 {
		t.full = true
	}
}

func (t *frameTrace) snapshot() []FrameSample {
	if !t.full {
		return append([]FrameSample(nil), t.samples[:t.next]...)
	}
	out := make([]FrameSample, 0, len(t.samples))
	out = append(out, t.samples[t.next:]...)
	return append(out, t.samples[:t.next]...)
}
