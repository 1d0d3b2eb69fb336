package render3d

import "sort"

const (
	// Depth shading: brightness falls off linearly with depth and
	// bottoms out at 1-maxDarken of the base color.
	shadeFalloff = 2200.0
	maxDarken    = 0.65
)

// DepthShade returns the brightness factor for a triangle at the given
// camera-space depth. Monotonically non-increasing in depth, in
// (0, 1].
func DepthShade(depth float64) float64 {
	d := depth / shadeFalloff
	if d > maxDarken {
		d = maxDarken
	}
	if d < 0 {
		d = 0
	}
	return 1 - d
}

// Frame collects the projected triangles of a single frame. The
// backing buffer is reused across frames; projection output dominates
// per-frame allocation otherwise.
type Frame struct {
	tris []ScreenTriangle
}

func NewFrame() *Frame {
	return &Frame{tris: make([]ScreenTriangle, 0, 4096)}
}

// Reset clears the frame for reuse without releasing its buffer.
func (f *Frame) Reset() {
	f.tris = f.tris[:0]
}

func (f *Frame) Add(t ScreenTriangle) {
	f.tris = append(f.tris, t)
}

// Sort orders triangles by descending depth, farthest first, so that
// later draws overpaint earlier ones. Equal depths keep submission
// order.
func (f *Frame) Sort() {
	sort.SliceStable(f.tris, func(i, j int) bool {
		return f.tris[i].Depth > f.tris[j].Depth
	})
}

// Triangles returns the collected triangles in their current order.
func (f *Frame) Triangles() []ScreenTriangle {
	return f.tris
}

// Len returns the number of triangles collected this frame.
func (f *Frame) Len() int { return len(f.tris) }
