package render3d

import "math"

// Triangle is a flat-colored, unlit triangle. Winding is not enforced
// and there is no backface culling; visibility is resolved by the
// painter sort alone.
type Triangle struct {
	V1, V2, V3 Vec3
	Color      Color3
}

// Mesh is a list of triangles. Builders return a freshly owned mesh;
// callers compose scenes by appending meshes together.
type Mesh struct {
	Triangles []Triangle
}

func NewMesh() *Mesh { return &Mesh{} }

func (m *Mesh) Add(v1, v2, v3 Vec3, c Color3) {
	m.Triangles = append(m.Triangles, Triangle{V1: v1, V2: v2, V3: v3, Color: c})
}

func (m *Mesh) Append(other *Mesh) {
	m.Triangles = append(m.Triangles, other.Triangles...)
}

// Transform returns a new mesh with every vertex transformed by mat.
func (m *Mesh) Transform(mat Mat4) *Mesh {
	out := &Mesh{Triangles: make([]Triangle, len(m.Triangles))}
	for i, tri := range m.Triangles {
		out.Triangles[i] = Triangle{
			V1:    mat.TransformPoint(tri.V1),
			V2:    mat.TransformPoint(tri.V2),
			V3:    mat.TransformPoint(tri.V3),
			Color: tri.Color,
		}
	}
	return out
}

// --- Primitive generators ---

// Box emits the top, front, back, left and right faces of a box
// anchored at its bottom center (cx, by, cz). The bottom face is
// omitted: the way boxes are composed it is never visible.
func Box(cx, by, cz, w, h, d float64, top, front, side Color3) *Mesh {
	m := NewMesh()
	hw, hd := w*0.5, d*0.5
	x0, x1 := cx-hw, cx+hw
	y0, y1 := by, by+h
	z0, z1 := cz-hd, cz+hd

	blf := V3(x0, y0, z0)
	brf := V3(x1, y0, z0)
	tlf := V3(x0, y1, z0)
	trf := V3(x1, y1, z0)
	blb := V3(x0, y0, z1)
	brb := V3(x1, y0, z1)
	tlb := V3(x0, y1, z1)
	trb := V3(x1, y1, z1)

	// Top
	m.Add(tlf, trf, trb, top)
	m.Add(tlf, trb, tlb, top)
	// Front
	m.Add(blf, brf, trf, front)
	m.Add(blf, trf, tlf, front)
	// Back
	m.Add(brb, blb, tlb, front)
	m.Add(brb, tlb, trb, front)
	// Left
	m.Add(blb, blf, tlf, side)
	m.Add(blb, tlf, tlb, side)
	// Right
	m.Add(brf, brb, trb, side)
	m.Add(brf, trb, trf, side)
	return m
}

// Cylinder builds a closed top fan and the side wall of an upright
// cylinder based at (cx, by, cz). No bottom cap. Segment count below 3
// produces degenerate geometry; callers supply sane values.
func Cylinder(cx, by, cz, radius, height float64, segments int, top, side Color3) *Mesh {
	m := NewMesh()
	step := 2 * math.Pi / float64(segments)
	topY := by + height

	ring := make([][2]float64, segments+1)
	for i := range ring {
		a := float64(i) * step
		ring[i] = [2]float64{math.Cos(a) * radius, math.Sin(a) * radius}
	}

	center := V3(cx, topY, cz)
	for i := 0; i < segments; i++ {
		x0, z0 := ring[i][0], ring[i][1]
		x1, z1 := ring[i+1][0], ring[i+1][1]

		t0 := V3(cx+x0, topY, cz+z0)
		t1 := V3(cx+x1, topY, cz+z1)
		b0 := V3(cx+x0, by, cz+z0)
		b1 := V3(cx+x1, by, cz+z1)

		m.Add(center, t1, t0, top)
		m.Add(t0, t1, b1, side)
		m.Add(t0, b1, b0, side)
	}
	return m
}

// Cone builds the side fan of a cone from a base ring at (cx, by, cz)
// to a single apex. No base cap.
func Cone(cx, by, cz, radius, height float64, segments int, c Color3) *Mesh {
	m := NewMesh()
	step := 2 * math.Pi / float64(segments)
	apex := V3(cx, by+height, cz)

	ring := make([][2]float64, segments+1)
	for i := range ring {
		a := float64(i) * step
		ring[i] = [2]float64{math.Cos(a) * radius, math.Sin(a) * radius}
	}

	for i := 0; i < segments; i++ {
		b0 := V3(cx+ring[i][0], by, cz+ring[i][1])
		b1 := V3(cx+ring[i+1][0], by, cz+ring[i+1][1])
		m.Add(b0, b1, apex, c)
	}
	return m
}
