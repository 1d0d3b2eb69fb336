package render3d

import (
	"math"
	"testing"
)

func TestProjectTriangleNearPlaneRejection(t *testing.T) {
	vp := NewViewport(400, 300)
	cam := V3(0, 0, 0)

	tests := []struct {
		name string
		tri  Triangle
		want bool
	}{
		{
			"all behind camera",
			Triangle{V1: V3(0, 0, -10), V2: V3(10, 0, -10), V3: V3(0, 10, -10)},
			false,
		},
		{
			"all before near plane",
			Triangle{V1: V3(0, 0, 1), V2: V3(10, 0, 2), V3: V3(0, 10, 3)},
			false,
		},
		{
			"straddling is kept",
			Triangle{V1: V3(0, 0, -10), V2: V3(10, 0, -10), V3: V3(0, 10, 50)},
			true,
		},
		{
			"fully in front",
			Triangle{V1: V3(0, 0, 100), V2: V3(10, 0, 100), V3: V3(0, 10, 100)},
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := ProjectTriangle(tc.tri, cam, 1, 0, vp)
			if ok != tc.want {
				t.Errorf("projected = %v, want %v", ok, tc.want)
			}
		})
	}
}

func TestProjectTriangleDepthAndPoints(t *testing.T) {
	vp := NewViewport(400, 300)
	cam := V3(0, 0, 0)

	tri := Triangle{V1: V3(0, 0, 10), V2: V3(5, 0, 20), V3: V3(0, 5, 30)}
	st, ok := ProjectTriangle(tri, cam, 1, 0, vp)
	if !ok {
		t.Fatal("triangle rejected")
	}

	// Mean of the camera-space depths.
	if math.Abs(st.Depth-20) > 1e-9 {
		t.Errorf("depth = %v, want 20", st.Depth)
	}

	// Centered vertex projects to the viewport center.
	if math.Abs(st.X[0]-200) > 1e-9 || math.Abs(st.Y[0]-150) > 1e-9 {
		t.Errorf("vertex 0 = (%v, %v), want (200, 150)", st.X[0], st.Y[0])
	}

	for i := 0; i < 3; i++ {
		if math.IsNaN(st.X[i]) || math.IsInf(st.X[i], 0) ||
			math.IsNaN(st.Y[i]) || math.IsInf(st.Y[i], 0) {
			t.Errorf("vertex %d not finite: (%v, %v)", i, st.X[i], st.Y[i])
		}
	}
}

func TestProjectTriangleDepthClamp(t *testing.T) {
	vp := NewViewport(400, 300)
	cam := V3(0, 0, 0)

	// One vertex slightly behind the camera: its depth clamps to the
	// minimum, and the mean uses the clamped values.
	tri := Triangle{V1: V3(0, 0, -2), V2: V3(0, 0, 10), V3: V3(0, 0, 100)}
	st, ok := ProjectTriangle(tri, cam, 1, 0, vp)
	if !ok {
		t.Fatal("triangle rejected")
	}
	want := (1.0 + 10.0 + 100.0) / 3
	if math.Abs(st.Depth-want) > 1e-9 {
		t.Errorf("depth = %v, want %v", st.Depth, want)
	}
}

func TestProjectTriangleScreenBoundsRejection(t *testing.T) {
	vp := NewViewport(400, 300)
	cam := V3(0, 0, 0)

	tests := []struct {
		name string
		tri  Triangle
	}{
		{"far left", Triangle{V1: V3(-5000, 0, 10), V2: V3(-5000, 5, 10), V3: V3(-4900, 0, 10)}},
		{"far right", Triangle{V1: V3(5000, 0, 10), V2: V3(5000, 5, 10), V3: V3(4900, 0, 10)}},
		{"far above", Triangle{V1: V3(0, 5000, 10), V2: V3(5, 5000, 10), V3: V3(0, 4900, 10)}},
		{"far below", Triangle{V1: V3(0, -5000, 10), V2: V3(5, -5000, 10), V3: V3(0, -4900, 10)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := ProjectTriangle(tc.tri, cam, 1, 0, vp); ok {
				t.Error("triangle beyond loose bounds was not rejected")
			}
		})
	}
}

func TestProjectTriangleCameraYaw(t *testing.T) {
	vp := NewViewport(400, 300)

	// Camera looking down +X (yaw 90 degrees): a point on +X projects
	// to the viewport center.
	yaw := math.Pi / 2
	tri := Triangle{V1: V3(100, 0, 0), V2: V3(100, 5, 0), V3: V3(100, 0, 5)}
	st, ok := ProjectTriangle(tri, V3(0, 0, 0), math.Cos(yaw), math.Sin(yaw), vp)
	if !ok {
		t.Fatal("triangle rejected")
	}
	if math.Abs(st.X[0]-200) > 1e-6 {
		t.Errorf("vertex 0 x = %v, want 200", st.X[0])
	}
	if math.Abs(st.Depth-100) > 1e-6 {
		t.Errorf("depth = %v, want 100", st.Depth)
	}
}
