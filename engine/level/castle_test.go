package level

import (
	"testing"
)

func TestBuildCastleDeterministic(t *testing.T) {
	a := BuildCastle()
	b := BuildCastle()
	if len(a.Mesh.Triangles) != len(b.Mesh.Triangles) {
		t.Fatalf("triangle counts differ: %d vs %d", len(a.Mesh.Triangles), len(b.Mesh.Triangles))
	}
	for i := range a.Mesh.Triangles {
		if a.Mesh.Triangles[i] != b.Mesh.Triangles[i] {
			t.Fatalf("triangle %d differs between builds", i)
		}
	}
}

func TestBuildCastleGeometryFinite(t *testing.T) {
	l := BuildCastle()
	if len(l.Mesh.Triangles) == 0 {
		t.Fatal("empty castle mesh")
	}
	for i, tri := range l.Mesh.Triangles {
		if !tri.V1.IsFinite() || !tri.V2.IsFinite() || !tri.V3.IsFinite() {
			t.Fatalf("triangle %d has non-finite vertex: %+v", i, tri)
		}
	}
}

func TestBuildCastlePlatforms(t *testing.T) {
	l := BuildCastle()
	if len(l.Platforms) != 3 {
		t.Fatalf("platform count = %d, want 3", len(l.Platforms))
	}
	// Tops sit one slab height above the literal base coordinates.
	want := []Platform{
		{X: 0, Y: 177, Z: -35, W: 42, D: 42},
		{X: 170, Y: 137, Z: -120, W: 42, D: 42},
		{X: -170, Y: 137, Z: -120, W: 42, D: 42},
	}
	for i, p := range l.Platforms {
		if p != want[i] {
			t.Errorf("platform %d = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestFloorHeight(t *testing.T) {
	l := &Level{Platforms: []Platform{{X: 100, Y: 50, Z: 0, W: 40, D: 40}}}

	tests := []struct {
		name    string
		x, z, y float64
		want    float64
	}{
		{"on platform near top", 100, 0, 55, 50},
		{"bottom of landing window", 100, 0, 30, 50},
		{"top of landing window", 100, 0, 70, 50},
		{"above landing window", 100, 0, 71, 0},
		{"below landing window", 100, 0, 29, 0},
		{"outside footprint", 140, 0, 50, 0},
		{"open ground", 0, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.FloorHeight(tt.x, tt.z, tt.y); got != tt.want {
				t.Errorf("FloorHeight(%v, %v, %v) = %v, want %v", tt.x, tt.z, tt.y, got, tt.want)
			}
		})
	}
}
