package level

import (
	"math"
	"testing"
)

func TestBattlementsCountAndSpan(t *testing.T) {
	const length = 240.0
	const count = 5
	m := Battlements(0, 92, 0, length, false, CastleStone, count)

	// Each merlon is a box of 10 triangles.
	if len(m.Triangles) != count*10 {
		t.Fatalf("triangle count = %d, want %d", len(m.Triangles), count*10)
	}

	// The row stays within the requested span on X and centered on Z.
	for _, tri := range m.Triangles {
		for _, v := range []struct{ X, Z float64 }{
			{tri.V1.X, tri.V1.Z}, {tri.V2.X, tri.V2.Z}, {tri.V3.X, tri.V3.Z},
		} {
			if v.X < -length/2-1e-9 || v.X > length/2+1e-9 {
				t.Fatalf("merlon vertex x = %v outside span", v.X)
			}
			if math.Abs(v.Z) > 8+1e-9 {
				t.Fatalf("merlon vertex z = %v, want within half depth", v.Z)
			}
		}
	}
}

func TestBattlementsAlongZ(t *testing.T) {
	m := Battlements(0, 92, 0, 240, true, CastleStone, 5)
	for _, tri := range m.Triangles {
		if math.Abs(tri.V1.X) > 8+1e-9 {
			t.Fatalf("alongZ merlon vertex x = %v, want within half depth", tri.V1.X)
		}
	}
}

func TestTowerComposition(t *testing.T) {
	const segs = 8
	m := Tower(0, 0, 0, 58, 108, 68, TowerWall, CastleRoof)

	// Cylinder 3*segs, cone segs, flag 11, six window boxes of 10 each.
	want := segs*3 + segs + 11 + 6*10
	if len(m.Triangles) != want {
		t.Fatalf("triangle count = %d, want %d", len(m.Triangles), want)
	}

	// Roof apex clears body plus roof.
	maxY := 0.0
	for _, tri := range m.Triangles {
		for _, y := range []float64{tri.V1.Y, tri.V2.Y, tri.V3.Y} {
			if y > maxY {
				maxY = y
			}
		}
	}
	// Flag pole top: body + roof + 5 offset + 35 pole.
	if math.Abs(maxY-(108+68+5+35)) > 1e-9 {
		t.Errorf("tower max height = %v", maxY)
	}
}

func TestFlagShape(t *testing.T) {
	m := Flag(10, 20, 30)
	// Pole box plus one pennant triangle.
	if len(m.Triangles) != 11 {
		t.Fatalf("triangle count = %d, want 11", len(m.Triangles))
	}
	pennant := m.Triangles[10]
	if pennant.Color != FlagRed {
		t.Errorf("pennant color = %+v", pennant.Color)
	}
	if pennant.V2.X != 10+22 {
		t.Errorf("pennant tip x = %v, want %v", pennant.V2.X, 10+22)
	}
}

func TestTreeShape(t *testing.T) {
	m := Tree(0, 0, 0)
	// 4-segment trunk cylinder and 4-segment canopy cone.
	if len(m.Triangles) != 4*3+4 {
		t.Fatalf("triangle count = %d, want 16", len(m.Triangles))
	}
	canopy := 0
	for _, tri := range m.Triangles {
		if tri.Color == DarkGreen {
			canopy++
		}
	}
	if canopy != 4 {
		t.Errorf("canopy triangles = %d, want 4", canopy)
	}
}
