package render3d

const (
	// FOVScale converts camera-space units to pixels at depth 1.
	FOVScale = 300.0

	// nearPlane is the camera-space depth below which a vertex counts
	// as behind the camera.
	nearPlane = 5.0

	// minDepth clamps the perspective divisor for vertices that
	// straddle the near plane. Such triangles stretch instead of being
	// clipped; accepted behavior.
	minDepth = 1.0
)

// Viewport carries the render-target dimensions the projection needs.
type Viewport struct {
	W, H         float64
	HalfW, HalfH float64
}

func NewViewport(w, h int) Viewport {
	return Viewport{
		W:     float64(w),
		H:     float64(h),
		HalfW: float64(w) / 2,
		HalfH: float64(h) / 2,
	}
}

// ScreenTriangle is a projected triangle ready for the rasterizer,
// valid for the frame that produced it.
type ScreenTriangle struct {
	Depth float64 // mean camera-space depth of the three vertices
	X     [3]float64
	Y     [3]float64
	Color Color3
}

// ProjectTriangle transforms one world-space triangle into screen
// space for a camera at cam with precomputed cos/sin of its yaw.
// It returns false when the triangle is rejected: either every vertex
// is in front of the near plane, or every projected point lies beyond
// the loose screen bounds on the same side. The bounds test is
// deliberately over-inclusive; cheap rejection beats exact clipping
// here.
func ProjectTriangle(tri Triangle, cam Vec3, cosYaw, sinYaw float64, vp Viewport) (ScreenTriangle, bool) {
	// Camera-relative translation.
	x1, y1, z1 := tri.V1.X-cam.X, tri.V1.Y-cam.Y, tri.V1.Z-cam.Z
	x2, y2, z2 := tri.V2.X-cam.X, tri.V2.Y-cam.Y, tri.V2.Z-cam.Z
	x3, y3, z3 := tri.V3.X-cam.X, tri.V3.Y-cam.Y, tri.V3.Z-cam.Z

	// Yaw-only rotation into camera space. The camera never tilts.
	rx1, rz1 := x1*cosYaw-z1*sinYaw, x1*sinYaw+z1*cosYaw
	rx2, rz2 := x2*cosYaw-z2*sinYaw, x2*sinYaw+z2*cosYaw
	rx3, rz3 := x3*cosYaw-z3*sinYaw, x3*sinYaw+z3*cosYaw

	// Reject only when all three vertices are behind the near plane.
	if rz1 < nearPlane && rz2 < nearPlane && rz3 < nearPlane {
		return ScreenTriangle{}, false
	}

	if rz1 < minDepth {
		rz1 = minDepth
	}
	if rz2 < minDepth {
		rz2 = minDepth
	}
	if rz3 < minDepth {
		rz3 = minDepth
	}

	// Perspective divide. Screen Y grows downward, so world Y negates.
	sx1 := rx1*FOVScale/rz1 + vp.HalfW
	sy1 := -y1*FOVScale/rz1 + vp.HalfH
	sx2 := rx2*FOVScale/rz2 + vp.HalfW
	sy2 := -y2*FOVScale/rz2 + vp.HalfH
	sx3 := rx3*FOVScale/rz3 + vp.HalfW
	sy3 := -y3*FOVScale/rz3 + vp.HalfH

	// Coarse screen-bounds rejection.
	if (sx1 < -vp.W && sx2 < -vp.W && sx3 < -vp.W) ||
		(sx1 > vp.W*2 && sx2 > vp.W*2 && sx3 > vp.W*2) ||
		(sy1 < -vp.H && sy2 < -vp.H && sy3 < -vp.H) ||
		(sy1 > vp.H*2 && sy2 > vp.H*2 && sy3 > vp.H*2) {
		return ScreenTriangle{}, false
	}

	return ScreenTriangle{
		Depth: (rz1 + rz2 + rz3) / 3,
		X:     [3]float64{sx1, sx2, sx3},
		Y:     [3]float64{sy1, sy2, sy3},
		Color: tri.Color,
	}, true
}
