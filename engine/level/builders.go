package level

import (
	"math"

	"castle64/engine/render3d"
)

// Composite builders. These add no geometry algorithm of their own;
// they lay out the render3d primitives with derived coordinates.

// Flag builds a white pole box topped with a red pennant triangle.
func Flag(cx, by, cz float64) *render3d.Mesh {
	m := render3d.Box(cx, by, cz, 3, 35, 3, White, White, White)
	m.Add(
		render3d.V3(cx, by+28, cz+2),
		render3d.V3(cx+22, by+24, cz+2),
		render3d.V3(cx, by+20, cz+2),
		FlagRed,
	)
	return m
}

// Battlements builds a row of count evenly spaced merlon boxes
// spanning length, centered on (cx, by, cz). The row runs along Z when
// alongZ is set, along X otherwise.
func Battlements(cx, by, cz, length float64, alongZ bool, top render3d.Color3, count int) *render3d.Mesh {
	m := render3d.NewMesh()
	merlonW := length / float64(count*2-1)
	const h, d = 22.0, 16.0

	start := -length/2 + merlonW/2
	for i := 0; i < count; i++ {
		pos := start + float64(i)*merlonW*2
		if alongZ {
			m.Append(render3d.Box(cx, by, cz+pos, d, h, merlonW, top, CastleDark, CastleDark))
		} else {
			m.Append(render3d.Box(cx+pos, by, cz, merlonW, h, d, top, CastleDark, CastleDark))
		}
	}
	return m
}

// Tower builds a low-poly round tower: cylinder body, cone roof with a
// flag on top, and a spiral of inset window boxes.
func Tower(cx, by, cz, radius, height, roofHeight float64, wall, roof render3d.Color3) *render3d.Mesh {
	const segs = 8
	m := render3d.Cylinder(cx, by, cz, radius, height, segs, wall, wall)
	m.Append(render3d.Cone(cx, by+height, cz, radius*1.25, roofHeight, segs, roof))
	m.Append(Flag(cx, by+height+roofHeight+5, cz))
	for i := 0; i < 6; i++ {
		ang := float64(i) * (math.Pi / 3)
		wx := cx + math.Cos(ang)*radius*0.85
		wz := cz + math.Sin(ang)*radius*0.85
		wy := by + height*0.4 + float64(i)*18
		m.Append(render3d.Box(wx, wy, wz, 14, 18, 14, WindowBlue, WindowBlue, WindowBlue))
	}
	return m
}

// Tree builds a trunk cylinder with a cone canopy; 4 segments keep the
// silhouette chunky and the triangle count down.
func Tree(cx, by, cz float64) *render3d.Mesh {
	m := render3d.Cylinder(cx, by, cz, 12, 34, 4, WoodBrown, WoodBrown)
	m.Append(render3d.Cone(cx, by+34, cz, 46, 68, 4, DarkGreen))
	return m
}
