package player

import (
	"math"

	"castle64/engine/render3d"
)

// Character palette.
var (
	shirtRed     = render3d.Color3{R: 0.86, G: 0.08, B: 0.24}
	overallsBlue = render3d.Color3{R: 0, G: 0, B: 0.78}
	skinTone     = render3d.Color3{R: 1, G: 0.78, B: 0.67}
	hairBrown    = render3d.Color3{R: 0.27, G: 0.16, B: 0.04}
	bootBrown    = render3d.Color3{R: 0.47, G: 0.31, B: 0.16}
	gloveWhite   = render3d.Color3{R: 1, G: 1, B: 1}
)

// BuildMesh generates the articulated character mesh for the current
// position, heading and walk phase. Regenerated every frame and
// discarded after rendering.
func (p *Player) BuildMesh() *render3d.Mesh {
	legSwing := math.Sin(p.WalkPhase) * 4
	armSwing := math.Cos(p.WalkPhase) * 4

	m := render3d.NewMesh()
	part := func(ox, oy, oz, w, h, d float64, c render3d.Color3) {
		m.Append(render3d.Box(ox, oy, oz, w, h, d, c, c, c))
	}

	// Feet
	part(-4, 0, legSwing, 7, 5, 8, bootBrown)
	part(4, 0, -legSwing, 7, 5, 8, bootBrown)

	// Legs and hips
	part(-4, 5, legSwing*0.5, 6, 8, 6, overallsBlue)
	part(4, 5, -legSwing*0.5, 6, 8, 6, overallsBlue)
	part(0, 12, 0, 14, 6, 8, overallsBlue)

	// Torso
	part(0, 18, 0, 13, 11, 7, shirtRed)

	// Arms and hands
	part(-9, 18, -armSwing, 4, 10, 4, shirtRed)
	part(9, 18, armSwing, 4, 10, 4, shirtRed)
	part(-9, 14, -armSwing-1, 5, 5, 5, gloveWhite)
	part(9, 14, armSwing-1, 5, 5, 5, gloveWhite)

	// Head
	part(0, 29, 0, 10, 9, 9, skinTone)
	part(0, 31, -5, 3, 3, 3, skinTone) // nose
	part(0, 33, 1, 11, 4, 10, hairBrown)

	// Hat with brim
	part(0, 36, 0, 12, 3, 11, shirtRed)
	part(0, 36, -6, 12, 2, 4, shirtRed)

	place := render3d.Mat4Translate(p.Pos.X, p.Pos.Y, p.Pos.Z).Mul(render3d.Mat4RotateY(p.Yaw))
	return m.Transform(place)
}
