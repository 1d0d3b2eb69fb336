package level

import "castle64/engine/render3d"

// Castle palette.
var (
	White       = render3d.Color3{R: 1, G: 1, B: 1}
	Yellow      = render3d.Color3{R: 1, G: 0.84, B: 0}
	Gold        = render3d.Color3{R: 0.85, G: 0.65, B: 0.13}
	CastleStone = render3d.Color3{R: 0.86, G: 0.84, B: 0.8}
	CastleDark  = render3d.Color3{R: 0.63, G: 0.61, B: 0.57}
	CastleRoof  = render3d.Color3{R: 0.75, G: 0.2, B: 0.2}
	TowerWall   = render3d.Color3{R: 0.9, G: 0.86, B: 0.82}
	GrassGreen  = render3d.Color3{R: 0.24, G: 0.71, B: 0.24}
	DarkGreen   = render3d.Color3{R: 0.12, G: 0.39, B: 0.12}
	WaterBlue   = render3d.Color3{R: 0.24, G: 0.47, B: 0.94}
	Cobble      = render3d.Color3{R: 0.59, G: 0.57, B: 0.53}
	WoodBrown   = render3d.Color3{R: 0.47, G: 0.31, B: 0.16}
	WindowBlue  = render3d.Color3{R: 0.39, G: 0.71, B: 1}
	WindowPink  = render3d.Color3{R: 0.94, G: 0.71, B: 0.86}
	FlagRed     = render3d.Color3{R: 0.86, G: 0.12, B: 0.16}
)

// Platform is an axis-aligned slab the character can stand on. Y is
// the walkable top surface.
type Platform struct {
	X, Y, Z float64
	W, D    float64
}

// Level is the static castle scene: one immutable triangle list built
// at startup, plus the platform slabs used for landing checks.
type Level struct {
	Mesh      *render3d.Mesh
	Platforms []Platform
}

// landingWindow is the vertical range around a platform top within
// which the character snaps onto it.
const landingWindow = 20.0

// FloorHeight returns the walkable height under (x, z) for a character
// at height y: the top of a platform when the character is inside its
// footprint and near its top, otherwise the ground plane.
func (l *Level) FloorHeight(x, z, y float64) float64 {
	floor := 0.0
	for _, p := range l.Platforms {
		if x > p.X-p.W/2 && x < p.X+p.W/2 &&
			z > p.Z-p.D/2 && z < p.Z+p.D/2 &&
			y >= p.Y-landingWindow && y <= p.Y+landingWindow {
			floor = p.Y
		}
	}
	return floor
}

// BuildCastle assembles the whole level. The layout is data: literal,
// hand-tuned coordinates, executed once. The result is read-only for
// the rest of the process.
func BuildCastle() *Level {
	l := &Level{Mesh: render3d.NewMesh()}
	m := l.Mesh

	// Grounds
	m.Append(render3d.Box(0, -12, 0, 1800, 12, 1800, GrassGreen, DarkGreen, DarkGreen))
	m.Append(render3d.Box(0, -11, 120, 180, 3, 920, Cobble, Cobble, Cobble)) // path
	m.Append(render3d.Cylinder(0, -11, 80, 280, 3, 14, Cobble, Cobble))     // courtyard

	// Moat
	m.Append(render3d.Box(0, -9, -140, 820, 9, 180, WaterBlue, WaterBlue, WaterBlue))
	m.Append(render3d.Box(-410, -9, 180, 40, 9, 720, WaterBlue, WaterBlue, WaterBlue))
	m.Append(render3d.Box(410, -9, 180, 40, 9, 720, WaterBlue, WaterBlue, WaterBlue))

	// Bridge with side rails
	m.Append(render3d.Box(0, -8, -80, 110, 6, 180, WoodBrown, WoodBrown, WoodBrown))
	m.Append(render3d.Box(-48, -3, -80, 8, 12, 160, WoodBrown, WoodBrown, WoodBrown))
	m.Append(render3d.Box(48, -3, -80, 8, 12, 160, WoodBrown, WoodBrown, WoodBrown))

	// Front stairs
	for step := 0; step < 6; step++ {
		w := 92 - float64(step)*8
		m.Append(render3d.Box(0, -8+float64(step)*5, -120-float64(step)*12, w, 5, 40, CastleStone, CastleStone, CastleDark))
	}

	// Perimeter walls
	const wallH = 92.0
	m.Append(render3d.Box(-310, 0, -170, 260, wallH, 38, CastleStone, CastleStone, CastleDark))
	m.Append(render3d.Box(310, 0, -170, 260, wallH, 38, CastleStone, CastleStone, CastleDark))
	m.Append(render3d.Box(-420, 0, 160, 38, wallH, 720, CastleStone, CastleDark, CastleStone))
	m.Append(render3d.Box(420, 0, 160, 38, wallH, 720, CastleStone, CastleDark, CastleStone))
	m.Append(Battlements(-310, wallH, -170, 240, false, CastleStone, 5))
	m.Append(Battlements(310, wallH, -170, 240, false, CastleStone, 5))
	m.Append(Battlements(-420, wallH, 160, 700, true, CastleStone, 9))
	m.Append(Battlements(420, wallH, 160, 700, true, CastleStone, 9))

	// Corner towers
	for _, c := range [][2]float64{{-380, -160}, {380, -160}, {-380, 520}, {380, 520}} {
		m.Append(Tower(c[0], 0, c[1], 58, 108, 68, TowerWall, CastleRoof))
	}

	// Main keep with side wings
	const keepZ = 210.0
	m.Append(render3d.Box(0, 0, keepZ, 520, 145, 340, CastleStone, CastleStone, CastleStone))
	m.Append(render3d.Box(-240, 0, keepZ-80, 120, 95, 180, CastleStone, CastleStone, CastleDark))
	m.Append(render3d.Box(240, 0, keepZ-80, 120, 95, 180, CastleStone, CastleStone, CastleDark))

	// Central tower
	m.Append(render3d.Cylinder(0, 0, keepZ+25, 92, 310, 14, TowerWall, TowerWall))
	m.Append(render3d.Cone(0, 310, keepZ+25, 108, 135, 14, CastleRoof))
	m.Append(Flag(0, 310+135+8, keepZ+25))

	// Front window
	m.Append(render3d.Box(0, 165, keepZ-165, 78, 92, 14, WindowPink, WindowBlue, WindowBlue))

	// Inner towers
	for _, c := range [][2]float64{{-235, keepZ - 155}, {235, keepZ - 155}, {-235, keepZ + 155}, {235, keepZ + 155}} {
		m.Append(Tower(c[0], 0, c[1], 62, 195, 85, TowerWall, CastleRoof))
	}

	// Trees
	for _, c := range [][2]float64{{-210, 90}, {210, 90}, {-260, -70}, {260, -70}, {-480, 300}, {480, 300}} {
		m.Append(Tree(c[0], 0, c[1]))
	}

	// Floating platforms, jump targets
	for _, p := range [][3]float64{{0, 135, -35}, {170, 95, -120}, {-170, 95, -120}} {
		m.Append(render3d.Box(p[0], p[1], p[2], 42, 42, 42, Yellow, Gold, Gold))
		l.Platforms = append(l.Platforms, Platform{X: p[0], Y: p[1] + 42, Z: p[2], W: 42, D: 42})
	}

	return l
}
