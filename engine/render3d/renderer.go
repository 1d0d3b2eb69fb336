package render3d

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer projects world-space meshes through the painter pipeline
// and hands the sorted result to ebiten's triangle rasterizer.
type Renderer struct {
	Viewport Viewport

	frame    *Frame
	whiteImg *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderer(w, h int) *Renderer {
	r := &Renderer{
		Viewport: NewViewport(w, h),
		frame:    NewFrame(),
	}

	// 1x1-ish white image for colored triangle rendering
	r.whiteImg = ebiten.NewImage(4, 4)
	r.whiteImg.Fill(color.White)

	return r
}

// DrawSky fills the target with a banded sky gradient above a horizon
// line derived from camera height, and ground color below it.
func (r *Renderer) DrawSky(screen *ebiten.Image, camY float64, ground Color3) {
	w := float32(r.Viewport.W)
	h := r.Viewport.H

	horizon := h/2 + (camY-120)*0.5
	if horizon < 0 {
		horizon = 0
	}
	if horizon > h {
		horizon = h
	}

	bands := 24
	bandH := horizon / float64(bands)
	for i := 0; i < bands; i++ {
		t := float64(i) / float64(bands)
		// Deeper blue up top, hazier toward the horizon
		cr := uint8(70 + t*70)
		cg := uint8(140 + t*60)
		cb := uint8(235 + t*20)
		by := float64(i) * bandH
		vector.DrawFilledRect(screen, 0, float32(by), w, float32(bandH)+1, color.RGBA{cr, cg, cb, 255}, false)
	}

	gc := color.RGBA{uint8(ground.R * 255), uint8(ground.G * 255), uint8(ground.B * 255), 255}
	vector.DrawFilledRect(screen, 0, float32(horizon), w, float32(h-horizon), gc, false)
}

// DrawScene runs the full per-frame pipeline: project every triangle
// of every mesh, depth-sort the survivors, shade by depth, and draw
// them back to front in one batch. Returns drawn and total triangle
// counts for the HUD.
func (r *Renderer) DrawScene(screen *ebiten.Image, cam *ChaseCamera, meshes ...*Mesh) (drawn, total int) {
	cosYaw := math.Cos(cam.Yaw)
	sinYaw := math.Sin(cam.Yaw)

	r.frame.Reset()
	for _, m := range meshes {
		total += len(m.Triangles)
		for _, tri := range m.Triangles {
			if st, ok := ProjectTriangle(tri, cam.Pos, cosYaw, sinYaw, r.Viewport); ok {
				r.frame.Add(st)
			}
		}
	}
	r.frame.Sort()

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]

	for _, st := range r.frame.Triangles() {
		c := st.Color.Scale(DepthShade(st.Depth))
		base := uint16(len(r.vertices))
		for i := 0; i < 3; i++ {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   float32(st.X[i]),
				DstY:   float32(st.Y[i]),
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(c.R),
				ColorG: float32(c.G),
				ColorB: float32(c.B),
				ColorA: 1,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2)

		// Flush if approaching the uint16 index limit. Order within
		// and across flushes stays back-to-front.
		if len(r.vertices) >= 65000 {
			screen.DrawTriangles(r.vertices, r.indices, r.whiteImg, nil)
			r.vertices = r.vertices[:0]
			r.indices = r.indices[:0]
		}
	}

	if len(r.vertices) > 0 {
		screen.DrawTriangles(r.vertices, r.indices, r.whiteImg, nil)
	}

	return r.frame.Len(), total
}
