package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"sort"

	xdraw "golang.org/x/image/draw"

	"castle64/engine/level"
	"castle64/engine/render3d"
)

// levelmap renders a top-down orthographic overview of the castle
// level and writes it as a PNG. Useful for eyeballing layout changes
// without launching the game.

const (
	worldExtent = 1000.0 // world units from center to image edge
	rasterSize  = 2048   // internal raster, scaled down for output
	outputSize  = 512
)

func main() {
	out := "levelmap.png"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	castle := level.BuildCastle()

	// Paint low geometry first so roofs and platforms end up on top.
	tris := make([]render3d.Triangle, len(castle.Mesh.Triangles))
	copy(tris, castle.Mesh.Triangles)
	sort.SliceStable(tris, func(i, j int) bool {
		return maxY(tris[i]) < maxY(tris[j])
	})

	img := image.NewRGBA(image.Rect(0, 0, rasterSize, rasterSize))
	for _, t := range tris {
		c := color.RGBA{
			uint8(t.Color.R * 255),
			uint8(t.Color.G * 255),
			uint8(t.Color.B * 255),
			255,
		}
		fillTriangle(img,
			toRaster(t.V1.X), toRaster(t.V1.Z),
			toRaster(t.V2.X), toRaster(t.V2.Z),
			toRaster(t.V3.X), toRaster(t.V3.Z),
			c)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, outputSize, outputSize))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Over, nil)

	f, err := os.Create(out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, scaled); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s: %d triangles", out, len(tris))
}

func maxY(t render3d.Triangle) float64 {
	m := t.V1.Y
	if t.V2.Y > m {
		m = t.V2.Y
	}
	if t.V3.Y > m {
		m = t.V3.Y
	}
	return m
}

// toRaster maps a world XZ coordinate to raster pixels.
func toRaster(v float64) float64 {
	return (v + worldExtent) / (2 * worldExtent) * rasterSize
}

// fillTriangle rasterizes a 2D triangle with an edge-function test
// over its bounding box.
func fillTriangle(img *image.RGBA, x1, y1, x2, y2, x3, y3 float64, c color.RGBA) {
	minX := int(min3(x1, x2, x3))
	maxX := int(max3(x1, x2, x3)) + 1
	minY := int(min3(y1, y2, y3))
	maxY := int(max3(y1, y2, y3)) + 1

	b := img.Bounds()
	if minX < b.Min.X {
		minX = b.Min.X
	}
	if minY < b.Min.Y {
		minY = b.Min.Y
	}
	if maxX > b.Max.X {
		maxX = b.Max.X
	}
	if maxY > b.Max.Y {
		maxY = b.Max.Y
	}

	area := (x2-x1)*(y3-y1) - (x3-x1)*(y2-y1)
	if area == 0 {
		return
	}

	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			fx, fy := float64(px)+0.5, float64(py)+0.5
			w1 := (x2-x1)*(fy-y1) - (fx-x1)*(y2-y1)
			w2 := (x3-x2)*(fy-y2) - (fx-x2)*(y3-y2)
			w3 := (x1-x3)*(fy-y3) - (fx-x3)*(y1-y3)
			if area > 0 {
				if w1 >= 0 && w2 >= 0 && w3 >= 0 {
					img.SetRGBA(px, py, c)
				}
			} else if w1 <= 0 && w2 <= 0 && w3 <= 0 {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

func min3(a, b, c float64) float64 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float64) float64 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
