package main

import (
	"bytes"
	"encoding/binary"
	"log"
	"os"

	"github.com/qmuntal/gltf"

	"castle64/engine/level"
)

// export_level writes the static castle mesh as a binary glTF so the
// layout can be inspected in external model viewers. Vertex colors
// carry the flat triangle tints.

func main() {
	out := "castle.glb"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	castle := level.BuildCastle()
	tris := castle.Mesh.Triangles

	positions := make([]float32, 0, len(tris)*9)
	colors := make([]float32, 0, len(tris)*9)
	indices := make([]uint32, 0, len(tris)*3)

	minP := [3]float32{}
	maxP := [3]float32{}
	first := true

	push := func(x, y, z float64, c [3]float64) {
		fx, fy, fz := float32(x), float32(y), float32(z)
		if first {
			minP = [3]float32{fx, fy, fz}
			maxP = minP
			first = false
		}
		for i, v := range [3]float32{fx, fy, fz} {
			if v < minP[i] {
				minP[i] = v
			}
			if v > maxP[i] {
				maxP[i] = v
			}
		}
		indices = append(indices, uint32(len(positions)/3))
		positions = append(positions, fx, fy, fz)
		colors = append(colors, float32(c[0]), float32(c[1]), float32(c[2]))
	}

	for _, t := range tris {
		c := [3]float64{t.Color.R, t.Color.G, t.Color.B}
		push(t.V1.X, t.V1.Y, t.V1.Z, c)
		push(t.V2.X, t.V2.Y, t.V2.Z, c)
		push(t.V3.X, t.V3.Y, t.V3.Z, c)
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, positions); err != nil {
		log.Fatal(err)
	}
	colorOffset := buf.Len()
	if err := binary.Write(&buf, binary.LittleEndian, colors); err != nil {
		log.Fatal(err)
	}
	indexOffset := buf.Len()
	if err := binary.Write(&buf, binary.LittleEndian, indices); err != nil {
		log.Fatal(err)
	}
	bin := buf.Bytes()

	vertexCount := len(positions) / 3
	doc := &gltf.Document{
		Asset: gltf.Asset{Version: "2.0", Generator: "castle64 export_level"},
		Buffers: []*gltf.Buffer{
			{ByteLength: len(bin), Data: bin},
		},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: colorOffset, Target: gltf.TargetArrayBuffer},
			{Buffer: 0, ByteOffset: colorOffset, ByteLength: indexOffset - colorOffset, Target: gltf.TargetArrayBuffer},
			{Buffer: 0, ByteOffset: indexOffset, ByteLength: len(bin) - indexOffset, Target: gltf.TargetElementArrayBuffer},
		},
		Accessors: []*gltf.Accessor{
			{
				BufferView:    gltf.Index(0),
				ComponentType: gltf.ComponentFloat,
				Type:          gltf.AccessorVec3,
				Count:         vertexCount,
				Min:           []float64{float64(minP[0]), float64(minP[1]), float64(minP[2])},
				Max:           []float64{float64(maxP[0]), float64(maxP[1]), float64(maxP[2])},
			},
			{
				BufferView:    gltf.Index(1),
				ComponentType: gltf.ComponentFloat,
				Type:          gltf.AccessorVec3,
				Count:         vertexCount,
			},
			{
				BufferView:    gltf.Index(2),
				ComponentType: gltf.ComponentUint,
				Type:          gltf.AccessorScalar,
				Count:         len(indices),
			},
		},
		Meshes: []*gltf.Mesh{
			{
				Name: "castle",
				Primitives: []*gltf.Primitive{
					{
						Mode:    gltf.PrimitiveTriangles,
						Indices: gltf.Index(2),
						Attributes: map[string]int{
							gltf.POSITION: 0,
							gltf.COLOR_0:  1,
						},
					},
				},
			},
		},
		Nodes:  []*gltf.Node{{Name: "castle", Mesh: gltf.Index(0)}},
		Scenes: []*gltf.Scene{{Nodes: []int{0}}},
		Scene:  gltf.Index(0),
	}

	if err := gltf.SaveBinary(doc, out); err != nil {
		log.Fatalf("save %s: %v", out, err)
	}
	log.Printf("wrote %s: %d triangles, %d vertices", out, len(tris), vertexCount)
}
