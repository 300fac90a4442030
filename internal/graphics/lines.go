package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// nearW keeps projected points in front of the eye before the perspective divide
const nearW = 1e-4

// WideLines expands a line list, or a closed loop, into screen-aligned
// triangles lineWidth pixels wide on a width*height viewport. Positions come
// back in normalized device coordinates and are drawn with an identity MVP.
func WideLines(mvp mgl32.Mat4, width, height int, verts []Vertex, loop bool, lineWidth float32) []Vertex {
	if width <= 0 || height <= 0 || len(verts) < 2 {
		return nil
	}
	var out []Vertex
	if loop {
		for i := range verts {
			out = appendSegment(out, mvp, width, height, verts[i], verts[(i+1)%len(verts)], lineWidth)
		}
		return out
	}
	for i := 0; i+1 < len(verts); i += 2 {
		out = appendSegment(out, mvp, width, height, verts[i], verts[i+1], lineWidth)
	}
	return out
}

func appendSegment(out []Vertex, mvp mgl32.Mat4, width, height int, a, b Vertex, lineWidth float32) []Vertex {
	pa := mvp.Mul4x1(a.Pos.Vec4(1))
	pb := mvp.Mul4x1(b.Pos.Vec4(1))
	if pa.W() < nearW && pb.W() < nearW {
		return out
	}
	// cut the part behind the eye
	if pa.W() < nearW {
		t := (nearW - pa.W()) / (pb.W() - pa.W())
		pa = pa.Add(pb.Sub(pa).Mul(t))
		a.Color = a.Color.Add(b.Color.Sub(a.Color).Mul(t))
	} else if pb.W() < nearW {
		t := (nearW - pb.W()) / (pa.W() - pb.W())
		pb = pb.Add(pa.Sub(pb).Mul(t))
		b.Color = b.Color.Add(a.Color.Sub(b.Color).Mul(t))
	}
	na := pa.Vec3().Mul(1 / pa.W())
	nb := pb.Vec3().Mul(1 / pb.W())

	dx := (nb.X() - na.X()) * float32(width) / 2
	dy := (nb.Y() - na.Y()) * float32(height) / 2
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l < 1e-6 {
		return out
	}
	// half the width either side, converted from pixels back to NDC
	off := mgl32.Vec3{-dy / l * lineWidth / float32(width), dx / l * lineWidth / float32(height), 0}

	corner := func(p mgl32.Vec3, src Vertex) Vertex {
		return Vertex{Pos: p, UV: src.UV, Color: src.Color}
	}
	a0, a1 := corner(na.Add(off), a), corner(na.Sub(off), a)
	b0, b1 := corner(nb.Add(off), b), corner(nb.Sub(off), b)
	return append(out, a0, b0, b1, a0, b1, a1)
}
