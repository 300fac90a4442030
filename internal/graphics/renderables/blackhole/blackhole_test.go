package blackhole

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBillboardFacesCamera(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 50}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(40)))
	verts := Billboard(view, 80)
	if len(verts) != 4 {
		t.Fatalf("got %d vertices", len(verts))
	}

	forward := view.Row(2).Vec3()
	for i, v := range verts {
		if d := v.Pos.Dot(forward); d > 1e-3 || d < -1e-3 {
			t.Errorf("vertex %d off the camera plane by %v", i, d)
		}
	}

	// opposite corners span 2s along both screen axes
	diag := verts[2].Pos.Sub(verts[0].Pos)
	right := view.Row(0).Vec3()
	up := view.Row(1).Vec3()
	if !mgl32.FloatEqualThreshold(diag.Dot(right), 160, 1e-3) || !mgl32.FloatEqualThreshold(diag.Dot(up), 160, 1e-3) {
		t.Errorf("diagonal %v", diag)
	}
}

func TestBillboardUVs(t *testing.T) {
	verts := Billboard(mgl32.Ident4(), 1)
	want := []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, v := range verts {
		if v.UV != want[i] {
			t.Errorf("vertex %d uv %v, want %v", i, v.UV, want[i])
		}
	}
	if verts[0].Pos != (mgl32.Vec3{-1, -1, 0}) || verts[2].Pos != (mgl32.Vec3{1, 1, 0}) {
		t.Errorf("identity view corners %v %v", verts[0].Pos, verts[2].Pos)
	}
}
