package rocket

import (
	"mini-orrery/internal/graphics/graphicstest"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestModelParts(t *testing.T) {
	rec := graphicstest.NewRecorder()
	drawModel(rec, mgl32.Ident4(), 20)

	want := []graphicstest.Kind{
		graphicstest.Cylinder, graphicstest.Disk, // first stage
		graphicstest.Cylinder, graphicstest.Disk, // second stage
		graphicstest.Cylinder, // nose
		graphicstest.Primitive, graphicstest.Primitive, graphicstest.Primitive,
		graphicstest.Cylinder, // engine bell
	}
	got := rec.Kinds()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	nose := rec.Draws[4]
	if nose.Top != 0 || nose.Color != NoseColor || nose.Height != 10 {
		t.Errorf("nose %+v", nose)
	}
	if z := nose.Model.Col(3).Z(); !mgl32.FloatEqual(z, 24) {
		t.Errorf("nose starts at z=%v", z)
	}
	bell := rec.Draws[8]
	if bell.Color != EngineColor || !mgl32.FloatEqual(bell.Model.Col(3).Z(), -2) {
		t.Errorf("bell %+v", bell)
	}
}

func TestFinsSpreadEvenly(t *testing.T) {
	rec := graphicstest.NewRecorder()
	drawModel(rec, mgl32.Ident4(), 30)

	var tips []mgl32.Vec3
	for _, d := range rec.Draws {
		if d.Kind == graphicstest.Primitive {
			tips = append(tips, d.Model.Mul4x1(d.Vertices[1].Pos.Vec4(1)).Vec3())
		}
	}
	if len(tips) != 3 {
		t.Fatalf("got %d fins", len(tips))
	}
	for i := range tips {
		a, b := tips[i], tips[(i+1)%3]
		cos := a.Vec2().Normalize().Dot(b.Vec2().Normalize())
		if !mgl32.FloatEqualThreshold(cos, -0.5, 1e-4) {
			t.Errorf("fins %d and %d not 120 degrees apart: cos %v", i, (i+1)%3, cos)
		}
	}
}
