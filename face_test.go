package gocube

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDirectionBasics(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: Opposite is not an involution", d)
		}
		if d.Opposite().Axis() != d.Axis() || d.Opposite().Positive() == d.Positive() {
			t.Errorf("%v: bad opposite %v", d, d.Opposite())
		}
		if d.Vec().Add(d.Opposite().Vec()).Len() != 0 {
			t.Errorf("%v: vectors do not cancel", d)
		}
	}
	if PosZ.String() != "+Z" || NegX.String() != "-X" {
		t.Errorf("unexpected names %s %s", PosZ, NegX)
	}
	if PosY.Bound(4) != 3 || NegY.Bound(4) != 0 {
		t.Error("unexpected bounds")
	}
}

func TestDefaultConventionIsValid(t *testing.T) {
	conv := DefaultConvention()
	if err := conv.Validate(); err != nil {
		t.Fatal(err)
	}
	for i, f := range Faces {
		if conv.FaceOf(conv.Axes[i]) != f {
			t.Errorf("FaceOf(%v) = %s, want %s", conv.Axes[i], conv.FaceOf(conv.Axes[i]), f)
		}
	}
	if _, err := conv.Direction(Face("X")); !errors.Is(err, ErrInvalidFace) {
		t.Errorf("Direction(X) error = %v, want ErrInvalidFace", err)
	}
}

func TestConventionValidateRejects(t *testing.T) {
	dup := DefaultConvention()
	dup.Axes[0] = dup.Axes[1]
	if err := dup.Validate(); !errors.Is(err, ErrInvalidConvention) {
		t.Errorf("duplicate axis: error = %v", err)
	}

	notOpposite := DefaultConvention()
	// Swap U and R: U and D no longer sit on opposite directions.
	notOpposite.Axes[0], notOpposite.Axes[1] = notOpposite.Axes[1], notOpposite.Axes[0]
	if err := notOpposite.Validate(); !errors.Is(err, ErrInvalidConvention) {
		t.Errorf("non-opposite faces: error = %v", err)
	}

	noTurn := DefaultConvention()
	noTurn.Reorient = nil
	if err := noTurn.Validate(); !errors.Is(err, ErrInvalidConvention) {
		t.Errorf("missing re-orientation: error = %v", err)
	}
}

func TestAlternateConvention(t *testing.T) {
	// F toward +Z and U toward +Y from the start: no turning needed.
	conv := Convention{
		Axes: [6]Direction{PosY, PosX, PosZ, NegY, NegX, NegZ},
	}
	if err := conv.Validate(); err != nil {
		t.Fatal(err)
	}
	if !conv.Orientation().ApproxEqual(mgl64.Ident4()) {
		t.Error("empty re-orientation should be the identity")
	}

	c, err := New(3, WithConvention(conv))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetState(scrambled3x3(t)); err != nil {
		t.Fatal(err)
	}
	got, err := c.State()
	if err != nil {
		t.Fatal(err)
	}
	if got != scrambled3x3(t) {
		t.Errorf("round trip under alternate convention:\n got %s\nwant %s", got, scrambled3x3(t))
	}
	assertPhysicalPieces(t, c)
}

func TestOrientationDefault(t *testing.T) {
	m := DefaultConvention().Orientation()
	front := m.Mul4x1(NegX.Vec().Vec4(0)).Vec3()
	if !closeTo(front, mgl64.Vec3{0, 0, 1}, 1e-9) {
		t.Errorf("front maps to %v", front)
	}
	right := m.Mul4x1(NegY.Vec().Vec4(0)).Vec3()
	if !closeTo(right, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("right maps to %v", right)
	}
	if math.Abs(m.Det()-1) > 1e-9 {
		t.Errorf("orientation is not a rotation: det = %v", m.Det())
	}
}

func TestCloseToNearZero(t *testing.T) {
	noisy := mgl64.Vec3{1, 0, 2.220446049250313e-16}
	if !closeTo(noisy, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("%v should be close to +X", noisy)
	}
	if closeTo(mgl64.Vec3{1, 0, 1e-3}, mgl64.Vec3{1, 0, 0}, 1e-6) {
		t.Error("a 1e-3 offset should not be close at 1e-6")
	}
}
