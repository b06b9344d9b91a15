package vec2

import (
	"math"
	"strings"
	"testing"
)

func TestIsVector(t *testing.T) {
	if !IsVector(New(1, 2)) {
		t.Fatalf("value")
	}
	if !IsVector(&Vector2{X: 1}) {
		t.Fatalf("pointer")
	}
	var p *Vector2
	if IsVector(p) {
		t.Fatalf("nil pointer")
	}
	for _, x := range []any{1.0, 3, "v", nil, [2]float64{1, 2}} {
		if IsVector(x) {
			t.Fatalf("IsVector(%T)=true", x)
		}
	}
}

func TestDynamicAddSubPermul(t *testing.T) {
	got, err := Add(New(1, 2), &Vector2{X: 3, Y: 4})
	if err != nil || !got.Eq(New(4, 6)) {
		t.Fatalf("add=%v err=%v", got, err)
	}
	got, err = Sub(New(5, 5), New(2, 1))
	if err != nil || !got.Eq(New(3, 4)) {
		t.Fatalf("sub=%v err=%v", got, err)
	}
	got, err = Permul(New(2, 3), New(4, 5))
	if err != nil || !got.Eq(New(8, 15)) {
		t.Fatalf("permul=%v err=%v", got, err)
	}
	if _, err := Add(New(1, 2), 3.0); err == nil || !strings.Contains(err.Error(), "expected Vector2") {
		t.Fatalf("add wrong type err=%v", err)
	}
	if _, err := Sub("a", New(1, 2)); err == nil || !strings.Contains(err.Error(), "expected Vector2") {
		t.Fatalf("sub wrong type err=%v", err)
	}
}

func TestMulDispatch(t *testing.T) {
	v, err := Mul(2.0, New(3, 4))
	if err != nil || !v.IsVector() || !v.Vector().Eq(New(6, 8)) {
		t.Fatalf("scalar*vec=%v err=%v", v, err)
	}
	v, err = Mul(New(3, 4), 2)
	if err != nil || !v.IsVector() || !v.Vector().Eq(New(6, 8)) {
		t.Fatalf("vec*int=%v err=%v", v, err)
	}
	v, err = Mul(New(2, 3), New(4, 5))
	if err != nil || !v.IsScalar() || v.Scalar() != 23 {
		t.Fatalf("vec*vec=%v err=%v", v, err)
	}
	v, err = Mul(New(1, 0), New(0, 1))
	if err != nil || v.Scalar() != 0 {
		t.Fatalf("orthogonal dot=%v err=%v", v, err)
	}
	if _, err := Mul("a", New(1, 2)); err == nil {
		t.Fatalf("mul must reject string operand")
	}
	if _, err := Mul(1.0, 2.0); err == nil {
		t.Fatalf("mul must reject scalar*scalar")
	}
}

func TestDynamicDiv(t *testing.T) {
	got, err := Div(New(4, 6), 2)
	if err != nil || !got.Eq(New(2, 3)) {
		t.Fatalf("div=%v err=%v", got, err)
	}
	got, err = Div(New(1, 0), 0.0)
	if err != nil || !math.IsInf(got.X, 1) || !math.IsNaN(got.Y) {
		t.Fatalf("div zero=%v err=%v", got, err)
	}
	if _, err := Div(3.0, 2.0); err == nil || !strings.Contains(err.Error(), "expected Vector2") {
		t.Fatalf("div wrong vec err=%v", err)
	}
	if _, err := Div(New(1, 2), "x"); err == nil || !strings.Contains(err.Error(), "expected number") {
		t.Fatalf("div wrong scalar err=%v", err)
	}
}

func TestDynamicDist(t *testing.T) {
	d, err := Dist(New(0, 0), New(3, 4))
	if err != nil || d != 5 {
		t.Fatalf("dist=%g err=%v", d, err)
	}
	d2, err := Dist2(New(0, 0), &Vector2{X: 3, Y: 4})
	if err != nil || d2 != 25 {
		t.Fatalf("dist2=%g err=%v", d2, err)
	}
	if _, err := Dist(New(0, 0), 1); err == nil {
		t.Fatalf("dist must reject scalar")
	}
}

func TestValueString(t *testing.T) {
	if s := ScalarValue(2.5).String(); s != "2.5" {
		t.Fatalf("scalar=%q", s)
	}
	if s := VectorValue(New(1, 2)).String(); s != "(1,2)" {
		t.Fatalf("vector=%q", s)
	}
}
