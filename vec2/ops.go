package vec2

import "fmt"

// Dynamic operation layer. These functions take untyped operands, validate
// them at runtime, and report wrong-type errors naming the expected type.
// Mul keeps the overload-style dispatch between scaling and dot product;
// callers that know their types statically should prefer the Vector2 methods.

type valueKind uint8

const (
	valueScalar valueKind = iota
	valueVector
)

// Value holds either a scalar or a vector, for operations whose result kind
// depends on the operand types.
type Value struct {
	kind valueKind
	num  float64
	vec  Vector2
}

func ScalarValue(f float64) Value { return Value{kind: valueScalar, num: f} }

func VectorValue(v Vector2) Value { return Value{kind: valueVector, vec: v} }

func (v Value) IsScalar() bool { return v.kind == valueScalar }

func (v Value) IsVector() bool { return v.kind == valueVector }

func (v Value) Scalar() float64 { return v.num }

func (v Value) Vector() Vector2 { return v.vec }

func (v Value) String() string {
	if v.kind == valueVector {
		return v.vec.String()
	}
	return fmt.Sprintf("%g", v.num)
}

// IsVector reports whether value carries two numeric components.
func IsVector(value any) bool {
	_, ok := asVector(value)
	return ok
}

func asVector(x any) (Vector2, bool) {
	switch v := x.(type) {
	case Vector2:
		return v, true
	case *Vector2:
		if v != nil {
			return *v, true
		}
	}
	return Vector2{}, false
}

func asScalar(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func errNotVector(x any) error {
	return fmt.Errorf("wrong argument type: expected Vector2, got %T", x)
}

func vectorPair(a, b any) (Vector2, Vector2, error) {
	av, ok := asVector(a)
	if !ok {
		return Vector2{}, Vector2{}, errNotVector(a)
	}
	bv, ok := asVector(b)
	if !ok {
		return Vector2{}, Vector2{}, errNotVector(b)
	}
	return av, bv, nil
}

func Add(a, b any) (Vector2, error) {
	av, bv, err := vectorPair(a, b)
	if err != nil {
		return Vector2{}, err
	}
	return av.Add(bv), nil
}

func Sub(a, b any) (Vector2, error) {
	av, bv, err := vectorPair(a, b)
	if err != nil {
		return Vector2{}, err
	}
	return av.Sub(bv), nil
}

func Permul(a, b any) (Vector2, error) {
	av, bv, err := vectorPair(a, b)
	if err != nil {
		return Vector2{}, err
	}
	return av.Permul(bv), nil
}

// Mul dispatches on the operand types: scalar*vector and vector*scalar give
// a scaled vector, vector*vector gives the dot product.
func Mul(a, b any) (Value, error) {
	if av, ok := asVector(a); ok {
		if bv, ok := asVector(b); ok {
			return ScalarValue(av.Dot(bv)), nil
		}
		if s, ok := asScalar(b); ok {
			return VectorValue(av.Scale(s)), nil
		}
	} else if s, ok := asScalar(a); ok {
		if bv, ok := asVector(b); ok {
			return VectorValue(bv.Scale(s)), nil
		}
	}
	return Value{}, fmt.Errorf("wrong argument types: expected Vector2 or number, got %T and %T", a, b)
}

// Div divides a vector by a scalar. Division by zero is not guarded and
// follows IEEE semantics.
func Div(a, s any) (Vector2, error) {
	av, ok := asVector(a)
	if !ok {
		return Vector2{}, errNotVector(a)
	}
	sv, ok := asScalar(s)
	if !ok {
		return Vector2{}, fmt.Errorf("wrong argument type: expected number, got %T", s)
	}
	return av.Div(sv), nil
}

func Dist(a, b any) (float64, error) {
	av, bv, err := vectorPair(a, b)
	if err != nil {
		return 0, err
	}
	return av.Dist(bv), nil
}

func Dist2(a, b any) (float64, error) {
	av, bv, err := vectorPair(a, b)
	if err != nil {
		return 0, err
	}
	return av.Dist2(bv), nil
}
