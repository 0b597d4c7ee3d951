package wrap

import "fmt"

// ── Methods for one instantiation vs all instantiations ──────────────────────
// Methods on a generic type are declared once for every T:
//
//	func (g GenericVal[T]) Kind() string
//
// Go has no syntax for a method on GenericVal[float32] alone. The idiom is a
// defined type whose underlying type is that instantiation; values convert
// between the two freely because the underlying types are identical.

// B is a marker used to pin GenericVal to a user-defined type.
type B struct{}

// GenericVal wraps a single value of any type.
type GenericVal[T any] struct {
	V T
}

// Kind is available on every instantiation.
func (g GenericVal[T]) Kind() string { return fmt.Sprintf("GenericVal[%T]", g.V) }

// Float32Val carries methods only GenericVal[float32] should have.
type Float32Val GenericVal[float32]

func (f Float32Val) Kind() string { return "float32-only" }

// Half is not reachable from GenericVal[int] or any other instantiation.
func (f Float32Val) Half() float32 { return f.V / 2 }

// BVal carries methods only GenericVal[B] should have.
type BVal GenericVal[B]

func (BVal) Kind() string { return "B-only" }

// ── Accessors ────────────────────────────────────────────────────────────────

// Val holds a float64.
type Val struct {
	val float64
}

func NewVal(v float64) *Val { return &Val{val: v} }

// Value returns a pointer to the held field. The Val keeps ownership; the
// pointer is a view, not a copy.
func (v *Val) Value() *float64 { return &v.val }

// GenVal is the generic counterpart of Val.
type GenVal[T any] struct {
	genVal T
}

func NewGenVal[T any](v T) *GenVal[T] { return &GenVal[T]{genVal: v} }

// Value returns a pointer to the held field, whatever T is.
func (g *GenVal[T]) Value() *T { return &g.genVal }

// ── Capability constraint ────────────────────────────────────────────────────
// fmt can print anything, so "printable" has to be spelled out as a
// constraint. Describe only accepts T in this set; Describe with a struct
// such as Marker is a compile error, never a runtime one.

type Display interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Describe formats both accessors on one line.
func Describe[T Display](x *Val, y *GenVal[T]) string {
	return fmt.Sprintf("x is: %v, y is: %v", *x.Value(), *y.Value())
}
