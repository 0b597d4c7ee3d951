// Package wrap holds the types used by the generic-types tutorial.
//
// The program in the module root walks through them section by section;
// keeping them in their own package lets tests and the type checker
// exercise them directly.
package wrap

// ── Concrete vs generic types ─────────────────────────────────────────────────
// A type parameter list [T any] right after the type name is what makes a
// type generic. Without it, every type mentioned in the body must already
// exist, so the type is concrete.

// Marker is a concrete type with no fields. It only carries type identity.
type Marker struct{}

// Single is concrete: its field is always a Marker.
type Single struct {
	A Marker
}

// SingleGen is generic: T is declared by the type itself, so it can be any
// type, including Marker.
type SingleGen[T any] struct {
	Val T
}

// NewSingleGen lets the compiler infer T from v.
// Composite literals never infer type arguments: SingleGen{6} does not
// compile, SingleGen[int]{6} does.
func NewSingleGen[T any](v T) SingleGen[T] { return SingleGen[T]{Val: v} }

// Inner returns the held value.
func (s SingleGen[T]) Inner() T { return s.Val }
