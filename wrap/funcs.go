package wrap

// ── Generic vs non-generic functions ──────────────────────────────────────────
// A function is generic only when it declares its own type parameters.
// Accepting an instantiated generic type such as SGen[int32] does not make
// a function generic: the type argument is already fixed.

// Marker1 is the concrete type wrapped by S.
type Marker1 struct{}

// S is a concrete wrapper over Marker1.
type S struct {
	A Marker1
}

// SGen is a generic wrapper over T.
type SGen[T any] struct {
	Val T
}

func NewSGen[T any](v T) SGen[T] { return SGen[T]{Val: v} }

// RegFn takes a concrete type. Not generic.
func RegFn(_ S) {}

// GenSpecT takes SGen pinned to Marker1. Marker1 is not a type parameter of
// GenSpecT, so the function is not generic.
func GenSpecT(_ SGen[Marker1]) {}

// GenSpecInt32 takes SGen pinned to the built-in int32. Not generic.
func GenSpecInt32(_ SGen[int32]) {}

// Generic declares T itself, so it is generic over T.
//
//	Generic[rune](NewSGen('a')) // explicit
//	Generic(NewSGen('c'))       // inferred from the argument
func Generic[T any](_ SGen[T]) {}
