package main

import (
	"fmt"
	"io"

	"github.com/marcodamonte/concurrency/generic-types/wrap"
)

func demoTypes(w io.Writer) {
	// Single is concrete and always wraps a Marker.
	s := wrap.Single{A: wrap.Marker{}}
	fmt.Fprintf(w, "  concrete:  %T\n", s)

	// Explicit type argument.
	var c wrap.SingleGen[rune] = wrap.SingleGen[rune]{Val: 'a'}
	fmt.Fprintf(w, "  explicit:  %T = %q\n", c, c.Inner())

	// Inferred from the constructor argument.
	t := wrap.NewSingleGen(wrap.Marker{}) // SingleGen[Marker]
	i := wrap.NewSingleGen(6)             // SingleGen[int]
	r := wrap.NewSingleGen('a')           // SingleGen[rune] (int32)
	fmt.Fprintf(w, "  inferred:  %T\n", t)
	fmt.Fprintf(w, "  inferred:  %T = %d\n", i, i.Inner())
	fmt.Fprintf(w, "  inferred:  %T = %q\n", r, r.Inner())
}
