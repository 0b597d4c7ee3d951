package main

import (
	"fmt"
	"io"

	"github.com/marcodamonte/concurrency/generic-types/wrap"
)

func demoImpls(w io.Writer) {
	f := wrap.Float32Val{V: 3}
	b := wrap.BVal{}
	g := wrap.GenericVal[string]{V: "go"}
	fmt.Fprintf(w, "  %-12T Kind=%q Half=%v\n", f, f.Kind(), f.Half())
	fmt.Fprintf(w, "  %-12T Kind=%q\n", b, b.Kind())
	fmt.Fprintf(w, "  %-12T Kind=%q\n", g, g.Kind())
	fmt.Fprintf(w, "  %-12s Kind=%q\n", "as generic", wrap.GenericVal[float32](f).Kind())

	x := wrap.NewVal(3.0)
	y := wrap.NewGenVal[int32](3)
	fmt.Fprintln(w, wrap.Describe(x, y))
}
