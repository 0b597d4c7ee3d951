package main

import (
	"fmt"
	"io"

	"github.com/marcodamonte/concurrency/generic-types/wrap"
)

func demoFunctions(w io.Writer) {
	wrap.RegFn(wrap.S{A: wrap.Marker1{}})
	fmt.Fprintln(w, "  RegFn(S)                   — not generic")

	wrap.GenSpecT(wrap.NewSGen(wrap.Marker1{}))
	fmt.Fprintln(w, "  GenSpecT(SGen[Marker1])    — not generic, T pinned by caller")

	wrap.GenSpecInt32(wrap.NewSGen[int32](5))
	fmt.Fprintln(w, "  GenSpecInt32(SGen[int32])  — not generic, T pinned to int32")

	wrap.Generic[rune](wrap.NewSGen('a'))
	fmt.Fprintln(w, "  Generic[rune](SGen('a'))   — generic, explicit")

	wrap.Generic(wrap.NewSGen('c'))
	fmt.Fprintln(w, "  Generic(SGen('c'))         — generic, inferred")
}
