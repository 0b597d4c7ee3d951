package main

import (
	"fmt"
	"io"
	"os"
)

// Each demo covers one way type parameters show up in Go: on types, on
// functions, and on method sets.
//
// Run:
//
//	go run .
func main() {
	run(os.Stdout)
}

func run(w io.Writer) {
	section(w, "Types — concrete vs generic, explicit vs inferred instantiation")
	demoTypes(w)

	section(w, "Functions — which signatures are generic")
	demoFunctions(w)

	section(w, "Implementations — methods for one T vs every T")
	demoImpls(w)

	section(w, "Traits")
	demoTraits(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
