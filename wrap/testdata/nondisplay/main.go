package main

import (
	"fmt"

	"github.com/marcodamonte/concurrency/generic-types/wrap"
)

// Marker has no Display capability, so this instantiation must not compile.
func main() {
	fmt.Println(wrap.Describe(wrap.NewVal(1), wrap.NewGenVal(wrap.Marker{})))
}
