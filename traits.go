package main

import "io"

// Nothing here yet; the section header is all that prints.
func demoTraits(_ io.Writer) {}
