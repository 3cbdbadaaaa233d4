// Command pyfmt matches fixture ASTs against their paired source text and
// re-renders them, exercising the format-preserving engine in
// internal/pymatch end to end.
package main

func main() {
	Execute()
}
