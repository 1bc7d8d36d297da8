package use

import "test/deprecated/lib"

type handle struct{}

func (handle) Close() error { return nil }

func open() string {
	r := lib.Open("x") // want "lib.Open is deprecated"

	return r.Name() // want "r.Name is deprecated"
}

func openContext(c lib.Closer) error {
	_ = lib.OpenContext("x")

	return c.Close() // want "c.Close is deprecated"
}

func closeHandle(h handle) error {
	return h.Close() // want "h.Close is deprecated"
}

// legacy is kept for compatibility.
//
// Deprecated: Use openContext.
func legacy() { // want legacy:"deprecated"
	_ = lib.Open("legacy")
}

func callLegacy() {
	legacy() // want "legacy is deprecated"
}
