package selfcompare

func isNaN(x float64) bool {
	return x != x // want "Comparison of x with itself is true only for NaN"
}

func isNumber(x float32) bool {
	return x == x // want "Comparison of x with itself is false only for NaN"
}

func same(i int) bool {
	return i == i // want "Comparison of i with itself is always true"
}

func differ(s *string) bool {
	return s != s // want "Comparison of s with itself is always false"
}

type point struct{ x, y float64 }

func equal(p point) bool {
	return p == p
}

func fieldNaN(p point) bool {
	return p.x != p.x // want "Comparison of p.x with itself is true only for NaN"
}
