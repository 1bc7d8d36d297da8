package nofix

import "strings"

func dashes(s string) string {
	return strings.Replace(s, " ", "-", -1) // want "Use strings.ReplaceAll"
}

func isNaN(x float64) bool {
	return x != x // want "Comparison of x with itself is true only for NaN"
}
