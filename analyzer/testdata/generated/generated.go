// Code generated by hand. DO NOT EDIT.

package generated

func same(i int) bool {
	return i == i // want "Comparison of i with itself is always true"
}
