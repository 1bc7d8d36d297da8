//nolint:all
package nolint

func file(x int) bool {
	return x == x
}
