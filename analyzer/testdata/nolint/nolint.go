package nolint

func line(x int) bool {
	return x == x //nolint:selfcompare
}

func linter(x int) bool {
	return x == x //nolint:bugpattern
}

func other(x int) bool {
	return x == x //nolint:selfassign // want "Comparison of x with itself is always true"
}

//nolint:bugpattern
func function(x int) bool { // want function:"nolint:bugpattern"
	return x == x
}
