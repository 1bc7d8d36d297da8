package selfassign

type config struct {
	name  string
	inner struct{ limit int }
}

func variable(x int) int {
	x++
	x = x // want "Assignment of x to itself has no effect"
	return x
}

func field(c *config) {
	c.name = "default"
	c.inner.limit = c.inner.limit // want "Assignment of c.inner.limit to itself has no effect"
	c.name += "!"
}

func partial(x, y int) (int, int) {
	x, y = x, 2 // want "Assignment of x to itself has no effect"
	return x, y
}

func swap(x, y int) (int, int) {
	x, y = y, x
	return x, y
}

func cases(x int) int {
	switch {
	case x > 0:
		x = (x) // want "Assignment of x to itself has no effect"
	}
	return x
}
