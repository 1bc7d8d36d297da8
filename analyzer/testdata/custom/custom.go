package custom

func f() {} // want "Short package level name"

func long() {
	f()
}
