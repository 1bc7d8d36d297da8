package errorfwrap

import (
	"errors"
	"fmt"
)

var errNotFound = errors.New("not found")

func lookup(key string) error {
	return fmt.Errorf("lookup %q: %v", key, errNotFound) // want "fmt.Errorf formats an error with %v, use %w to wrap it"
}

func both(err1, err2 error) error {
	return fmt.Errorf("%s; %s", err1, err2) // want "fmt.Errorf formats an error with %s, use %w to wrap it"
}

func detailed(err error) error {
	return fmt.Errorf("%+v", err)
}

func wrapped(err error) error {
	return fmt.Errorf("wrapped: %w", err)
}

func text(n int) error {
	return fmt.Errorf("%d%% done: %v", n, "msg")
}
