package ioutil

import (
	"io"
	"io/ioutil" // want "io/ioutil is deprecated, use the equivalent functions of packages io and os"
)

func load(r io.Reader) ([]byte, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return data, ioutil.WriteFile("copy", data, 0o600)
}

func silence() io.Writer {
	return ioutil.Discard
}
