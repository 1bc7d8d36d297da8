package replaceall

import (
	"bytes"
	"strings"
)

func dashes(s string) string {
	return strings.Replace(s, " ", "-", -1) // want "Use strings.ReplaceAll instead of strings.Replace with n = -1"
}

func crlf(b []byte) []byte {
	return bytes.Replace(b, // want "Use bytes.ReplaceAll instead of bytes.Replace with n = -1"
		[]byte("\r\n"),
		[]byte("\n"),
		-1)
}

func first(s string) string {
	return strings.Replace(s, " ", "-", 1)
}
