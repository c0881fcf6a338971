// 29 Apr 2020

// Package common has the few constants and helpers that the mains and
// the tests all want.
package common

import (
	"fmt"
	"io"
	"os"
)

// Exit codes for the mains
const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()

	if _, err := io.WriteString(f_tmp, s); err != nil {
		os.Remove(f_tmp.Name())
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}
