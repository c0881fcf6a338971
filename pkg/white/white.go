// Package white strips white space out of sequence text, in place.
package white

import "bytes"

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// Remove acts on a byte slice, in place, and removes all the white
// space. The length is adjusted, the capacity is unchanged.
func Remove(sIn *[]byte) {
	s := *sIn
	n := 0
	for _, c := range s {
		if !asciiSpace[c] {
			s[n] = c
			n++
		}
	}
	*sIn = s[:n]
}

// RemoveByFields does the same job with the library. It is only here
// for benchmarking against Remove.
func RemoveByFields(sIn *[]byte) {
	s := *sIn
	n := 0
	for _, f := range bytes.Fields(s) {
		n += copy(s[n:], f)
	}
	*sIn = s[:n]
}
