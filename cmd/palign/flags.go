// 16 Oct 2026

package main

import "strconv"

// scoreFlag parses a score into a float32 for flag.Func.
func scoreFlag(p *float32) func(string) error {
	return func(s string) error {
		x, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return err
		}
		*p = float32(x)
		return nil
	}
}
