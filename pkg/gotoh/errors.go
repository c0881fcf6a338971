// 16 Oct 2026

package gotoh

import "errors"

// None of these can happen with correctly sized aligners and clean
// input. We return them rather than exiting, so the caller decides.
var (
	ErrCapacity   = errors.New("gotoh: sequence longer than aligner capacity")
	ErrAlloc      = errors.New("gotoh: cannot allocate alignment matrices")
	ErrCorrupt    = errors.New("gotoh: traceback hit an undefined direction")
	ErrGapInInput = errors.New("gotoh: gap symbol in input sequence")
)
