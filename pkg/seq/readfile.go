// 3 Aug 2020
// Mapping the file was the fastest way in when counting sequences,
// so we use it for reading too.

package seq

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Readfile takes a filename and reads sequences from it. An empty name
// or "-" means stdin, which cannot be mapped, so it is just read.
func Readfile(fname string, seqgrp *SeqGrp) error {
	if fname == "" || fname == "-" {
		return ReadFasta(os.Stdin, seqgrp)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return err
	}
	if fi.Size() == 0 { // cannot map an empty file
		return fmt.Errorf("%s: %w", fname, ErrNoSeqs)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	if err := ReadFasta(bytes.NewReader(mm), seqgrp); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}
