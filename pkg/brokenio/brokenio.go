// brokenio wraps an io.Reader so we can see how readers cope with
// short reads and with reads that fail part way through a file.
// Typical use: You have a strings.Reader or a file pointer and you
// write
//   rdr = brokenio.NewReader(rdr)
//   rdr.SetMaxRead(3)
//   rdr.SetFailAfter(100, someErr)
// Everything works as before, but the consumer only ever gets three
// bytes at a time and after 100 bytes gets someErr.

package brokenio

import (
	"errors"
	"io"
	"math/rand"
)

// ErrBroken is what we return if the caller did not say which error.
var ErrBroken = errors.New("brokenio: artificial read failure")

// Reader is modelled on the Readers in the standard library, with
// settings for how badly it behaves.
type Reader struct {
	rdrOrig   io.Reader // Wrapped reader
	maxRead   int       // never return more than this, 0 means no limit
	failAfter int       // fail once this many bytes are through, < 0 never
	failErr   error
	withData  bool       // the failure comes with the last bytes
	rnd       *rand.Rand // if set, the size of each read is random up to maxRead
	nCalled   int
	nByte     int
}

// NewReader returns a Reader wrapped around rIn which behaves well
// until told otherwise.
func NewReader(rIn io.Reader) *Reader {
	return &Reader{rdrOrig: rIn, failAfter: -1, failErr: ErrBroken}
}

// SetMaxRead limits the number of bytes handed back by one Read.
func (r *Reader) SetMaxRead(n int) { r.maxRead = n }

// SetRandom makes the length of each read random, between 1 and the
// maximum from SetMaxRead.
func (r *Reader) SetRandom(rnd *rand.Rand) { r.rnd = rnd }

// SetFailAfter makes Read return err once n bytes have been passed
// through. A nil err means ErrBroken.
func (r *Reader) SetFailAfter(n int, err error) {
	r.failAfter = n
	if err == nil {
		err = ErrBroken
	}
	r.failErr = err
}

// SetFailWithData makes the failing Read hand back its bytes and the
// error together, instead of the error on the next call. io.Reader
// allows both.
func (r *Reader) SetFailWithData(b bool) { r.withData = b }

// NCalled is the number of calls to Read.
func (r *Reader) NCalled() int { return r.nCalled }

// NByte is the number of bytes handed back so far.
func (r *Reader) NByte() int { return r.nByte }

// Read wraps the original reader.
func (r *Reader) Read(p []byte) (n int, err error) {
	r.nCalled++
	if len(p) == 0 {
		return 0, nil
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, r.failErr
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	if r.maxRead > 0 && len(p) > r.maxRead {
		want := r.maxRead
		if r.rnd != nil {
			want = 1 + r.rnd.Intn(r.maxRead)
		}
		p = p[:want]
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	if err == nil && r.withData && r.failAfter >= 0 && r.nByte >= r.failAfter {
		return n, r.failErr
	}
	return n, err
}
