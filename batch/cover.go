package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aldvik/timegraph/intervalcover"
)

// NoCover is the output marker when a target interval cannot be
// covered. Lowercase, unlike the routing protocol's Impossible —
// the two protocols are historically distinct.
const NoCover = "impossible"

// Cover consumes the interval-covering batch protocol from r and
// writes results to w.
//
// Per test case: two floats `start end` for the target interval, an
// int `n`, then n candidate `start end` pairs, indexed 0..n-1 in input
// order. A clean end of input before a new target terminates
// processing.
//
// For each case the output is either the NoCover marker on its own
// line, or two lines: the number of chosen intervals, then their
// zero-based input indices separated by single spaces (an empty second
// line for a zero-size cover never occurs; a point target still needs
// one interval).
func Cover(r io.Reader, w io.Writer) error {
	tr := newTokenReader(r)
	out := bufio.NewWriter(w)
	defer out.Flush()

	for {
		start, err := tr.Float()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		end, err := tr.Float()
		if err != nil {
			return midRecord(err)
		}
		n, err := tr.Int()
		if err != nil {
			return midRecord(err)
		}
		if n < 0 {
			return fmt.Errorf("%w: negative candidate count %d", ErrBadInput, n)
		}

		candidates := make([]intervalcover.Interval, n)
		for i := range candidates {
			if candidates[i].Start, err = tr.Float(); err != nil {
				return midRecord(err)
			}
			if candidates[i].End, err = tr.Float(); err != nil {
				return midRecord(err)
			}
		}

		chosen, err := intervalcover.Cover(intervalcover.Interval{Start: start, End: end}, candidates)
		switch {
		case errors.Is(err, intervalcover.ErrNoCover):
			fmt.Fprintln(out, NoCover)
		case err != nil:
			return fmt.Errorf("%w: target [%v, %v]: %v", ErrBadInput, start, end, err)
		default:
			fmt.Fprintf(out, "%d\n%s\n", len(chosen), joinInts(chosen))
		}
	}
}

// joinInts renders indices as a single space-separated line.
func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}
