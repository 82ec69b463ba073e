// Package batch implements the line-oriented batch protocols around
// the routing core: whitespace-separated test cases in, one result
// line per query out.
//
// This file declares the token reader shared by both protocols and the
// timetable protocol itself.
//
// Errors:
//
//	ErrBadInput - the input stream violates the protocol (non-numeric
//	              token, truncated record, index out of range,
//	              negative schedule field).
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/aldvik/timegraph/core"
	"github.com/aldvik/timegraph/timetable"
)

// ErrBadInput indicates the input stream violates the batch protocol.
// It wraps all parse and validation failures in this package.
var ErrBadInput = errors.New("batch: malformed input")

// Impossible is the output marker for an unreachable query node.
const Impossible = "Impossible"

// tokenReader pulls whitespace-separated tokens off a stream and
// converts them, tracking position for error context.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

// next returns the next token, or io.EOF when the stream ends cleanly.
func (tr *tokenReader) next() (string, error) {
	if !tr.sc.Scan() {
		if err := tr.sc.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}
	tr.pos++

	return tr.sc.Text(), nil
}

// Int reads one int token. EOF mid-record is a protocol violation; the
// caller decides whether EOF at a record boundary is acceptable.
func (tr *tokenReader) Int() (int, error) {
	tok, err := tr.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d: %q is not an integer", ErrBadInput, tr.pos, tok)
	}

	return v, nil
}

// Int64 reads one int64 token.
func (tr *tokenReader) Int64() (int64, error) {
	tok, err := tr.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d: %q is not an integer", ErrBadInput, tr.pos, tok)
	}

	return v, nil
}

// Float reads one float64 token.
func (tr *tokenReader) Float() (float64, error) {
	tok, err := tr.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d: %q is not a number", ErrBadInput, tr.pos, tok)
	}

	return v, nil
}

// midRecord converts EOF inside a record into a protocol violation.
func midRecord(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: input truncated mid-record", ErrBadInput)
	}

	return err
}

// Run consumes the timetable batch protocol from r and writes one
// result line per query to w.
//
// Per test case: four header ints `nodes edges queries source`,
// followed by `edges` records of `tail head start period duration`,
// followed by `queries` node indices. A header of four zeros — or a
// clean end of input at a case boundary — terminates processing. Node
// indices are taken verbatim as 0-based arena indices; any external
// renumbering is the producer's responsibility.
//
// For each query the output line is the earliest-arrival time, or the
// Impossible marker when the node cannot be reached. Index validation
// happens here, before the core is touched, so the graph only ever
// sees well-formed records.
func Run(r io.Reader, w io.Writer) error {
	tr := newTokenReader(r)
	out := bufio.NewWriter(w)
	defer out.Flush()

	for {
		nodes, err := tr.Int()
		if errors.Is(err, io.EOF) {
			return nil // clean end at a case boundary
		}
		if err != nil {
			return err
		}
		edges, err := tr.Int()
		if err != nil {
			return midRecord(err)
		}
		queries, err := tr.Int()
		if err != nil {
			return midRecord(err)
		}
		source, err := tr.Int()
		if err != nil {
			return midRecord(err)
		}

		// The all-zero header is the terminator record.
		if nodes == 0 && edges == 0 && queries == 0 && source == 0 {
			return nil
		}

		if err := runCase(tr, out, nodes, edges, queries, source); err != nil {
			return err
		}
	}
}

// runCase parses one test case, runs the search, and answers queries.
func runCase(tr *tokenReader, out *bufio.Writer, nodes, edges, queries, source int) error {
	if nodes < 1 || edges < 0 || queries < 0 {
		return fmt.Errorf("%w: bad case header (%d nodes, %d edges, %d queries)", ErrBadInput, nodes, edges, queries)
	}
	if source < 0 || source >= nodes {
		return fmt.Errorf("%w: source %d out of range 0..%d", ErrBadInput, source, nodes-1)
	}

	g, err := core.NewGraph(nodes, source)
	if err != nil {
		return err
	}

	for i := 0; i < edges; i++ {
		tail, err := tr.Int()
		if err != nil {
			return midRecord(err)
		}
		head, err := tr.Int()
		if err != nil {
			return midRecord(err)
		}
		sched, err := readSchedule(tr)
		if err != nil {
			return err
		}
		if tail < 0 || tail >= nodes || head < 0 || head >= nodes {
			return fmt.Errorf("%w: edge %d→%d out of range 0..%d", ErrBadInput, tail, head, nodes-1)
		}
		if err := g.AddEdge(tail, head, sched); err != nil {
			return err
		}
	}

	if err := timetable.Dijkstra(g); err != nil {
		return err
	}

	for i := 0; i < queries; i++ {
		q, err := tr.Int()
		if err != nil {
			return midRecord(err)
		}
		if q < 0 || q >= nodes {
			return fmt.Errorf("%w: query index %d out of range 0..%d", ErrBadInput, q, nodes-1)
		}
		if arrival, ok := g.ArrivalAt(q); ok {
			fmt.Fprintf(out, "%d\n", arrival)
		} else {
			fmt.Fprintln(out, Impossible)
		}
	}

	return nil
}

// readSchedule parses the `start period duration` triple of an edge
// record, rejecting negatives: malformed schedules stop at this layer
// and never reach the core.
func readSchedule(tr *tokenReader) (core.Schedule, error) {
	start, err := tr.Int64()
	if err != nil {
		return core.Schedule{}, midRecord(err)
	}
	period, err := tr.Int64()
	if err != nil {
		return core.Schedule{}, midRecord(err)
	}
	duration, err := tr.Int64()
	if err != nil {
		return core.Schedule{}, midRecord(err)
	}
	if start < 0 || period < 0 || duration < 0 {
		return core.Schedule{}, fmt.Errorf("%w: negative schedule field (%d %d %d)", ErrBadInput, start, period, duration)
	}

	return core.Schedule{DepartureStart: start, Period: period, Duration: duration}, nil
}
