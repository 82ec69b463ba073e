package batch

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aldvik/timegraph/core"
)

// ErrBadNetwork indicates a network description file that parses as
// YAML but violates the schema: missing counts, indices out of range,
// negative schedule fields, or an edge mixing weight with a schedule.
var ErrBadNetwork = errors.New("batch: invalid network description")

// networkFile is the YAML schema of a network description.
//
//	nodes: 3
//	source: 0
//	edges:
//	  - {tail: 0, head: 1, start: 5, period: 0, duration: 2}
//	  - {tail: 1, head: 2, weight: 4}   # constant-weight shorthand
type networkFile struct {
	Nodes  int          `yaml:"nodes"`
	Source int          `yaml:"source"`
	Edges  []edgeRecord `yaml:"edges"`
}

// edgeRecord is one edge entry. Either a schedule (start/period/
// duration) or the constant-weight shorthand may be given, not both.
type edgeRecord struct {
	Tail     int    `yaml:"tail"`
	Head     int    `yaml:"head"`
	Start    int64  `yaml:"start"`
	Period   int64  `yaml:"period"`
	Duration int64  `yaml:"duration"`
	Weight   *int64 `yaml:"weight"`
}

// ParseNetwork decodes a YAML network description into a ready-to-
// search graph. All validation — counts, index ranges, schedule signs
// — happens here so the core only ever sees well-formed topology.
func ParseNetwork(data []byte) (*core.Graph, error) {
	var nf networkFile
	if err := yaml.Unmarshal(data, &nf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadNetwork, err)
	}

	if nf.Nodes < 1 {
		return nil, fmt.Errorf("%w: nodes must be positive, got %d", ErrBadNetwork, nf.Nodes)
	}
	if nf.Source < 0 || nf.Source >= nf.Nodes {
		return nil, fmt.Errorf("%w: source %d out of range 0..%d", ErrBadNetwork, nf.Source, nf.Nodes-1)
	}

	g, err := core.NewGraph(nf.Nodes, nf.Source)
	if err != nil {
		return nil, err
	}

	for i, e := range nf.Edges {
		if e.Tail < 0 || e.Tail >= nf.Nodes || e.Head < 0 || e.Head >= nf.Nodes {
			return nil, fmt.Errorf("%w: edge %d: %d→%d out of range 0..%d", ErrBadNetwork, i, e.Tail, e.Head, nf.Nodes-1)
		}

		var sched core.Schedule
		switch {
		case e.Weight != nil:
			if e.Start != 0 || e.Period != 0 || e.Duration != 0 {
				return nil, fmt.Errorf("%w: edge %d: weight and schedule are mutually exclusive", ErrBadNetwork, i)
			}
			if *e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d: negative weight %d", ErrBadNetwork, i, *e.Weight)
			}
			sched = core.Constant(*e.Weight)
		default:
			if e.Start < 0 || e.Period < 0 || e.Duration < 0 {
				return nil, fmt.Errorf("%w: edge %d: negative schedule field", ErrBadNetwork, i)
			}
			sched = core.Schedule{DepartureStart: e.Start, Period: e.Period, Duration: e.Duration}
		}

		if err := g.AddEdge(e.Tail, e.Head, sched); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// LoadNetwork reads and parses a YAML network description file.
func LoadNetwork(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read network %s: %w", path, err)
	}

	return ParseNetwork(data)
}
