// Package ioshell is the thin I/O boundary around the MWDS search core: it
// parses the textual graph format into a core.Graph, compiles that down to
// a wgraph.Graph for cc2fs.Run, and formats the result back into the
// three-block textual output. None of this is part of the search core
// itself (see cc2fs's package doc) — grounded on the original Python CLI
// driver's read_social_net/print-result pair.
package ioshell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/mwds/cc2fs"
	"github.com/katalvlaran/mwds/core"
	"github.com/katalvlaran/mwds/wgraph"
)

// Sentinel errors for malformed textual input. The core is never entered
// when Parse returns a non-nil error.
var (
	// ErrMalformedCount indicates a vertex/edge count line was not an integer.
	ErrMalformedCount = errors.New("ioshell: malformed count line")

	// ErrMalformedVertexLine indicates a vertex line had the wrong token
	// count or a non-integer weight.
	ErrMalformedVertexLine = errors.New("ioshell: malformed vertex line")

	// ErrNegativeWeight indicates a vertex weight was not positive.
	ErrNegativeWeight = errors.New("ioshell: vertex weight must be positive")

	// ErrUnknownVertexName indicates an edge line named a vertex that was
	// never declared in the vertex block.
	ErrUnknownVertexName = errors.New("ioshell: edge references unknown vertex name")

	// ErrMalformedEdgeLine indicates an edge line had the wrong token count.
	ErrMalformedEdgeLine = errors.New("ioshell: malformed edge line")
)

// Instance bundles the compiled dense graph with the index->name table
// needed to translate a cc2fs.Result back to external vertex names.
type Instance struct {
	Graph *wgraph.Graph
	Names []string
}

// Parse reads the textual graph specification from r:
//
//	n
//	<name_1> <weight_1>
//	...
//	<name_n> <weight_n>
//	m
//	<name_u_1> <name_v_1>
//	...
//	<name_u_m> <name_v_m>
//
// and returns a compiled Instance ready for cc2fs.Run.
func Parse(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n, err := readCount(sc)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		line, ok := nextNonEmpty(sc)
		if !ok {
			return nil, ErrMalformedVertexLine
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, ErrMalformedVertexLine
		}
		name := fields[0]
		weight, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, ErrMalformedVertexLine
		}
		if weight <= 0 {
			return nil, ErrNegativeWeight
		}
		if err := g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("ioshell: %w", err)
		}
		if err := g.SetWeight(name, weight); err != nil {
			return nil, fmt.Errorf("ioshell: %w", err)
		}
	}

	m, err := readCount(sc)
	if err != nil {
		return nil, err
	}

	for i := 0; i < m; i++ {
		line, ok := nextNonEmpty(sc)
		if !ok {
			return nil, ErrMalformedEdgeLine
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, ErrMalformedEdgeLine
		}
		u, v := fields[0], fields[1]
		if !g.HasVertex(u) || !g.HasVertex(v) {
			return nil, ErrUnknownVertexName
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("ioshell: %w", err)
		}
	}

	wg, names, err := g.Compile()
	if err != nil {
		return nil, fmt.Errorf("ioshell: %w", err)
	}

	return &Instance{Graph: wg, Names: names}, nil
}

// readCount reads the next non-empty line and parses it as a non-negative
// integer count.
func readCount(sc *bufio.Scanner) (int, error) {
	line, ok := nextNonEmpty(sc)
	if !ok {
		return 0, ErrMalformedCount
	}
	count, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || count < 0 {
		return 0, ErrMalformedCount
	}
	return count, nil
}

// nextNonEmpty advances sc to the next line with non-whitespace content.
func nextNonEmpty(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}

// Format emits the three output blocks of the reference shell: the cover
// size, one external name per line, then the total weight.
func Format(w io.Writer, names []string, res cc2fs.Result) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(res.Cover)); err != nil {
		return err
	}
	for _, idx := range res.Cover {
		if idx < 0 || idx >= len(names) {
			return fmt.Errorf("ioshell: result index %d out of range for %d names", idx, len(names))
		}
		if _, err := fmt.Fprintln(bw, names[idx]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw, res.Weight); err != nil {
		return err
	}
	return bw.Flush()
}

// DefaultDeadline implements the reference shell's deadline policy:
// cutoff = start + T·1e9 − 4e8 nanoseconds, T = 5s if n == 300 else 2s.
// The 400ms safety margin reserves time for the shell to format and write
// the result after the search loop exits.
func DefaultDeadline(n int, start time.Time) time.Time {
	t := 2 * time.Second
	if n == 300 {
		t = 5 * time.Second
	}
	return start.Add(t - 400*time.Millisecond)
}
