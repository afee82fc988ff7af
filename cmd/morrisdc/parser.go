package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/morrisdc/network"
)

// parseNetworkFile reads the line-based network format: one edge per
// line, "c from to lower upper" for a controllable edge or
// "? from to lower upper" for a contingent one. Node names are
// arbitrary tokens, assigned ids in order of first appearance — a
// direct transliteration of the original tool's renaming-by-appearance
// scheme (tests/scripts/parser.py's get_node_renaming), simplified
// from its two-letter alphabetic naming to a plain running counter
// since this format has no onward XML/dot rendering to match names
// against.
func parseNetworkFile(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("morrisdc: open %s: %w", path, err)
	}
	defer f.Close()

	ids := make(map[string]network.Node)
	nextID := network.Node(1)
	resolve := func(name string) network.Node {
		if id, ok := ids[name]; ok {
			return id
		}
		id := nextID
		ids[name] = id
		nextID++

		return id
	}

	var controllable []network.ControllableEdge
	var contingent []network.ContingentEdge

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("morrisdc: %s:%d: want 5 fields, got %d", path, lineNo, len(fields))
		}

		from := resolve(fields[1])
		to := resolve(fields[2])
		lower, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("morrisdc: %s:%d: bad lower bound: %w", path, lineNo, err)
		}
		upper, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, fmt.Errorf("morrisdc: %s:%d: bad upper bound: %w", path, lineNo, err)
		}

		switch fields[0] {
		case "c":
			controllable = append(controllable, network.ControllableEdge{From: from, To: to, Lower: lower, Upper: upper})
		case "?":
			contingent = append(contingent, network.ContingentEdge{From: from, To: to, Lower: lower, Upper: upper})
		default:
			return nil, fmt.Errorf("morrisdc: %s:%d: unknown edge tag %q (want c or ?)", path, lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("morrisdc: %s: %w", path, err)
	}

	return network.New(len(ids), controllable, contingent)
}
