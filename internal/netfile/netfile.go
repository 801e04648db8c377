// Package netfile reads the plain-text network and request files consumed by
// the pathfinder CLI.
//
// Network file:
//
//	<header line, ignored>
//	ID, Name, [(DST, minutes), (DST, minutes), ...]
//	ID, Name, []
//
// Every listed (DST, minutes) pair becomes one connection, so a link listed on
// both endpoints' lines is stored twice.
//
// Request file, one pair per line:
//
//	Source name - Destination name
//
// Both files are UTF-8; a leading byte order mark is ignored.
package netfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/search"
)

// ErrFormat is returned for lines that do not follow the file layout.
var ErrFormat = errors.New("netfile: malformed line")

const (
	bom          = "\uFEFF"
	fieldSep     = ", "
	requestSep   = " - "
	maxLineBytes = 4 << 20
)

// ReadRecords parses a network file into station and connection records in
// file order. Stations come from every line; connections follow, line by line.
func ReadRecords(r io.Reader) ([]core.StationRecord, []core.ConnectionRecord, error) {
	var (
		stations    []core.StationRecord
		connections []core.ConnectionRecord
	)

	sc := newScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // header
		}
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}

		id, name, adj, err := splitStationLine(line)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrFormat, lineNo, err)
		}
		stations = append(stations, core.StationRecord{ID: id, Name: name})

		links, err := parseAdjacency(adj)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %w", ErrFormat, lineNo, err)
		}
		for _, l := range links {
			connections = append(connections, core.ConnectionRecord{
				SourceID:      id,
				DestinationID: l.id,
				Time:          l.time,
			})
		}
	}
	if err := scanErr(sc, lineNo); err != nil {
		return nil, nil, err
	}

	return stations, connections, nil
}

// ParseNetwork reads a network file and builds the network in one atomic step.
func ParseNetwork(r io.Reader) (*core.Network, error) {
	stations, connections, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}
	net, err := core.Build(stations, connections)
	if err != nil {
		return nil, fmt.Errorf("netfile: %w", err)
	}

	return net, nil
}

// LoadNetwork opens path and parses it with ParseNetwork.
func LoadNetwork(path string) (*core.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netfile: open network: %w", err)
	}
	defer f.Close()

	return ParseNetwork(f)
}

// ParseRequests reads "Source - Destination" lines in order.
// Blank lines are skipped; a line without the separator is ErrFormat.
func ParseRequests(r io.Reader) ([]search.Query, error) {
	var out []search.Query

	sc := newScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, bom)
		}
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		src, dst, ok := strings.Cut(line, requestSep)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing %q in %q", ErrFormat, lineNo, requestSep, line)
		}
		out = append(out, search.Query{Source: src, Destination: dst})
	}
	if err := scanErr(sc, lineNo); err != nil {
		return nil, err
	}

	return out, nil
}

// LoadRequests opens path and parses it with ParseRequests.
func LoadRequests(path string) ([]search.Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netfile: open requests: %w", err)
	}
	defer f.Close()

	return ParseRequests(f)
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return sc
}

// scanErr reports a line over maxLineBytes as ErrFormat on the line after
// the last one read; other reader failures stay I/O errors.
func scanErr(sc *bufio.Scanner, lineNo int) error {
	err := sc.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bufio.ErrTooLong):
		return fmt.Errorf("%w: line %d: longer than %d bytes: %w", ErrFormat, lineNo+1, maxLineBytes, err)
	default:
		return fmt.Errorf("netfile: read: %w", err)
	}
}

// splitStationLine splits "ID, Name, [...]" into its three fields.
func splitStationLine(line string) (id, name, adj string, err error) {
	parts := strings.SplitN(line, fieldSep, 3)
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("want \"ID, Name, [...]\", got %q", line)
	}
	id, name, adj = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])
	if id == "" || name == "" {
		return "", "", "", fmt.Errorf("empty id or name in %q", line)
	}

	return id, name, adj, nil
}

type link struct {
	id   string
	time core.Time
}

// parseAdjacency parses "[(DST, t), (DST, t)]" or "[]".
func parseAdjacency(adj string) ([]link, error) {
	if !strings.HasPrefix(adj, "[") || !strings.HasSuffix(adj, "]") {
		return nil, fmt.Errorf("adjacency %q is not bracketed", adj)
	}
	inner := strings.TrimSpace(adj[1 : len(adj)-1])
	if inner == "" {
		return nil, nil
	}

	inner = strings.NewReplacer("(", "", ")", "").Replace(inner)
	fields := strings.Split(inner, fieldSep)
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("adjacency %q has an odd number of fields", adj)
	}

	out := make([]link, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		dst := strings.TrimSpace(fields[i])
		if dst == "" {
			return nil, fmt.Errorf("empty destination in %q", adj)
		}
		t, err := core.ParseTime(strings.TrimSpace(fields[i+1]))
		if err != nil {
			return nil, err
		}
		out = append(out, link{id: dst, time: t})
	}

	return out, nil
}
