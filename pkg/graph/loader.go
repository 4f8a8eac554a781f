package graph

import (
	"strconv"
	"strings"

	"github.com/golang/snappy"
	"golang.org/x/exp/mmap"
)

// LoadEdgeList reads a whitespace-separated edge-list file and builds a CSR
// graph. Lines starting with '#' or '%' are comments. Each data line is
// "u v" with non-negative integer vertex IDs. Files ending in ".snappy" are
// decompressed as a single snappy block before parsing.
//
// The file is opened through a memory mapping and its whole content is
// copied into memory before parsing.
func LoadEdgeList(path string) (*Graph, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, newError("load").File(path, 0).Cause(err).Err()
	}
	defer reader.Close()

	data := make([]byte, reader.Len())
	if _, err := reader.ReadAt(data, 0); err != nil {
		return nil, newError("load").File(path, 0).Cause(err).Err()
	}

	if strings.HasSuffix(path, ".snappy") {
		decoded, err := snappy.Decode(nil, data)
		if err != nil {
			return nil, newError("load").File(path, 0).Cause(err).Err()
		}
		data = decoded
	}

	edges, err := parseEdgeLines(path, string(data))
	if err != nil {
		return nil, err
	}
	return NewFromEdgeList(edges, 0)
}

// parseEdgeLines converts edge-list text into edges, reporting the first
// malformed line by number.
func parseEdgeLines(path, text string) ([]Edge, error) {
	var edges []Edge
	lineNo := 0
	for len(text) > 0 {
		lineNo++
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line = text[:i]
			text = text[i+1:]
		} else {
			text = ""
		}
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' || line[0] == '%' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, newError("parse").File(path, lineNo).Cause(ErrBadEdgeList).Err()
		}
		u, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, newError("parse").File(path, lineNo).Cause(ErrBadEdgeList).Err()
		}
		v, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, newError("parse").File(path, lineNo).Cause(ErrBadEdgeList).Err()
		}
		edges = append(edges, Edge{uint32(u), uint32(v)})
	}
	return edges, nil
}
