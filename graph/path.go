package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// PathSegment is one step of a hierarchical instance path: an attribute
// name, optionally followed by an index for a (many) composition slot
// (spec §3: "Identifier is the attribute name in the parent. This
// defines hierarchical names like a.b[2].c").
type PathSegment struct {
	Identifier string
	Index      int
	HasIndex   bool
}

// FormatPath renders a sequence of composition segments as a dotted,
// bracket-indexed path string, e.g. "a.b[2].c".
func FormatPath(segments ...PathSegment) string {
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Identifier)
		if seg.HasIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')
		}
	}
	return b.String()
}

// ParsePath parses a dotted, bracket-indexed path string back into its
// segments. Returns an error if the path is malformed.
func ParsePath(path string) ([]PathSegment, error) {
	if path == "" {
		return nil, nil
	}

	var segments []PathSegment
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("graph: empty path segment in %q", path)
		}
		name := part
		seg := PathSegment{}
		if open := strings.IndexByte(part, '['); open >= 0 {
			if !strings.HasSuffix(part, "]") {
				return nil, fmt.Errorf("graph: malformed index in segment %q", part)
			}
			name = part[:open]
			idxStr := part[open+1 : len(part)-1]
			idx, err := strconv.Atoi(idxStr)
			if err != nil {
				return nil, fmt.Errorf("graph: non-integer index in segment %q: %w", part, err)
			}
			if idx < 0 {
				return nil, fmt.Errorf("graph: negative index in segment %q", part)
			}
			seg.Index = idx
			seg.HasIndex = true
		}
		if name == "" {
			return nil, fmt.Errorf("graph: missing identifier in segment %q", part)
		}
		seg.Identifier = name
		segments = append(segments, seg)
	}
	return segments, nil
}
