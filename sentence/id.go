package sentence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidID = errors.New("invalid ID")

// ParsedID is the result of parsing the ID column.
type ParsedID struct {
	Kind   Kind
	NodeID NodeID
	End    int
}

// ParseID parses a word id "N", a range "N-M" or an empty node id "N.K".
// Ranges must have N < M.
func ParseID(s string) (ParsedID, error) {
	switch {
	case Patterns.WordID.MatchString(s):
		n, _ := strconv.Atoi(s)
		return ParsedID{Kind: Word, NodeID: NodeID{Major: n}}, nil

	case Patterns.RangeID.MatchString(s):
		m := Patterns.RangeID.FindStringSubmatch(s)
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		if start >= end {
			return ParsedID{}, fmt.Errorf("%w: range %q does not satisfy start < end", ErrInvalidID, s)
		}
		return ParsedID{Kind: Range, NodeID: NodeID{Major: start}, End: end}, nil

	case Patterns.EmptyID.MatchString(s):
		m := Patterns.EmptyID.FindStringSubmatch(s)
		major, _ := strconv.Atoi(m[1])
		minor, _ := strconv.Atoi(m[2])
		return ParsedID{Kind: EmptyNode, NodeID: NodeID{Major: major, Minor: minor}}, nil
	}

	return ParsedID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
}

// ParseEHead parses a head of the DEPS column, which may name an empty node.
func ParseEHead(s string) (NodeID, error) {
	if !Patterns.EHead.MatchString(s) {
		return NodeID{}, fmt.Errorf("%w: enhanced head %q", ErrInvalidID, s)
	}
	major, minor, found := strings.Cut(s, ".")
	var id NodeID
	id.Major, _ = strconv.Atoi(major)
	if found {
		id.Minor, _ = strconv.Atoi(minor)
	}
	return id, nil
}
