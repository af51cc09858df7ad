package sentence

import "regexp"

// PatternTable holds every named pattern of the format, compiled once.
type PatternTable struct {
	WordID  *regexp.Regexp
	RangeID *regexp.Regexp
	EmptyID *regexp.Regexp

	// RangeLike and EmptyLike match malformed ranges and empty node ids
	// such as "0-2" or "3.0".
	RangeLike *regexp.Regexp
	EmptyLike *regexp.Regexp

	// Head is a basic HEAD; EHead a head in DEPS, which may be an empty node.
	Head  *regexp.Regexp
	EHead *regexp.Regexp

	Deprel  *regexp.Regexp
	Edeprel *regexp.Regexp

	FeatName  *regexp.Regexp
	FeatValue *regexp.Regexp

	// Meta matches "# key = value" comments, Marker "# newdoc" / "# newpar"
	// with an optional id.
	Meta   *regexp.Regexp
	Marker *regexp.Regexp

	// MarkerLike matches any comment that starts like a marker.
	MarkerLike *regexp.Regexp

	SentID *regexp.Regexp

	// Entity matches one mention bracket of a MISC Entity value.
	EntityOpen  *regexp.Regexp
	EntityClose *regexp.Regexp

	// LangCode matches the value of MISC Lang.
	LangCode *regexp.Regexp

	Whitespace     *regexp.Regexp
	RepeatedSpaces *regexp.Regexp
}

// Patterns is the table used by the whole module.
var Patterns = compilePatterns()

func compilePatterns() *PatternTable {
	return &PatternTable{
		WordID:  regexp.MustCompile(`^[1-9][0-9]*$`),
		RangeID: regexp.MustCompile(`^([1-9][0-9]*)-([1-9][0-9]*)$`),
		EmptyID: regexp.MustCompile(`^([0-9]+)\.([1-9][0-9]*)$`),

		RangeLike: regexp.MustCompile(`^[0-9]+-[0-9]+$`),
		EmptyLike: regexp.MustCompile(`^[0-9]+\.[0-9]+$`),

		Head:  regexp.MustCompile(`^(0|[1-9][0-9]*)$`),
		EHead: regexp.MustCompile(`^(0|[1-9][0-9]*)(\.[1-9][0-9]*)?$`),

		Deprel:  regexp.MustCompile(`^[a-z]+(:[a-z]+)?$`),
		Edeprel: regexp.MustCompile(`^(ref|[a-z]+(:[a-z]+)?(:[\p{Ll}\p{Lm}\p{Lo}\p{M}]+(_[\p{Ll}\p{Lm}\p{Lo}\p{M}]+)*)?(:[a-z]+)?)$`),

		FeatName:  regexp.MustCompile(`^[A-Z0-9][A-Za-z0-9]*(\[[a-z0-9]+\])?$`),
		FeatValue: regexp.MustCompile(`^[A-Z0-9][A-Za-z0-9]*$`),

		Meta:   regexp.MustCompile(`^#\s*([A-Za-z][A-Za-z0-9_.\-]*)\s*=\s?(.*)$`),
		Marker: regexp.MustCompile(`^#\s*(newdoc|newpar)(?:\s+id\s*=\s*(.*))?\s*$`),

		MarkerLike: regexp.MustCompile(`^#\s*(newdoc|newpar)\b`),

		SentID: regexp.MustCompile(`^\S+$`),

		EntityOpen:  regexp.MustCompile(`^\(([^()\s-]+)(?:-([^()\s-]*))?(?:-([0-9]+))?((?:-[^()\s]*)*)$`),
		EntityClose: regexp.MustCompile(`^([^()\s-]+)\)$`),

		LangCode: regexp.MustCompile(`^[a-z]{2,3}$`),

		Whitespace:     regexp.MustCompile(`\s`),
		RepeatedSpaces: regexp.MustCompile(`\s\s`),
	}
}
