package check

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/revelaction/udcheck/incident"
	"github.com/revelaction/udcheck/segment"
	sent "github.com/revelaction/udcheck/sentence"
	"github.com/revelaction/udcheck/tree"
)

// blockBoundary reports the boundary defects the segmenter attached to the
// block. Only defects inside the block fail the check and so stop the line
// checks; empty lines met before the block and CR terminators, which the
// segmenter strips, are reported without failing it.
func blockBoundary(ctx *Context) {
	s := ctx.Sentence
	for _, d := range s.Defects {
		if d.Line < s.Start || d.TestID == segment.NonUnixNewline {
			ctx.State.Report(ctx.incident(incident.Error, d.Line, "", d.TestID, d.Message))
			continue
		}
		ctx.ErrorAt(d.Line, "", d.TestID, "%s", d.Message)
	}
}

func lineFormat(ctx *Context) {
	text := ctx.Line.Text
	if !utf8.ValidString(text) {
		ctx.Errorf("invalid-unicode", "Invalid UTF-8 string")
		return
	}

	if n := strings.Count(text, "\t") + 1; n != sent.NumColumns {
		ctx.Errorf("number-of-columns", "The line has %d columns but %d are expected. The contents of the columns will not be checked.", n, sent.NumColumns)
	}
}

func columnsWhitespace(ctx *Context) {
	n := ctx.Node
	for i, col := range n.Cols {
		name := sent.ColumnNames[i]
		if col == "" {
			ctx.Errorf("empty-column", "Empty value in column %s.", name)
			continue
		}
		if strings.TrimLeftFunc(col, unicode.IsSpace) != col {
			ctx.Errorf("leading-whitespace", "Leading whitespace not allowed in column %s: '%s'.", name, col)
		}
		if strings.TrimRightFunc(col, unicode.IsSpace) != col {
			ctx.Errorf("trailing-whitespace", "Trailing whitespace not allowed in column %s: '%s'.", name, col)
		}

		switch i {
		case sent.FORM, sent.LEMMA:
			if sent.Patterns.RepeatedSpaces.MatchString(col) {
				ctx.Errorf("repeated-whitespace", "Two or more consecutive whitespace characters not allowed in column %s.", name)
			}
			if i == sent.FORM && n.Kind == sent.Range && sent.Patterns.Whitespace.MatchString(col) {
				ctx.Errorf("invalid-whitespace-mwt", "White space not allowed in multi-word token '%s'.", col)
			}
		case sent.MISC:
		default:
			if sent.Patterns.Whitespace.MatchString(col) {
				ctx.Errorf("invalid-whitespace", "White space not allowed in column %s: '%s'.", name, col)
			}
		}
	}
}

func idFormat(ctx *Context) {
	n := ctx.Node
	if n.Kind != sent.Invalid {
		return
	}

	id := n.Col(sent.ID)
	switch {
	case sent.Patterns.RangeLike.MatchString(id):
		ctx.Errorf("invalid-word-interval", "Spurious word interval definition: '%s'.", id)
	case sent.Patterns.EmptyLike.MatchString(id):
		ctx.Errorf("invalid-empty-node-id", "Invalid empty node id: '%s'.", id)
	default:
		ctx.Errorf("invalid-word-id", "Unexpected ID format '%s'.", id)
	}
}

func headFormat(ctx *Context) {
	n := ctx.Node
	if n.Kind != sent.Word {
		return
	}
	if _, ok := n.Head(); !ok {
		ctx.Errorf(tree.InvalidHead, "Invalid HEAD: '%s'.", n.Col(sent.HEAD))
	}
}

func unicodeNormalization(ctx *Context) {
	n := ctx.Node
	for _, col := range []int{sent.FORM, sent.LEMMA} {
		v := n.Col(col)
		if norm.NFC.IsNormalString(v) {
			continue
		}
		ctx.Errorf("unicode-normalization", "Unicode not normalized: %s '%s' should be '%s' (NFC).", sent.ColumnNames[col], v, norm.NFC.String(v))
	}
}

func idSequence(ctx *Context) {
	if p := tree.CheckSequence(ctx.Sentence); p != nil {
		ctx.ErrorAt(p.Line, p.Node, p.TestID, "%s", p.Message)
	}
}

func wordRanges(ctx *Context) {
	reportProblems(ctx, tree.CheckRanges(ctx.Sentence))
}

func reportProblems(ctx *Context, problems []tree.Problem) {
	for _, p := range problems {
		ctx.ErrorAt(p.Line, p.Node, p.TestID, "%s", p.Message)
	}
}

// fileEnd reports the boundary defects found after the last block.
func fileEnd(ctx *Context) {
	for _, d := range ctx.Trailing {
		ctx.ErrorAt(d.Line, "", d.TestID, "%s", d.Message)
	}
}
