package check

import (
	"strings"
	"unicode"

	"github.com/revelaction/udcheck/incident"
	sent "github.com/revelaction/udcheck/sentence"
)

func sentID(ctx *Context) {
	ids := ctx.Sentence.Metadata("sent_id")
	if len(ids) == 0 {
		return
	}
	if len(ids) > 1 {
		ctx.ErrorAt(ids[1].Line, "", "multiple-sent-id", "Multiple sent_id attributes.")
	}

	m := ids[0]
	if !sent.Patterns.SentID.MatchString(m.Value) {
		ctx.ErrorAt(m.Line, "", "invalid-sent-id", "Spurious sent_id line: '%s'. Should look like '# sent_id = xxxxx' where xxxxx is not whitespace.", m.Value)
		return
	}
	if strings.Contains(m.Value, "/") {
		ctx.ErrorAt(m.Line, "", "slash-in-sent-id", "The forward slash is reserved for special use in parallel treebanks: '%s'.", m.Value)
	}

	if first, seen := ctx.State.SentIDs[m.Value]; seen {
		ctx.ErrorAt(m.Line, "", "non-unique-sent-id", "Non-unique sent_id attribute '%s', first seen in %s line %d.", m.Value, first.File, first.Line)
		return
	}
	ctx.State.SentIDs[m.Value] = incident.SentIDLocation{File: ctx.State.File, Line: m.Line}
}

func newdocNewpar(ctx *Context) {
	count := map[string]int{}
	for _, c := range ctx.Sentence.Comments {
		like := sent.Patterns.MarkerLike.FindStringSubmatch(c.Text)
		if like == nil {
			continue
		}
		name := like[1]
		count[name]++
		if count[name] == 2 {
			ctx.ErrorAt(c.Number, "", "multiple-"+name, "Only one '# %s' line is allowed per sentence.", name)
		}

		m := sent.Patterns.Marker.FindStringSubmatch(c.Text)
		if m == nil {
			ctx.ErrorAt(c.Number, "", "invalid-"+name+"-id", "Spurious %s line: '%s'. Should be '# %s' or '# %s id = xxxxx'.", name, c.Text, name, name)
			continue
		}
		// "# newdoc id =" without a value, or a value with spaces
		if strings.Contains(c.Text, "=") {
			id := strings.TrimSpace(m[2])
			if id == "" || sent.Patterns.Whitespace.MatchString(id) {
				ctx.ErrorAt(c.Number, "", "invalid-"+name+"-id", "Invalid %s id: '%s'.", name, id)
			}
		}
	}
}

func metadataRequired(ctx *Context) {
	if len(ctx.Sentence.Metadata("sent_id")) == 0 {
		ctx.Errorf("missing-sent-id", "Missing the sent_id attribute.")
	}
	if len(ctx.Sentence.Metadata("text")) == 0 {
		ctx.Errorf("missing-text", "Missing the text attribute.")
	}
}

// text reconstructs the sentence text from the token FORMs and SpaceAfter
// and compares it with the text comment.
func text(ctx *Context) {
	texts := ctx.Sentence.Metadata("text")
	if len(texts) == 0 {
		return
	}
	if len(texts) > 1 {
		ctx.ErrorAt(texts[1].Line, "", "multiple-text", "Multiple text attributes.")
	}

	t := texts[0]
	if strings.TrimRightFunc(t.Value, unicode.IsSpace) != t.Value {
		ctx.ErrorAt(t.Line, "", "text-trailing-whitespace", "The text attribute must not end with whitespace.")
	}

	rest := t.Value
	tokens := ctx.Sentence.Tokens()
	for i, n := range tokens {
		form := n.Form()
		if !strings.HasPrefix(rest, form) {
			ctx.ErrorNode(n, "text-form-mismatch", "Mismatch between the text attribute and the FORM field. Form is '%s' but text is '%s'.", form, truncate(rest, len(form)+20))
			return
		}
		rest = rest[len(form):]

		if i == len(tokens)-1 {
			break
		}

		trimmed := strings.TrimLeftFunc(rest, unicode.IsSpace)
		spaced := trimmed != rest
		switch {
		case spaced && n.NoSpaceAfter():
			ctx.ErrorNode(n, "nospaceafter-yes", "'SpaceAfter=No' is annotated on '%s' but the text has a space after it.", form)
		case !spaced && !n.NoSpaceAfter():
			ctx.ErrorNode(n, "missing-spaceafter", "'SpaceAfter=No' is missing in the MISC field of '%s' because the text is '%s'.", form, truncate(form+rest, len(form)+10))
		}
		rest = trimmed
	}

	if extra := strings.TrimRightFunc(rest, unicode.IsSpace); extra != "" {
		ctx.ErrorAt(t.Line, "", "text-extra-chars", "Extra characters at the end of the text attribute, not accounted for in the FORM fields: '%s'.", extra)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
