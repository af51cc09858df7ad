package check

import (
	"sync"

	"github.com/revelaction/udcheck/incident"
	"github.com/revelaction/udcheck/segment"
	"github.com/revelaction/udcheck/tree"
)

// Catalogue returns every check in execution order.
func Catalogue() []*Check {
	return []*Check{
		// Level 1: the tabular format.
		{
			ID: "block-boundary", Level: 1, Unit: Block, Class: incident.Format,
			Emits: []string{segment.ExtraEmptyLine, segment.PseudoEmptyLine, segment.MisplacedComment, segment.EmptySentence, segment.NonUnixNewline},
			Explanation: "Every sentence is a run of comment lines followed by token lines and exactly one empty line. " +
				"Comments may only precede the token lines, lines must end with LF, and whitespace-only lines are not empty lines.",
			Run: blockBoundary,
		},
		{
			ID: "line-format", Level: 1, Unit: Line, Class: incident.Format,
			Requires:    []string{"block-boundary"},
			Emits:       []string{"invalid-unicode", "number-of-columns"},
			Explanation: "A token line is valid UTF-8 and has exactly ten tab separated columns.",
			Run:         lineFormat,
		},
		{
			ID: "columns-whitespace", Level: 1, Unit: Columns, Class: incident.Format,
			Requires: []string{"line-format"},
			Emits:    []string{"empty-column", "leading-whitespace", "trailing-whitespace", "repeated-whitespace", "invalid-whitespace", "invalid-whitespace-mwt"},
			Explanation: "No column may be empty; an unknown value is written as underscore. " +
				"Whitespace is only allowed inside FORM, LEMMA and MISC, never at the edges of a column.",
			Run: columnsWhitespace,
		},
		{
			ID: "id-format", Level: 1, Unit: Columns, Class: incident.Format,
			Requires:    []string{"line-format"},
			Emits:       []string{"invalid-word-id", "invalid-word-interval", "invalid-empty-node-id"},
			Explanation: "ID is a word number N starting at 1, a multi-word token range N-M with N < M, or an empty node N.K with K >= 1.",
			Run:         idFormat,
		},
		{
			ID: "head-format", Level: 1, Unit: Columns, Class: incident.Format,
			Requires:    []string{"line-format", "id-format"},
			Emits:       []string{tree.InvalidHead},
			Explanation: "HEAD of a word is 0 for the root or the number of another word.",
			Run:         headFormat,
		},
		{
			ID: "unicode-normalization", Level: 1, Unit: Columns, Class: incident.Format,
			Requires:    []string{"line-format"},
			Emits:       []string{"unicode-normalization"},
			Explanation: "FORM and LEMMA must be in Unicode normalization form C (NFC).",
			Run:         unicodeNormalization,
		},
		{
			ID: "id-sequence", Level: 1, Unit: Tree, Class: incident.Format,
			Requires: []string{"line-format", "id-format"},
			Emits:    []string{tree.WordIDSequence},
			Explanation: "Words are numbered 1, 2, 3 ... without gaps and empty nodes k.1, k.2 ... directly follow word k. " +
				"A broken sequence makes the tree meaningless, so tree checks are skipped for the sentence.",
			Run: idSequence,
		},
		{
			ID: "word-ranges", Level: 1, Unit: Tree, Class: incident.Format,
			Requires:    []string{"id-sequence"},
			Emits:       []string{tree.WordIntervalOut, tree.OverlappingWordIntervals, tree.MisplacedWordInterval},
			Explanation: "A multi-word token range covers existing words, does not overlap other ranges and is listed right before its first word.",
			Run:         wordRanges,
		},

		// Level 2: language independent annotation rules.
		{
			ID: "sent-id", Level: 2, Unit: Block, Class: incident.Metadata,
			Emits: []string{"invalid-sent-id", "slash-in-sent-id", "multiple-sent-id", "non-unique-sent-id"},
			Explanation: "The '# sent_id = X' comment identifies a sentence. X has no whitespace and no slash, " +
				"occurs once per sentence and is unique across every file of the run.",
			Run: sentID,
		},
		{
			ID: "newdoc-newpar", Level: 2, Unit: Block, Class: incident.Metadata,
			Emits:       []string{"multiple-newdoc", "multiple-newpar", "invalid-newdoc-id", "invalid-newpar-id"},
			Explanation: "'# newdoc' and '# newpar' occur at most once per sentence, optionally as '# newdoc id = X' where X has no whitespace.",
			Run:         newdocNewpar,
		},
		{
			ID: "entity-document", Level: 2, Unit: Block, Class: incident.Coref,
			Emits: []string{"invalid-global-entity", "entity-global-mismatch", "unclosed-entity-mention"},
			Explanation: "'# global.Entity' declares the format of the MISC Entity attribute once per file. " +
				"'# newdoc' starts a document; mentions still open at that point are reported.",
			Run: entityDocument,
		},
		{
			ID: "mwt-empty-fields", Level: 2, Unit: Columns, Class: incident.Format,
			Requires:    []string{"line-format", "id-format"},
			Emits:       []string{"mwt-nonempty-field", "empty-node-nonempty-field"},
			Explanation: "Multi-word token lines only carry ID, FORM and MISC. Empty nodes have no HEAD and no DEPREL.",
			Run:         mwtEmptyFields,
		},
		{
			ID: "upos", Level: 2, Unit: Columns, Class: incident.Morpho,
			Requires:    []string{"line-format", "id-format"},
			Emits:       []string{"unknown-upos"},
			Explanation: "UPOS is one of the 17 universal part of speech tags.",
			Run:         upos,
		},
		{
			ID: "feats", Level: 2, Unit: Columns, Class: incident.Morpho,
			Requires: []string{"line-format", "id-format"},
			Emits:    []string{"invalid-feature", "unsorted-features", "repeated-feature", "invalid-feature-value", "unsorted-feature-values", "repeated-feature-value"},
			Explanation: "FEATS is a list of Feature=Value pairs separated by '|', sorted by feature name case-insensitively. " +
				"Multiple values of one feature are sorted and separated by commas.",
			Run: feats,
		},
		{
			ID: "deprel", Level: 2, Unit: Columns, Class: incident.Syntax,
			Requires:    []string{"line-format", "id-format"},
			Emits:       []string{"invalid-deprel", "unknown-deprel"},
			Explanation: "DEPREL is a universal relation optionally followed by a lower case subtype, e.g. 'obl:tmod'.",
			Run:         deprel,
		},
		{
			ID: "deps", Level: 2, Unit: Columns, Class: incident.Enhanced,
			Requires: []string{"line-format", "id-format"},
			Emits:    []string{tree.InvalidDeps, "unsorted-deps", "repeated-deps", "invalid-edeprel"},
			Explanation: "DEPS is '_' or a list of head:relation pairs separated by '|', sorted by head, " +
				"with every head listed once.",
			Run: deps,
		},
		{
			ID: "misc", Level: 2, Unit: Columns, Class: incident.Format,
			Requires: []string{"line-format"},
			Emits:    []string{"empty-misc", "empty-misc-key", "misc-extra-space", "repeated-misc", "invalid-spaceafter", "invalid-lang"},
			Explanation: "MISC is '_' or a list of attributes separated by '|'. SpaceAfter only takes the value 'No' " +
				"and Lang is a two or three letter language code.",
			Run: misc,
		},
		{
			ID: "root", Level: 2, Unit: Columns, Class: incident.Syntax,
			Requires:    []string{"line-format", "head-format"},
			Emits:       []string{"0-is-not-root", "root-is-not-0"},
			Explanation: "A word has HEAD 0 if and only if its DEPREL is 'root'.",
			Run:         root,
		},
		{
			ID: "tree", Level: 2, Unit: Tree, Class: incident.Syntax,
			Requires: []string{"id-sequence", "head-format", "root"},
			Emits:    []string{tree.UnknownHead, tree.HeadSelfLoop, tree.MissingRoot, tree.MultipleRoots, tree.NonTree},
			Explanation: "HEAD and DEPREL form a tree: heads exist, no word depends on itself, " +
				"exactly one word hangs from 0 and every word reaches it without cycles.",
			Run: buildTree,
		},
		{
			ID: "text", Level: 2, Unit: Tree, Class: incident.Metadata,
			Requires: []string{"id-sequence", "word-ranges", "misc"},
			Emits:    []string{"multiple-text", "text-trailing-whitespace", "text-form-mismatch", "missing-spaceafter", "nospaceafter-yes", "text-extra-chars"},
			Explanation: "The '# text' comment must equal the concatenation of the token FORMs, separated by a space " +
				"unless the token carries SpaceAfter=No.",
			Run: text,
		},
		{
			ID: "entity", Level: 2, Unit: Tree, Class: incident.Coref,
			Requires: []string{"id-sequence", "misc"},
			Emits: []string{"entity-global-missing", "invalid-entity-attr", "entity-type-mismatch",
				"unopened-entity-mention", "invalid-entity-head"},
			Explanation: "Coreference mentions are opened with '(eid-etype-head' and closed with 'eid)' in MISC Entity, " +
				"after a '# global.Entity' declaration. Mentions may span sentences but not documents.",
			Run:     entity,
			Skipped: entitySkipped,
		},
		{
			ID: "deps-presence", Level: 2, Unit: Enhanced, Class: incident.Enhanced,
			Requires: []string{"deps"},
			Emits:    []string{"deps-only-sometimes", "edeps-only-sometimes", "empty-node-without-deps"},
			Explanation: "Enhanced annotation is optional, but once a file uses it every node of every sentence carries DEPS. " +
				"Empty nodes only exist in the enhanced graph.",
			Run: depsPresence,
		},
		{
			ID: "egraph", Level: 2, Unit: Enhanced, Class: incident.Enhanced,
			Requires: []string{"id-sequence", "deps", "deps-presence"},
			Emits:    []string{tree.UnknownEHead, tree.DepsSelfLoop, tree.UnconnectedEGraph},
			Explanation: "The enhanced graph may have several heads per node and cycles, " +
				"but every head exists, no node depends on itself and every node is connected to 0.",
			Run: buildGraph,
		},
		{
			ID: "enhanced-root", Level: 2, Unit: Enhanced, Class: incident.Enhanced,
			Requires:    []string{"egraph"},
			Emits:       []string{"enhanced-0-is-not-root", "enhanced-root-is-not-0"},
			Explanation: "An enhanced relation has head 0 if and only if it is 'root'.",
			Run:         enhancedRoot,
		},

		// Level 3: universal syntax.
		{
			ID: "metadata-required", Level: 3, Unit: Block, Class: incident.Metadata,
			Emits:       []string{"missing-sent-id", "missing-text"},
			Explanation: "Every sentence carries '# sent_id' and '# text' comments.",
			Run:         metadataRequired,
		},
		{
			ID: "upos-deprel", Level: 3, Unit: Node, Class: incident.Syntax,
			Requires: []string{"tree", "upos", "deprel"},
			Emits: []string{"rel-upos-det", "rel-upos-nummod", "rel-upos-advmod", "rel-upos-expl", "rel-upos-aux",
				"rel-upos-cop", "rel-upos-punct", "upos-rel-punct"},
			Explanation: "Some relations are tied to parts of speech: det to DET or PRON, nummod to NUM, aux to AUX " +
				"and punct to PUNCT in both directions.",
			Run: uposDeprel,
		},
		{
			ID: "left-to-right", Level: 3, Unit: Node, Class: incident.Syntax,
			Requires:    []string{"tree"},
			Emits:       []string{"right-to-left-conj", "right-to-left-fixed", "right-to-left-flat", "right-to-left-goeswith", "right-to-left-appos"},
			Explanation: "conj, fixed, flat, goeswith and appos always attach the later word to the earlier one.",
			Run:         leftToRight,
		},
		{
			ID: "subjects-objects", Level: 3, Unit: Node, Class: incident.Syntax,
			Requires:    []string{"tree", "deprel"},
			Emits:       []string{"too-many-subjects", "too-many-objects"},
			Explanation: "A predicate has at most one subject, unless one is subtyped ':outer', and at most one direct object.",
			Run:         subjectsObjects,
		},
		{
			ID: "orphan", Level: 3, Unit: Node, Class: incident.Syntax,
			Requires:    []string{"tree"},
			Emits:       []string{"orphan-parent"},
			Explanation: "'orphan' attaches a remnant of an elided predicate to the promoted dependent, normally within a 'conj' clause.",
			Run:         orphan,
		},
		{
			ID: "functional-leaves", Level: 3, Unit: Node, Class: incident.Syntax,
			Requires: []string{"tree"},
			Emits:    []string{"leaf-mark-case", "leaf-aux-cop", "leaf-cc", "leaf-fixed", "leaf-goeswith", "leaf-punct"},
			Explanation: "Function words attached as mark, case, aux, cop, cc, fixed, goeswith or punct are normally leaves. " +
				"Only a few relations such as conj, fixed or punct may depend on them.",
			Run: functionalLeaves,
		},
		{
			ID: "fixed-span", Level: 3, Unit: Node, Class: incident.Syntax,
			Requires:    []string{"tree"},
			Emits:       []string{"fixed-gap"},
			Explanation: "The words of a fixed expression are normally adjacent.",
			Run:         fixedSpan,
		},
		{
			ID: "goeswith-span", Level: 3, Unit: Node, Class: incident.Syntax,
			Requires:    []string{"tree", "misc"},
			Emits:       []string{"goeswith-gap", "goeswith-nospace"},
			Explanation: "goeswith joins the adjacent, space separated parts of a word that was wrongly split.",
			Run:         goeswithSpan,
		},
		{
			ID: "punct-projectivity", Level: 3, Unit: Node, Class: incident.Syntax,
			Requires:    []string{"tree"},
			Emits:       []string{"punct-is-nonproj", "punct-causes-nonproj"},
			Explanation: "Punctuation attaches projectively and is never the reason another edge is non-projective.",
			Run:         punctProjectivity,
		},

		// Level 4: universal permitted values.
		{
			ID: "feats-universal", Level: 4, Unit: Columns, Class: incident.Morpho,
			Requires: []string{"feats", "upos"},
			Emits:    []string{"feature-unknown", "feature-value-unknown", "feature-upos-not-permitted"},
			Explanation: "Features and values are universal or documented for the language, " +
				"and used only with the parts of speech they are defined for.",
			Run: featsUniversal,
		},
		{
			ID: "edeprel-universal", Level: 4, Unit: Columns, Class: incident.Enhanced,
			Requires:    []string{"deps"},
			Emits:       []string{"unknown-edeprel"},
			Explanation: "An enhanced relation starts with a universal relation or is 'ref'.",
			Run:         edeprelUniversal,
		},

		// Level 5: language specific permitted values.
		{
			ID: "code-switch", Level: 5, Unit: Columns, Class: incident.Metadata,
			Requires:    []string{"misc"},
			Emits:       []string{"unknown-code-switch-lang"},
			Explanation: "MISC Lang selects the language a word is validated against. Without data for it the run language is used.",
			Run:         codeSwitch,
		},
		{
			ID: "feats-lang", Level: 5, Unit: Columns, Class: incident.Morpho,
			Requires: []string{"feats", "upos", "code-switch"},
			Emits:    []string{"feature-not-permitted", "feature-value-not-permitted", "feature-required"},
			Explanation: "Features and values are permitted in the language. Features required for a part of speech " +
				"become mandatory once any feature has been annotated.",
			Run: featsLang,
		},
		{
			ID: "deprel-lang", Level: 5, Unit: Columns, Class: incident.Syntax,
			Requires:    []string{"deprel", "code-switch"},
			Emits:       []string{"deprel-not-permitted"},
			Explanation: "The relation and its subtype are permitted in the language.",
			Run:         deprelLang,
		},
		{
			ID: "edeprel-lang", Level: 5, Unit: Columns, Class: incident.Enhanced,
			Requires:    []string{"deps", "edeprel-universal", "code-switch"},
			Emits:       []string{"edeprel-not-permitted"},
			Explanation: "The enhanced relation is permitted in the language, with case markers the language lists.",
			Run:         edeprelLang,
		},
		{
			ID: "word-with-space", Level: 5, Unit: Columns, Class: incident.Format,
			Requires:    []string{"columns-whitespace", "code-switch"},
			Emits:       []string{"invalid-word-with-space"},
			Explanation: "Only tokens the language lists as exceptions may contain a space.",
			Run:         wordWithSpace,
		},
		{
			ID: "aux-cop-lemma", Level: 5, Unit: Node, Class: incident.Morpho,
			Requires:    []string{"upos", "deprel", "code-switch"},
			Emits:       []string{"aux-lemma", "cop-lemma"},
			Explanation: "Words tagged AUX and copulas have lemmas the language lists as auxiliaries or copulas.",
			Run:         auxCopLemma,
		},

		// End of file.
		{
			ID: "file-end", Level: 1, Unit: EOF, Class: incident.Format,
			Emits:       []string{segment.MissingEmptyLine, segment.MissingFinalNewline, segment.ExtraEmptyLine, segment.PseudoEmptyLine, segment.NonUnixNewline},
			Explanation: "The file ends with an empty line after the last sentence, and the last line ends with LF.",
			Run:         fileEnd,
		},
		{
			ID: "entity-eof", Level: 2, Unit: EOF, Class: incident.Coref,
			Emits:       []string{"unclosed-entity-mention"},
			Explanation: "Every entity mention is closed before the end of the file.",
			Run:         entityEOF,
		},
	}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(Catalogue()...)
	if err != nil {
		panic(err)
	}
	return r
})

// Default returns the registry of the full catalogue.
func Default() *Registry {
	return defaultRegistry()
}
