// Package explain is an interactive explorer of the check catalogue. A check
// id or a test id typed at the prompt prints what the check validates, its
// level, its class and the checks it depends on.
package explain

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/udcheck/check"
)

const completionThreshold = 1

var ErrUnknownRule = errors.New("unknown check or test id")

type Handler struct {
	Registry *check.Registry
	W        io.Writer
}

func NewHandler(r *check.Registry, w io.Writer) *Handler {
	return &Handler{Registry: r, W: w}
}

// Run reads ids from the prompt until "quit".
func (h *Handler) Run() error {
	fmt.Fprintln(h.W, "🔑 Tab: complete, 🔧 quit")

	history := []string{}

	for {
		in := prompt.Input("      📖 ", h.completer,
			prompt.OptionTitle("udcheck explain"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		in = strings.TrimSpace(in)
		if in == "quit" || in == "exit" {
			return nil
		}
		if in == "" {
			continue
		}

		history = append(history, in)
		text, err := h.Describe(in)
		if err != nil {
			fmt.Fprintf(h.W, "✍  %v\n", err)
			continue
		}
		fmt.Fprintln(h.W, text)
	}
}

// Describe renders the check named id, or the check emitting test id id.
func (h *Handler) Describe(id string) (string, error) {
	c, ok := h.Registry.Lookup(id)
	if !ok {
		c, ok = h.Registry.ForTest(id)
	}
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRule, id)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (level %d, %s, %s)\n", c.ID, c.Level, c.Class, c.Unit)
	if len(c.Requires) > 0 {
		fmt.Fprintf(&b, "  requires: %s\n", strings.Join(c.Requires, ", "))
	}
	fmt.Fprintf(&b, "  emits:    %s\n", strings.Join(c.Emits, ", "))
	fmt.Fprintf(&b, "\n  %s\n", c.Explanation)
	return b.String(), nil
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	return h.suggest(in.TextBeforeCursor())
}

// suggest offers check ids and test ids starting with text.
func (h *Handler) suggest(text string) []prompt.Suggest {
	s := []prompt.Suggest{}
	if len(text) < completionThreshold || strings.Contains(text, " ") {
		return s
	}

	for _, c := range h.Registry.Checks() {
		if strings.HasPrefix(c.ID, text) {
			s = append(s, prompt.Suggest{Text: c.ID, Description: fmt.Sprintf("check, level %d", c.Level)})
		}
	}

	for _, id := range h.Registry.TestIDs() {
		if !strings.HasPrefix(id, text) {
			continue
		}
		if _, isCheck := h.Registry.Lookup(id); isCheck {
			continue
		}
		c, _ := h.Registry.ForTest(id)
		s = append(s, prompt.Suggest{Text: id, Description: "🔖 " + c.ID})
	}

	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Text < s[j].Text
	})
	return s
}
