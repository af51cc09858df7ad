package main

import (
	"fmt"
	"strings"

	"github.com/revelaction/udcheck/check"
)

// rulesCommand prints the checks run at level.
func rulesCommand(level int, ui UI) error {
	if level < 1 || level > 5 {
		return fmt.Errorf("level must be between 1 and 5 (got %d)", level)
	}

	for _, c := range check.Default().Checks() {
		if c.Level > level {
			continue
		}

		requires := "-"
		if len(c.Requires) > 0 {
			requires = strings.Join(c.Requires, ",")
		}

		fmt.Fprintf(ui.Out, "%-28s L%d %-9s %-9s requires: %s\n", c.ID, c.Level, c.Unit, c.Class, requires)
		fmt.Fprintf(ui.Out, "%28s emits: %s\n", "", strings.Join(c.Emits, ", "))
	}

	return nil
}
