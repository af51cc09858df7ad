package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// Exit statuses.
const (
	exitPassed = 0
	exitFailed = 1
	exitEnv    = 2
)

// errFailed is returned by validate when the verdict is not PASSED. It is
// not printed; it only selects the exit status.
var errFailed = errors.New("validation failed")

// UI contains the streams of the application.
// Used for injecting buffers during testing.
type UI struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	os.Exit(run(os.Args, ui))
}

func run(args []string, ui UI) int {
	err := newApp(ui).Run(args)
	switch {
	case err == nil:
		return exitPassed
	case errors.Is(err, errFailed):
		return exitFailed
	}

	fprintErr(ui.Err, err)
	return exitEnv
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "udcheck: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:                 "udcheck",
		Usage:                "validate CoNLL-U files",
		UsageText:            "udcheck [global options] [command] [file ...]",
		Version:              BuildTag,
		EnableBashCompletion: true,
		Reader:               ui.In,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		// exit statuses are decided by run
		ExitErrHandler: func(*cli.Context, error) {},

		Flags:  validateFlags(),
		Action: func(c *cli.Context) error { return validateCommand(c, ui) },

		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "validate files, or standard input when none or - is given",
				ArgsUsage: "[file ...]",
				Flags:     validateFlags(),
				Action:    func(c *cli.Context) error { return validateCommand(c, ui) },
			},
			{
				Name:  "rules",
				Usage: "list the checks: level, unit, class, prerequisites and test ids",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "level", Usage: "list checks up to `LEVEL` only", Value: 5},
				},
				Action: func(c *cli.Context) error { return rulesCommand(c.Int("level"), ui) },
			},
			{
				Name:   "explain",
				Usage:  "interactive explorer of the checks and test ids",
				Action: func(c *cli.Context) error { return explainCommand(ui) },
			},
			{
				Name:  "import-data",
				Usage: "copy a directory of <lang>.json files into a SQLite file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Usage: "source `DIR`", Required: true},
					&cli.StringFlag{Name: "to", Usage: "destination SQLite `FILE`", Required: true},
				},
				Action: func(c *cli.Context) error {
					return importDataCommand(ImportDataOptions{From: c.String("from"), To: c.String("to")}, ui)
				},
			},
			{
				Name:   "version",
				Usage:  "print the version",
				Action: func(c *cli.Context) error { return versionCommand(ui) },
			},
			{
				Name:   "bash",
				Usage:  "print the bash completion script",
				Action: func(c *cli.Context) error { return bashCommand(ui) },
			},
		},
	}
}
