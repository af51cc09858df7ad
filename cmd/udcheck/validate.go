package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/udcheck/check"
	"github.com/revelaction/udcheck/config"
	"github.com/revelaction/udcheck/incident"
	"github.com/revelaction/udcheck/langdata"
	"github.com/revelaction/udcheck/render"
	"github.com/revelaction/udcheck/stat"
)

const stdinName = "-"

func validateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML configuration `FILE`"},
		&cli.StringFlag{Name: "lang", Aliases: []string{"l"}, Usage: "language `CODE`, ud for language independent checks only"},
		&cli.IntFlag{Name: "level", Usage: "highest validation `LEVEL`, 1 to 5"},
		&cli.IntFlag{Name: "max-errors", Usage: "stop after `N` errors, 0 for no limit"},
		&cli.IntFlag{Name: "max-store", Usage: "keep at most `N` incidents per class and severity, 0 for no limit"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "do not print incidents, only the summary"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "report `FORMAT`: text or json"},
		&cli.BoolFlag{Name: "no-color", Usage: "disable colors"},
		&cli.StringFlag{Name: "data", Aliases: []string{"d"}, Usage: "language data `PATH`, a directory of <lang>.json files or a SQLite file"},
		&cli.StringFlag{Name: "defer-scope", Usage: "reset deferred feature checks per `SCOPE`: sentence, file or run"},
		&cli.BoolFlag{Name: "progress", Aliases: []string{"p"}, Usage: "show a progress bar over the input files"},
		&cli.StringFlag{Name: "log-level", Usage: "log `LEVEL`: debug, info, warn or error"},
		&cli.StringFlag{Name: "log-format", Usage: "log `FORMAT`: text or json"},
	}
}

// loadConfig reads the configuration file and environment, then applies
// the flags given on the command line.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("lang") {
		cfg.Lang = c.String("lang")
	}
	if c.IsSet("level") {
		cfg.Level = c.Int("level")
	}
	if c.IsSet("max-errors") {
		cfg.MaxErrors = c.Int("max-errors")
	}
	if c.IsSet("max-store") {
		cfg.MaxStore = c.Int("max-store")
	}
	if c.IsSet("quiet") {
		cfg.Quiet = c.Bool("quiet")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.Bool("no-color") {
		cfg.Color = false
	}
	if c.IsSet("data") {
		cfg.DataPath = c.String("data")
	}
	if c.IsSet("defer-scope") {
		cfg.DeferScope = c.String("defer-scope")
	}
	if c.IsSet("progress") {
		cfg.Progress = c.Bool("progress")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func validateCommand(c *cli.Context, ui UI) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	files := c.Args().Slice()
	if len(files) == 0 {
		files = []string{stdinName}
	}

	return validateFiles(cfg, files, ui)
}

func validateFiles(cfg *config.Config, files []string, ui UI) error {
	logger := config.NewLogger(cfg.Log).With("run", uuid.NewString())

	var data DataPool
	defer data.Close()

	reader, err := NewLangReader(&data, cfg.DataPath)
	if err != nil {
		return err
	}

	reg := check.Default()

	opts := incident.Options{
		MaxStore:   cfg.MaxStore,
		DeferScope: cfg.Scope(),
		Explain:    reg.Explain,
		OnCap: func(class incident.Class, sev incident.Severity) {
			logger.Warn("incident cap reached, suppressing further incidents", "class", class, "severity", sev, "max_store", cfg.MaxStore)
		},
	}

	var renderer render.Renderer
	switch cfg.Format {
	case "json":
		renderer = render.NewJSONRenderer(ui.Out)
	default:
		tr := render.NewTextRenderer(ui.Out)
		tr.HasColor = cfg.Color
		tr.Quiet = cfg.Quiet
		opts.Sink = tr.Incident
		renderer = tr
	}

	state := incident.NewState(opts)

	sched, err := check.NewScheduler(reg, check.Config{
		Lang:      cfg.Lang,
		Level:     cfg.Level,
		MaxErrors: cfg.MaxErrors,
	}, state, langdata.NewRegistry(reader), logger)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	sched.OnSentence = hdl.Aggregate

	logger.Info("run start", "files", len(files), "level", cfg.Level, "lang", cfg.Lang)

	var (
		progress *uiprogress.Progress
		bar      *uiprogress.Bar
	)
	if cfg.Progress {
		progress = uiprogress.New()
		progress.Start()
		bar = progress.AddBar(len(files))
		bar.AppendCompleted()
		bar.PrependElapsed()
		bar.AppendFunc(func(b *uiprogress.Bar) string {
			if b.Current() == 0 {
				return files[0]
			}
			return files[b.Current()-1]
		})
	}

	for _, name := range files {
		if err := validateFile(sched, name, ui); err != nil {
			if progress != nil {
				progress.Stop()
			}
			return err
		}

		if bar != nil {
			bar.Incr()
		}

		if state.Aborted {
			break
		}
	}

	if progress != nil {
		progress.Stop()
	}

	rep := render.NewReport(state, hdl.Get())
	logger.Info("run done", "verdict", rep.Verdict, "errors", rep.Errors, "warnings", rep.Warnings)

	if err := renderer.Render(rep); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if rep.Verdict != incident.Passed {
		return errFailed
	}
	return nil
}

func validateFile(sched *check.Scheduler, name string, ui UI) error {
	if name == stdinName {
		return sched.File(name, ui.In)
	}

	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return sched.File(name, f)
}
