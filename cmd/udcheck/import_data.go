package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/udcheck/langdata/filesystem"
	"github.com/revelaction/udcheck/langdata/sqlite/zombiezen"
)

type ImportDataOptions struct {
	From string
	To   string
}

func importDataCommand(opts ImportDataOptions, ui UI) error {
	src := filesystem.NewStore(opts.From)

	pool, err := zombiezen.NewPool(opts.To)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateSchemas(pool, "specs.sql"); err != nil {
		return fmt.Errorf("failed to create specs table: %w", err)
	}

	dst := zombiezen.NewStore(pool)

	fmt.Fprintf(ui.Out, "Reading language data from %s...\n", opts.From)
	langs, err := src.Langs()
	if err != nil {
		return err
	}

	progress := uiprogress.New()
	progress.Start()
	bar := progress.AddBar(len(langs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, lang := range langs {
		spec, err := src.Read(lang)
		if err != nil {
			progress.Stop()
			return fmt.Errorf("failed to read language %s: %w", lang, err)
		}

		if err := dst.Write(spec); err != nil {
			progress.Stop()
			return err
		}
		count++
		bar.Incr()
	}
	progress.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d languages from %s to %s\n", count, opts.From, opts.To)
	return nil
}
