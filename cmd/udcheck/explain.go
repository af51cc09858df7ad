package main

import (
	"github.com/revelaction/udcheck/check"
	"github.com/revelaction/udcheck/explain"
)

func explainCommand(ui UI) error {
	return explain.NewHandler(check.Default(), ui.Out).Run()
}
