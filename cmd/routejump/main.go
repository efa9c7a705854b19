package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/morozRed/routejump/internal/cli"
)

var version = "0.1.0-dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		cli.NewRootCommand(version),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
