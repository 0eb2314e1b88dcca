package main

import (
	"os"

	"github.com/ayoisaiah/countdown/app"
	"github.com/ayoisaiah/countdown/internal/pathutil"
	"github.com/ayoisaiah/countdown/report"
)

func run(args []string) error {
	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
