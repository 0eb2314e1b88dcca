// Package report prints user-facing messages outside the timer interface
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/countdown/internal/osutil"
)

func RunsDeleted(n int) {
	pterm.Success.Printfln("%d countdown(s) deleted", n)
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
