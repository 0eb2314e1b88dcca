package app

import (
	"fmt"
	"io"
	"time"

	"github.com/ayoisaiah/countdown/internal/models"
	"github.com/ayoisaiah/countdown/internal/timeutil"
	"github.com/ayoisaiah/countdown/internal/ui"
)

const (
	noRunsMsg = "No countdowns found for the specified time range"

	tableTimeFormat = "Jan 02, 2006 03:04 PM"
)

func clock(d time.Duration) string {
	return timeutil.FromDuration(d).String()
}

// printRunsTable prints a table of runs to w.
func printRunsTable(w io.Writer, theme *ui.Theme, runs []*models.Run) error {
	tableBody := make([][]string, len(runs))

	for i := range runs {
		run := runs[i]

		statusText := theme.Green("completed")
		if !run.Completed {
			statusText = theme.Red("abandoned")
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			run.StartTime.Local().Format(tableTimeFormat),
			run.EndTime.Local().Format(tableTimeFormat),
			clock(run.Total),
			clock(run.Elapsed),
			statusText,
		}
	}

	tableBody = append([][]string{
		{"#", "START DATE", "END DATE", "DURATION", "ELAPSED", "STATUS"},
	}, tableBody...)

	return ui.PrintTable(tableBody, w)
}
