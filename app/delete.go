package app

import (
	"bufio"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/countdown/internal/config"
	"github.com/ayoisaiah/countdown/internal/models"
	"github.com/ayoisaiah/countdown/internal/ui"
	"github.com/ayoisaiah/countdown/report"
	"github.com/ayoisaiah/countdown/store"
)

// delRuns deletes all the specified runs. It requests for confirmation
// before proceeding with the operation.
func delRuns(db store.DB, theme *ui.Theme, runs []*models.Run) error {
	if len(runs) == 0 {
		return nil
	}

	err := printRunsTable(config.Stdout, theme, runs)
	if err != nil {
		return err
	}

	warning := pterm.Warning.Sprint(
		"The above countdowns will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(config.Stdout, warning)

	reader := bufio.NewReader(config.Stdin)

	_, _ = reader.ReadString('\n')

	err = db.DeleteRuns(runs)
	if err != nil {
		return err
	}

	report.RunsDeleted(len(runs))

	return nil
}
