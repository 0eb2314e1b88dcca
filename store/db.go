package store

import (
	"time"

	"github.com/ayoisaiah/countdown/internal/models"
)

// DB is the run history storage interface.
type DB interface {
	// SaveRun stores a run keyed by its start time, overwriting any run
	// that started at the same instant.
	SaveRun(run *models.Run) error
	// GetRuns returns runs that were active at any point between since and
	// until, oldest first.
	GetRuns(since, until time.Time) ([]*models.Run, error)
	// DeleteRuns deletes one or more saved runs
	DeleteRuns(runs []*models.Run) error
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
