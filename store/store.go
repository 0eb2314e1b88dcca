// Package store persists the history of finished countdowns. The open
// database file also serves as the single-instance lock.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/countdown/internal/apperr"
	"github.com/ayoisaiah/countdown/internal/models"
	"github.com/ayoisaiah/countdown/internal/timeutil"
)

const runBucket = "runs"

var ErrAlreadyRunning = &apperr.Error{
	Message: "is countdown already running? Only one instance can be active at a time",
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	path string
}

func (c *Client) SaveRun(run *models.Run) error {
	value, err := json.Marshal(run)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(runBucket)).Put(timeutil.ToKey(run.StartTime), value)
	})
}

func (c *Client) DeleteRuns(runs []*models.Run) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(runBucket))

		for _, run := range runs {
			err := b.Delete(timeutil.ToKey(run.StartTime))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) GetRuns(since, until time.Time) ([]*models.Run, error) {
	var runs []*models.Run

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(runBucket)).Cursor()
		min := timeutil.ToKey(since)
		max := timeutil.ToKey(until)

		k, v := cur.Seek(min)

		// the run before since is included if it ended after since
		pk, pv := cur.Prev()
		if pk != nil {
			var prev models.Run

			if err := json.Unmarshal(pv, &prev); err != nil {
				return err
			}

			if prev.EndTime.After(since) {
				k, v = pk, pv
			} else {
				k, v = cur.Next()
			}
		} else {
			k, v = cur.Seek(min)
		}

		for ; k != nil && bytes.Compare(k, max) <= 0; k, v = cur.Next() {
			var run models.Run

			if err := json.Unmarshal(v, &run); err != nil {
				return err
			}

			runs = append(runs, &run)
		}

		return nil
	})

	return runs, err
}

// Open reopens a closed client at the same path.
func (c *Client) Open() error {
	db, err := openDB(c.path, time.Second)
	if err != nil {
		return err
	}

	c.DB = db

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(path string, timeout time.Duration) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		path,
		fileMode,
		&bolt.Options{Timeout: timeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// IsRunning reports whether another process holds the database at path.
func IsRunning(path string) (bool, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	db, err := openDB(path, 100*time.Millisecond)
	if errors.Is(err, ErrAlreadyRunning) {
		return true, nil
	}

	if err != nil {
		return false, err
	}

	return false, db.Close()
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath, time.Second)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(runBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		DB:   db,
		path: dbPath,
	}, nil
}
