// Package runlock guards a derivatives tree against concurrent pipeline
// runs with an advisory file lock.
package runlock

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrHeld reports that another flowline process holds the run lock.
var ErrHeld = errors.New("another flowline run holds the lock")

const lockFileName = "flowline.lock"

// Lock is an acquired run lock.
type Lock struct {
	fl   *flock.Flock
	path string
}

// Acquire takes the run lock for the given derivatives directory without
// blocking. ErrHeld is returned when another process owns it.
func Acquire(dir string) (*Lock, error) {
	path := filepath.Join(dir, lockFileName)
	fl := flock.New(path)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHeld, path)
	}
	return &Lock{fl: fl, path: path}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
