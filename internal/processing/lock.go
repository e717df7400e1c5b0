package processing

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FixLock guards against concurrent fix runs writing the same outputs.
type FixLock struct {
	lock *flock.Flock
}

// AcquireFixLock takes an exclusive lock for fix runs. It fails immediately
// when another videofix fix run already holds the lock.
func AcquireFixLock(lockDir string) (*FixLock, error) {
	if err := os.MkdirAll(lockDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory %s: %w", lockDir, err)
	}

	lock := flock.New(filepath.Join(lockDir, "videofix.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire fix lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another videofix fix run is already in progress")
	}
	return &FixLock{lock: lock}, nil
}

// Release releases the lock.
func (l *FixLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
