package index

import (
	"fmt"
	"os"
)

type fileLock struct {
	file *os.File
}

// acquireLock takes an exclusive, non-blocking lock on path.
func acquireLock(path string) (*fileLock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open index lock: %w", err)
	}
	if err := lockExclusive(f); err != nil {
		f.Close()
		if wouldBlock(err) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("failed to acquire index lock: %w", err)
	}
	return &fileLock{file: f}, nil
}

func (l *fileLock) release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := unlock(l.file)
	closeErr := l.file.Close()
	l.file = nil
	if unlockErr != nil {
		return unlockErr
	}
	return closeErr
}
