package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ReopenableFile is a zapcore.WriteSyncer whose underlying file can be reopened
// after logrotate moved it away.
type ReopenableFile struct {
	path string
	mu   sync.RWMutex
	file *os.File
}

func OpenReopenableFile(path string) (*ReopenableFile, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("logger.OpenReopenableFile: %w", err)
		}
	}
	f := &ReopenableFile{path: path}
	if err := f.Reopen(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *ReopenableFile) Path() string {
	return f.path
}

// Reopen swaps in a fresh handle for path and closes the previous one.
func (f *ReopenableFile) Reopen() error {
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("logger.Reopen: %w", err)
	}
	f.mu.Lock()
	old := f.file
	f.file = file
	f.mu.Unlock()
	if old != nil {
		return old.Close()
	}
	return nil
}

func (f *ReopenableFile) Write(p []byte) (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.file.Write(p)
}

func (f *ReopenableFile) Sync() error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.file.Sync()
}

func (f *ReopenableFile) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file.Close()
}
