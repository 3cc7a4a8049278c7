package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "INVIEW_DEBUG"

var (
	out      io.Writer
	closer   io.Closer
	mu       sync.Mutex
	initOnce sync.Once
)

// Init starts debug logging to the specified file path, replacing any
// current destination.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	initOnce.Do(func() {})
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		return fmt.Errorf("debug log path must not be empty")
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	out = f
	closer = f
	return nil
}

// SetOutput directs debug messages to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	initOnce.Do(func() {})
	closeLocked()
	out = w
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	var err error
	if closer != nil {
		err = closer.Close()
	}
	out = nil
	closer = nil
	return err
}

// Enabled reports whether debug messages are being written.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	lazyInitLocked()
	return out != nil
}

func lazyInitLocked() {
	initOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			_ = initLocked(path)
		}
	})
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	lazyInitLocked()
	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%s] %s\n", timestamp, msg)
}
