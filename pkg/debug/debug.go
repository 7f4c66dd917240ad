// Package debug appends timestamped diagnostics to a file.
package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

const DefaultFile = "debug.log"

var (
	mu sync.Mutex
	fh *os.File
)

// Open starts writing to path, closing any file opened before.
func Open(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if fh != nil {
		fh.Close()
		fh = nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening debug file: %w", err)
	}
	fh = f
	return nil
}

// Log writes msg prefixed with the time and the caller. Without an open file
// it does nothing.
func Log(msg string) {
	timeStr := time.Now().Format("2006-01-02 15:04:05.000")
	_, fullPath, line, ok := runtime.Caller(1)
	if ok {
		LogRaw(fmt.Sprintf("%s %s:%d %s", timeStr, filepath.Base(fullPath), line, msg))
	} else {
		LogRaw(timeStr + " " + msg)
	}
}

func LogRaw(msg string) {
	mu.Lock()
	defer mu.Unlock()
	if fh == nil {
		return
	}
	if _, err := fh.WriteString(msg + "\n"); err != nil {
		log.Printf("error writing debug file: %v", err)
	}
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if fh == nil {
		return nil
	}
	err := fh.Sync()
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	fh = nil
	return err
}
