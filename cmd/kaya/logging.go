package main

import (
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

const defaultLogFile = "kaya/kaya.log"

// openLogger creates the file logger. The terminal belongs to the game, so
// logs never go to stdout or stderr while playing.
func openLogger(path string, debug bool) (*log.Logger, io.Closer, error) {
	if path == "" {
		p, err := xdg.StateFile(defaultLogFile)
		if err != nil {
			return nil, nil, fmt.Errorf("log: cannot resolve log path: %w", err)
		}
		path = p
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log: cannot open %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "kaya",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}
