package shared

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// SetupLogger returns a console logger writing to w at the named level
// (debug, info, warn, error).
func SetupLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "betnumbers",
	}), nil
}
