package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	charmLog "github.com/charmbracelet/log"
)

// New สร้าง logger หลักของระบบ (ใช้ร่วมกันทั้ง API และ worker)
func New(w io.Writer, prefix, level string) (*charmLog.Logger, error) {
	lvl, err := charmLog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", level, err)
	}
	if w == nil {
		w = os.Stderr
	}

	return charmLog.NewWithOptions(w, charmLog.Options{
		Level:           lvl,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmLog.TextFormatter,
	}), nil
}

// Discard is used by tests and by callers that did not configure logging.
func Discard() *charmLog.Logger {
	return charmLog.NewWithOptions(io.Discard, charmLog.Options{Level: charmLog.FatalLevel})
}
