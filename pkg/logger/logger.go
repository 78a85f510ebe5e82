// Package logger builds the zerolog loggers used by the command-line
// tools.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const permission = 0664

// Build collects logger configuration before Make assembles the logger.
type Build struct {
	writer  io.Writer
	path    string
	level   zerolog.Level
	console bool
}

func New() *Build {
	return &Build{level: zerolog.InfoLevel}
}

// FromPath appends log lines to the file at path.
func (build *Build) FromPath(path string) *Build {
	build.path = path
	return build
}

// FromBuffer writes log lines to w instead of stderr.
func (build *Build) FromBuffer(w io.Writer) *Build {
	build.writer = w
	return build
}

// Level sets the minimum level; everything below it is dropped.
func (build *Build) Level(level zerolog.Level) *Build {
	build.level = level
	return build
}

// Console switches from JSON lines to human-readable output.
func (build *Build) Console() *Build {
	build.console = true
	return build
}

func (build *Build) Make() (zerolog.Logger, error) {
	writer := build.writer
	if writer == nil {
		writer = os.Stderr
	}
	if build.path != "" {
		file, err := os.OpenFile(build.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return zerolog.Nop(), err
		}
		writer = zerolog.SyncWriter(file)
	}
	if build.console {
		writer = zerolog.ConsoleWriter{Out: writer}
	}
	return zerolog.New(writer).Level(build.level).With().Timestamp().Logger(), nil
}
