// Package logx is the ambient logging sink for code outside the core
// tagmatch package. Logging must never affect correctness, so the core
// itself never imports this package; the cmd/tagmatch CLI is its only
// importer.
//
// Grounded on Ambrevar-demlo/display.go's Slogger: a struct of *log.Logger
// fields at distinct levels, colorized with github.com/mgutz/ansi when
// writing to a terminal.
package logx

import (
	"io"
	"log"
	"os"

	"github.com/mgutz/ansi"
)

// Logger groups the level-tagged loggers used by the CLI. Debug is
// discarded unless explicitly enabled.
type Logger struct {
	Debug   *log.Logger
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
}

// New builds a Logger writing to w. When debug is false, Debug-level
// messages are discarded. When color is true, level prefixes are
// colorized the way demlo colorizes its terminal output.
func New(w io.Writer, debug, color bool) *Logger {
	l := &Logger{
		Debug:   log.New(io.Discard, "@@ ", 0),
		Info:    log.New(w, ":: ", 0),
		Warning: log.New(w, ":: Warning: ", 0),
		Error:   log.New(w, ":: Error: ", 0),
	}
	if debug {
		l.Debug.SetOutput(w)
	}
	if color {
		l.Debug.SetPrefix(ansi.Color(l.Debug.Prefix(), "cyan+b"))
		l.Info.SetPrefix(ansi.Color(l.Info.Prefix(), "magenta+b"))
		l.Warning.SetPrefix(ansi.Color(l.Warning.Prefix(), "blue+b"))
		l.Error.SetPrefix(ansi.Color(l.Error.Prefix(), "red+b"))
	}
	return l
}

// Default is a Logger writing to stderr with color enabled when stderr is a
// terminal, matching demlo's default CLI behavior.
func Default() *Logger {
	return New(os.Stderr, false, isTerminal(os.Stderr))
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
