// Package log configures the zerolog loggers shared across the codec,
// trie, and state packages, grounded on strawberry's pkg/log package.
package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger so component packages can depend on this
// package's type rather than importing zerolog directly.
type Logger struct {
	zerolog.Logger
}

type LoggerType uint8

const (
	ConsoleLogger LoggerType = iota
	JSONLogger
)

var (
	Root  zerolog.Logger
	Codec zerolog.Logger
	Trie  zerolog.Logger
	State zerolog.Logger
)

// Options configures Init.
type Options struct {
	LogLevel zerolog.Level
	Type     LoggerType
}

func ParseLogLevel(loglevel string) (zerolog.Level, error) {
	return zerolog.ParseLevel(loglevel)
}

// Init sets up the component loggers. Until Init is called, Root and
// its children are the zero Logger, which discards everything -
// harmless for library callers who never opt into logging.
func Init(opts Options) {
	var out *os.File = os.Stdout

	switch opts.Type {
	case ConsoleLogger:
		cw := newConsoleWriter()
		Root = zerolog.New(cw).Level(opts.LogLevel).With().Timestamp().Logger()
	default:
		Root = zerolog.New(out).Level(opts.LogLevel).With().Timestamp().Logger()
	}

	Codec = Root.With().Str("component", "codec").Logger()
	Trie = Root.With().Str("component", "trie").Logger()
	State = Root.With().Str("component", "state").Logger()
}

// newConsoleWriter builds a console formatter that puts the emitting
// component (codec/trie/state) up front as a bracketed tag rather than
// as just another key-value pair, since with only three components
// and no request/session fields to scan for, that tag is the one
// thing worth a reader's eye before the message itself.
func newConsoleWriter() zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true, TimeFormat: time.RFC3339}

	cw.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("[%-5s]", i))
	}
	cw.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	cw.FormatFieldName = func(i interface{}) string {
		if i == "component" {
			return ""
		}
		return fmt.Sprintf("%s=", i)
	}
	cw.FormatFieldValue = func(i interface{}) string {
		if s, ok := i.(string); ok && (s == "codec" || s == "trie" || s == "state") {
			return fmt.Sprintf("<%s>", s)
		}
		return fmt.Sprintf("%v", i)
	}
	cw.FormatErrFieldValue = func(i interface{}) string {
		return fmt.Sprintf("error=%v", i)
	}
	return cw
}
