// Package logger configures zerolog for the gnipctl command.
package logger

import (
	"io"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

type stackTracer interface{ StackTrace() pkgerrors.StackTrace }

// New returns a JSON logger writing to w, tagged with serviceName.
// Call sites should use .Stack() on error events to include stacks.
func New(serviceName string, w io.Writer) zerolog.Logger {
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}

	return zerolog.New(w).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// Console returns a human-readable logger without colors, for interactive
// use with --debug.
func Console(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.DateTime,
		NoColor:    true,
	}).With().Timestamp().Logger()
}

// Install makes l the global logger at the given level. The client library
// logs through the global logger.
func Install(l zerolog.Logger, level zerolog.Level) {
	log.Logger = l
	zerolog.SetGlobalLevel(level)
}
