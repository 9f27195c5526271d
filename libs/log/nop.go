package log

import (
	"github.com/rs/zerolog"
)

// NewNopLogger returns a Logger that drops everything. Converters built
// without WithLogger use it.
func NewNopLogger() Logger {
	return &defaultLogger{
		Logger: zerolog.Nop(),
	}
}
