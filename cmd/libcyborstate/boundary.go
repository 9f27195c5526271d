package main

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	"github.com/cybornft/cyborstate/convert"
	"github.com/cybornft/cyborstate/libs/log"
)

// Environment read once, on the first call, to configure the library.
const (
	envLogLevel  = "CYBORSTATE_LOG_LEVEL"
	envLogFormat = "CYBORSTATE_LOG_FORMAT"
	envTrailing  = "CYBORSTATE_TRAILING_BYTES"
)

type conversion func(string) (string, error)

// result is what a boundary call hands back: the JSON or the error message,
// and the error kind.
type result struct {
	text string
	kind convert.Kind
}

var (
	converterOnce sync.Once
	converter     *convert.Converter
)

func boundaryConverter() *convert.Converter {
	converterOnce.Do(func() {
		converter = newBoundaryConverter(os.Getenv)
	})
	return converter
}

// newBoundaryConverter builds a converter from the environment. Logging is
// off unless a level is set; bad settings fall back to the defaults since
// there is nobody to report them to.
func newBoundaryConverter(getenv func(string) string) *convert.Converter {
	opts := []convert.Option{}
	if level := getenv(envLogLevel); level != "" {
		format := getenv(envLogFormat)
		if format == "" {
			format = log.LogFormatJSON
		}
		if logger, err := log.NewDefaultLogger(format, level); err == nil {
			opts = append(opts, convert.WithLogger(logger.With("module", "libcyborstate")))
		}
	}
	if policy, err := convert.ParseTrailingPolicy(getenv(envTrailing)); err == nil {
		opts = append(opts, convert.WithTrailingBytes(policy))
	}
	return convert.NewConverter(opts...)
}

// invoke runs conv on hex. A panic is turned into an internal error so it
// never unwinds into the caller.
func invoke(conv conversion, hex string, null bool) (res result) {
	if null {
		err := convert.NullInputError()
		return result{text: err.Error(), kind: convert.KindOf(err)}
	}
	defer func() {
		if r := recover(); r != nil {
			res = result{text: fmt.Sprintf("internal error: %v", r), kind: convert.KindInternal}
		}
	}()

	out, err := conv(hex)
	if err != nil {
		return result{text: err.Error(), kind: convert.KindOf(err)}
	}
	return result{text: out, kind: convert.KindNone}
}

// release hands p to free. NULL is a no-op.
func release(p unsafe.Pointer, free func(unsafe.Pointer)) {
	if p == nil {
		return
	}
	free(p)
}
