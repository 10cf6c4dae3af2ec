package util

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/bokysan/baseenc/enc"
)

const (
	// ErrDecode is returned when the input could not be decoded
	ErrDecode = 2
	// ErrSpecification is returned when the encoding could not be built
	ErrSpecification = 3
	ErrGeneric       = 99
)

// ExitCode returns the process exit code for the given error. Error code is unwrapped from `flags.Error`
// object. Decoding and specification errors have their own codes. Any other kind of error returns a
// generic error code - 99.
func ExitCode(err error) int {
	var flagsError *flags.Error
	var decodeError enc.DecodeError
	var specError *enc.SpecificationError

	switch {
	case err == nil:
		return 0
	case errors.As(err, &flagsError):
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	case errors.As(err, &decodeError):
		return ErrDecode
	case errors.As(err, &specError):
		return ErrSpecification
	}
	return ErrGeneric
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code returned by
// ExitCode. Help requests exit with 0 without logging.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
