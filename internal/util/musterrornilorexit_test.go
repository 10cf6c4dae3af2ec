package util

import (
	"errors"
	"os"
	"sync"
	"testing"

	"bou.ke/monkey"
	"github.com/jessevdk/go-flags"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/bokysan/baseenc/enc"
)

// seqMutex makes sure that we are executing the code sequentially, as we are monkey-patching the code in-memory.
// This is not thread safe or safe in any kind of way
var seqMutex sync.Mutex

// exitCodeOf runs MustErrorNilOrExit with os.Exit patched and returns the exit code, or -1 if it did not exit
func exitCodeOf(err error) int {
	seqMutex.Lock()
	defer seqMutex.Unlock()

	exitCode := -1
	fakeExit := func(i int) {
		exitCode = i
	}
	patch := monkey.Patch(os.Exit, fakeExit)
	defer patch.Unpatch()

	MustErrorNilOrExit(err)
	return exitCode
}

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	require.Equal(t, -1, exitCodeOf(nil), "MustErrorNilOrExit existed the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit_FlagsError(t *testing.T) {
	err := &flags.Error{
		Type:    flags.ErrShortNameTooLong,
		Message: "Short name too long",
	}

	require.Equal(t, int(flags.ErrShortNameTooLong), exitCodeOf(err), "MustErrorNilOrExit did not return a proper exit code")
	require.Equal(t, 0, exitCodeOf(&flags.Error{Type: flags.ErrHelp}))
}

func Test_MustErrorNilOrExit_GenericError(t *testing.T) {
	err := errors.New("demo")

	require.Equal(t, int(ErrGeneric), exitCodeOf(err), "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_DecodeError(t *testing.T) {
	_, err := enc.Base64.DecodeString("Zm9")
	require.Equal(t, ErrDecode, exitCodeOf(err))
	require.Equal(t, ErrDecode, exitCodeOf(pkgerrors.WithStack(err)))

	_, err = enc.Base64.Decode(make([]byte, 3), []byte("Zm.v"))
	require.Equal(t, ErrDecode, exitCodeOf(err))
}

func Test_MustErrorNilOrExit_SpecificationError(t *testing.T) {
	s := enc.NewSpecification()
	s.Symbols = "0123456789abcdef"
	s.Padding = "="
	_, err := s.Encoding()
	require.Equal(t, ErrSpecification, exitCodeOf(err))
	require.Equal(t, ErrSpecification, exitCodeOf(pkgerrors.Wrap(err, "could not build encoding")))
}

func Test_ExitCode(t *testing.T) {
	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, ErrGeneric, ExitCode(errors.New("demo")))
	require.Equal(t, ErrDecode, ExitCode(enc.DecodeError{Kind: enc.Symbol}))
}
