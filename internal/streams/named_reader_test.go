package streams

import (
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NamedReader(t *testing.T) {
	f, err := os.OpenFile("testdata/file.bin", os.O_RDONLY, os.ModePerm)
	require.NoErrorf(t, err, "Could not open file %s: %v", "testdata/file.bin", err)

	obj := NewNamedReader(f, f.Name())
	defer obj.Close()

	require.Equal(t, obj.String(), f.Name())
}

func Test_WrappedNamedReader(t *testing.T) {
	f, err := os.OpenFile("testdata/file.bin", os.O_RDONLY, os.ModePerm)
	require.NoErrorf(t, err, "Could not open file %s: %v", "testdata/file.bin", err)

	obj1 := NewNamedReader(f, f.Name())
	obj2 := NewSafeReader(obj1)
	obj3 := NewNamedReader(obj2, "demo")
	defer obj3.Close()

	require.Equal(t, obj3.String(), "demo->"+f.Name())
}

func Test_NamedReaderCount(t *testing.T) {
	obj := NewNamedReader(ioutil.NopCloser(strings.NewReader("Zm9vYmFy")), "memory")
	data, err := ioutil.ReadAll(obj)
	require.NoError(t, err)
	require.Equal(t, "Zm9vYmFy", string(data))
	require.Equal(t, int64(8), obj.Count())
	require.Equal(t, "memory", obj.String())
}
