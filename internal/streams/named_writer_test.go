package streams

import (
	"bytes"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NamedWriter(t *testing.T) {
	f, err := ioutil.TempFile("", "test")
	require.NoErrorf(t, err, "Could not create temp file: %v", err)
	defer os.Remove(f.Name())

	obj := NewNamedWriter(f, f.Name())
	defer obj.Close()

	require.Equal(t, obj.String(), f.Name())
}

func Test_WrappedNamedWriter(t *testing.T) {
	f, err := ioutil.TempFile("", "test")
	require.NoErrorf(t, err, "Could not create temp file: %v", err)
	defer os.Remove(f.Name())

	obj1 := NewNamedWriter(f, f.Name())
	obj2 := NewSafeWriter(obj1)
	obj3 := NewNamedWriter(obj2, "demo")
	defer obj3.Close()

	require.Equal(t, obj3.String(), "demo->"+f.Name())
}

func Test_NamedWriterCount(t *testing.T) {
	var buf bytes.Buffer
	obj := NewNamedWriter(nopWriteCloser{&buf}, "memory")
	_, err := obj.Write([]byte("foo"))
	require.NoError(t, err)
	_, err = obj.Write([]byte("bar"))
	require.NoError(t, err)
	require.Equal(t, int64(6), obj.Count())
	require.Empty(t, buf.String())

	require.NoError(t, obj.Close())
	require.Equal(t, "foobar", buf.String())
}
