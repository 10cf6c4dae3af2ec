package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var codecTests = [][]byte{
	[]byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
		"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
		"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277"),
	[]byte("Hello, world"),
	[]byte("a"),
}

func Test_Codecs(t *testing.T) {
	for _, base := range Bases() {
		c, ok := Lookup(base)
		require.True(t, ok)
		t.Run(c.Name(), func(t *testing.T) {
			for _, data := range codecTests {
				encoded := c.Encode(data)
				decoded, err := c.Decode(encoded)
				require.NoError(t, err)
				require.Equal(t, data, decoded)
			}
		})
	}
}

func Test_Lookup(t *testing.T) {
	_, ok := Lookup("64")
	require.False(t, ok)
	require.Equal(t, []string{"85", "91", "128"}, Bases())

	c, ok := Lookup(" 91 ")
	require.True(t, ok)
	require.Equal(t, "Base91(1.23)", c.(*Base91).String())
}

func Test_Base85(t *testing.T) {
	c := &Base85{}
	require.Equal(t, "87cURD_*#TDfTZ)", string(c.Encode([]byte("Hello, world"))))
	require.Equal(t, "z", string(c.Encode([]byte{0, 0, 0, 0})))

	decoded, err := c.Decode([]byte("zz"))
	require.NoError(t, err)
	require.Equal(t, make([]byte, 8), decoded)

	decoded, err = c.Decode([]byte("8\n7cURD_*#TDf TZ)"))
	require.NoError(t, err)
	require.Equal(t, "Hello, world", string(decoded))

	_, err = c.Decode([]byte("~"))
	require.Error(t, err)
}

func Test_Base128Alphabet(t *testing.T) {
	require.Len(t, cb128, 128)
	for i := 0; i < len(cb128); i++ {
		require.Equal(t, int16(i), cb128Invert[cb128[i]])
	}
	require.Equal(t, int16(-1), cb128Invert['-'])

	c := &Base128{}
	require.Len(t, c.Encode(make([]byte, 13)), 15)
	_, err := c.Decode([]byte("ab-"))
	require.Error(t, err)
}
