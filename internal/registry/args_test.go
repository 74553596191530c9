package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

func TestParseArgs(t *testing.T) {
	args, err := ParseArgs([]string{"width=20", "indent=  ", "phrase=a=b", "width=30", "Name=Bob"})
	require.NoError(t, err)
	assert.Equal(t, Args{"width": "30", "indent": "  ", "phrase": "a=b", "Name": "Bob"}, args)

	for _, pair := range []string{"width", "=20", " =x"} {
		_, err := ParseArgs([]string{pair})
		assert.True(t, tkerror.HasCode(err, tkerror.CodeInvalidInput), "pair %q: %v", pair, err)
	}

	empty, err := ParseArgs(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestArgsGetters(t *testing.T) {
	args := Args{"width": " 20 ", "exact": "false", "phrases": "cat, ,dog,", "bad": "x"}

	n, err := args.Int("width", 1)
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	n, err = args.Int("missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = args.Int("bad", 0)
	assert.True(t, tkerror.HasCode(err, tkerror.CodeInvalidInput))

	b, err := args.Bool("exact", true)
	require.NoError(t, err)
	assert.False(t, b)

	_, err = args.Bool("bad", false)
	assert.True(t, tkerror.HasCode(err, tkerror.CodeInvalidInput))

	assert.Equal(t, []string{"cat", "dog"}, args.List("phrases"))
	assert.Nil(t, args.List("missing"))
	assert.Equal(t, "fallback", args.String("missing", "fallback"))
	assert.True(t, args.Has("bad"))

	rest := args.Without("bad", "width")
	assert.NotContains(t, rest, "bad")
	assert.Contains(t, args, "bad", "Without must not modify the receiver")

	var nilArgs Args
	assert.Equal(t, "x", nilArgs.String("k", "x"))
	assert.False(t, nilArgs.Has("k"))
}
