package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrettyLayout(t *testing.T) {
	var buf strings.Builder
	err := Pretty(&buf, []string{"aa", "bbb", "c"}, &PrettyConf{Width: 12})
	require.Nil(t, err)
	require.Equal(t, "aa   bbb\nc\n", buf.String())
}

func TestPrettySingleLine(t *testing.T) {
	var buf strings.Builder
	err := Pretty(&buf, []string{"aa", "bbb", "c"}, nil)
	require.Nil(t, err)
	require.Equal(t, "aa   bbb  c\n", buf.String())
}

func TestPrettyHidesUnderscore(t *testing.T) {
	var buf strings.Builder
	err := Pretty(&buf, []string{"_hidden", "shown", "hidden_"}, nil)
	require.Nil(t, err)
	require.Equal(t, "shown\n", buf.String())
}

func TestPrettyShowUnderscore(t *testing.T) {
	var buf strings.Builder
	err := Pretty(&buf, []string{"_kept", "kept"}, &PrettyConf{ShowUnderscore: true})
	require.Nil(t, err)
	require.True(t, strings.Contains(buf.String(), "_kept"))
}

func TestPrettyAllHidden(t *testing.T) {
	var buf strings.Builder
	err := Pretty(&buf, []string{"_a", "b_"}, nil)
	require.Nil(t, err)
	require.Equal(t, "", buf.String())
}
