package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/filemap-go/filemap"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}

	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestGet(t *testing.T) {
	out, err := execute(t, "", "get", "../testdata/default.txt", "width")
	require.NoError(t, err)
	assert.Equal(t, "1920\n", out)
}

func TestGet_MissingKey(t *testing.T) {
	_, err := execute(t, "", "get", "../testdata/default.txt", "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `key "42" not found`)
}

func TestGet_Separators(t *testing.T) {
	out, err := execute(t, "", "get", "--pair-sep", ":)", "--kv-sep", "SEP", "../testdata/separators_change.txt", "hey")
	require.NoError(t, err)
	assert.Equal(t, "hoi\n", out)
}

func TestGet_EscapedSeparator(t *testing.T) {
	out, err := execute(t, "a=1\tb=2", "get", "--pair-sep", `\t`, "-", "b")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestGet_EnvSeparators(t *testing.T) {
	t.Setenv(pairSepEnv, "SEP")

	out, err := execute(t, "", "get", "../testdata/pair_sep.txt", "height")
	require.NoError(t, err)
	assert.Equal(t, "1080\n", out)
}

func TestGet_FlagBeatsEnv(t *testing.T) {
	t.Setenv(keyValueSepEnv, "SEP")

	out, err := execute(t, "", "get", "--kv-sep", "=", "../testdata/default.txt", "height")
	require.NoError(t, err)
	assert.Equal(t, "1080\n", out)
}

func TestDump(t *testing.T) {
	out, err := execute(t, "", "dump", "../testdata/default.txt")
	require.NoError(t, err)
	assert.Equal(t, "height=1080\nwidth=1920\n", out)
}

func TestDump_JSON(t *testing.T) {
	out, err := execute(t, "", "dump", "--json", "../testdata/default.txt")
	require.NoError(t, err)
	assert.JSONEq(t, `{"width":"1920","height":"1080"}`, out)
}

func TestKeys(t *testing.T) {
	out, err := execute(t, "", "keys", "../testdata/default.txt")
	require.NoError(t, err)
	assert.Equal(t, "height\nwidth\n", out)
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "", "check", "../testdata/default.txt")
	require.NoError(t, err)
	assert.Equal(t, "../testdata/default.txt: 2 entries\n", out)

	_, err = execute(t, "", "check", "../testdata/missing_sep.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `cannot find "=" in "height"`)
}

func TestCheck_Strict(t *testing.T) {
	_, err := execute(t, "a=1\na=2\n", "check", "--strict", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
}

func TestGet_RawSeparator(t *testing.T) {
	out, err := execute(t, "a\\b1\nc\\b2", "get", "--raw-sep", "--kv-sep", `\b`, "-", "c")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = execute(t, `a"1`, "get", "--raw-sep", "--kv-sep", `"`, "-", "a")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = execute(t, `a"1`, "get", "--kv-sep", `"`, "-", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid separator")
}

func TestGet_InvalidUTF8Stdin(t *testing.T) {
	_, err := execute(t, "width=\xff\xfe", "get", "-", "width")
	require.Error(t, err)
	assert.True(t, errors.Is(err, filemap.ErrInvalidUTF8))
}

func TestDecodeSeparator(t *testing.T) {
	tests := map[string]string{
		`\n`:   "\n",
		`\r\n`: "\r\n",
		`\t`:   "\t",
		"SEP":  "SEP",
		"->":   "->",
	}

	for in, want := range tests {
		got, err := decodeSeparator(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	_, err := decodeSeparator(`\q`)
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "v"))
}
