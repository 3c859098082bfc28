package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "hashsum/internal/errors"
	"hashsum/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloDigest = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

func newTestRoot(out, errOut io.Writer, in io.Reader) *RootCommand {
	return NewRootCommand(out, errOut, in, logging.New(io.Discard, slog.LevelInfo))
}

func TestRootCommandIncludesRequiredSubcommands(t *testing.T) {
	t.Parallel()

	root := newTestRoot(&bytes.Buffer{}, &bytes.Buffer{}, strings.NewReader(""))

	names := map[string]bool{}
	for _, command := range root.Commands() {
		names[command.Name()] = true
	}
	for _, required := range []string{"version", "sum"} {
		assert.True(t, names[required], "expected root command to include %q subcommand", required)
	}
}

func TestHelpMentionsCommandsAndFlags(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	root := newTestRoot(out, &bytes.Buffer{}, strings.NewReader(""))
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())
	for _, token := range []string{"sum", "version", "--string", "--progress", "--verbose"} {
		assert.Contains(t, out.String(), token)
	}
}

func TestSumFilePrintsDigestLine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	out := &bytes.Buffer{}
	root := newTestRoot(out, &bytes.Buffer{}, strings.NewReader(""))
	root.SetArgs([]string{path})

	require.NoError(t, root.Execute())
	assert.Equal(t, helloDigest+"  "+path+"\n", out.String())
}

func TestSumReadsStdinWhenNoOperands(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	root := newTestRoot(out, &bytes.Buffer{}, strings.NewReader("hello"))
	root.SetArgs(nil)

	require.NoError(t, root.Execute())
	assert.Equal(t, helloDigest+"  -\n", out.String())
}

func TestStringFlagHashesOperandsLiterally(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	root := newTestRoot(out, &bytes.Buffer{}, strings.NewReader(""))
	root.SetArgs([]string{"--string", "hello"})

	require.NoError(t, root.Execute())
	assert.Equal(t, helloDigest+"  hello\n", out.String())
}

func TestStringFlagRequiresOperand(t *testing.T) {
	t.Parallel()

	root := newTestRoot(&bytes.Buffer{}, &bytes.Buffer{}, strings.NewReader(""))
	root.SetArgs([]string{"--string"})

	err := root.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUsage)
}

func TestMissingFileStillHashesRemaining(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(good, []byte("hello"), 0o600))
	missing := filepath.Join(dir, "missing.txt")

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root := newTestRoot(out, errOut, strings.NewReader(""))
	root.SetArgs([]string{"sum", missing, good})

	err := root.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrIO)
	assert.Contains(t, out.String(), helloDigest+"  "+good)
	assert.Contains(t, errOut.String(), "hashsum:")
}

func TestProgressFlagReportsOnStderrOnly(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root := newTestRoot(out, errOut, strings.NewReader(""))
	root.SetArgs([]string{"--progress", path})

	require.NoError(t, root.Execute())
	assert.Equal(t, helloDigest+"  "+path+"\n", out.String())
	assert.Contains(t, errOut.String(), "hashed "+path)
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	t.Parallel()

	root := newTestRoot(&bytes.Buffer{}, &bytes.Buffer{}, strings.NewReader(""))
	root.SetArgs([]string{"--bogus"})

	err := root.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUsage)
}
