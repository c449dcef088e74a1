package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCommand()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRoot_StdinByDefault(t *testing.T) {
	stdout, stderr, err := runCommand(t, "hello world\n")
	require.NoError(t, err)
	require.Equal(t, "       1       2      12\n", stdout)
	require.Empty(t, stderr)
}

func TestRoot_SingleFile(t *testing.T) {
	path := writeTempFile(t, "fox.txt", "I don't want the world. I just want your half.\r\n")

	stdout, stderr, err := runCommand(t, "", path)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("       1      10      48 %s\n", path), stdout)
	require.Empty(t, stderr)
}

func TestRoot_MultipleFilesWithTotal(t *testing.T) {
	a := writeTempFile(t, "a.txt", "one two\n")
	b := writeTempFile(t, "b.txt", "three four five\n")

	stdout, _, err := runCommand(t, "", a, b)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "       2       5      24 total", lines[2])
}

func TestRoot_LinesFlagOnly(t *testing.T) {
	path := writeTempFile(t, "in.txt", "one\ntwo\nthree\n")

	stdout, _, err := runCommand(t, "", "-l", path)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("       3 %s\n", path), stdout)
}

func TestRoot_CharsFlag(t *testing.T) {
	path := writeTempFile(t, "in.txt", "héllo\n")

	stdout, _, err := runCommand(t, "", "--chars", path)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("       6 %s\n", path), stdout)
}

func TestRoot_MaxLineLengthFlag(t *testing.T) {
	path := writeTempFile(t, "in.txt", "short\na much longer line here\n")

	stdout, _, err := runCommand(t, "", "-L", path)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("      23 %s\n", path), stdout)
}

func TestRoot_CharsAndBytesConflict(t *testing.T) {
	path := writeTempFile(t, "in.txt", "never read\n")

	stdout, _, err := runCommand(t, "", "--chars", "--bytes", path)
	require.ErrorContains(t, err, "mutually exclusive")
	require.Empty(t, stdout)
}

func TestRoot_MissingFileAmongGoodOnes(t *testing.T) {
	good := writeTempFile(t, "good.txt", "one two\n")
	missing := filepath.Join(t.TempDir(), "missing.txt")

	stdout, stderr, err := runCommand(t, "", missing, good)
	require.NoError(t, err)

	require.Contains(t, stderr, missing+": ")
	want := fmt.Sprintf("       1       2       8 %s\n       1       2       8 total\n", good)
	require.Equal(t, want, stdout)
}

func TestRoot_GzipSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("one two three\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	stdout, stderr, err := runCommand(t, "", path)
	require.NoError(t, err)
	require.Empty(t, stderr)
	// Counts apply to the decompressed content.
	require.Equal(t, fmt.Sprintf("       1       3      14 %s\n", path), stdout)
}

func TestRoot_DefaultsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".wcr.yaml"), []byte("defaults:\n  counts: [lines]\n"), 0o644))
	t.Chdir(dir)

	stdout, _, err := runCommand(t, "ignored words here\n")
	require.NoError(t, err)
	require.Equal(t, "       1\n", stdout)
}

func TestRoot_StdinDashMixedWithFiles(t *testing.T) {
	path := writeTempFile(t, "in.txt", "a b\n")

	stdout, _, err := runCommand(t, "x\n", path, "-")
	require.NoError(t, err)

	// The stdin line carries no identifier; the total still prints.
	want := fmt.Sprintf("       1       2       4 %s\n       1       1       2\n       2       3       6 total\n", path)
	require.Equal(t, want, stdout)
}
