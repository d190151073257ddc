package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("FORMAT_TIMEZONE", "UTC")

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestSizeCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Binary", []string{"size", "1234"}, "1.21KiB\n"},
		{"Decimal", []string{"size", "--decimal", "1234"}, "1.23KB\n"},
		{"Single", []string{"size", "1"}, "1byte\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		_, err := run(t, "", "size", "lots")
		assert.Error(t, err)
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := run(t, "", "size", "--", "-5")
		assert.Error(t, err)
	})
}

func TestTimeCmd(t *testing.T) {
	out, err := run(t, "", "time", "1565656565656565656")
	require.NoError(t, err)
	assert.Equal(t, "2019-08-13 00:36:05\n", out)

	_, err = run(t, "", "time", "--tz", "Nowhere/Special", "0")
	assert.Error(t, err)
}

func TestMoneyCmd(t *testing.T) {
	out, err := run(t, "", "money", "8901234567890")
	require.NoError(t, err)
	assert.Equal(t, "$89012345678.9\n", out)

	out, err = run(t, "", "money", "0")
	require.NoError(t, err)
	assert.Equal(t, "Free\n", out)

	out, err = run(t, "", "money", "--currency", "eur", "100")
	require.NoError(t, err)
	assert.Equal(t, "?\n", out)
}

func TestCapitalizeCmd(t *testing.T) {
	out, err := run(t, "", "capitalize", "hello", "world")
	require.NoError(t, err)
	assert.Equal(t, "Hello world\n", out)
}

func TestBase64Cmd(t *testing.T) {
	t.Run("EncodeStdin", func(t *testing.T) {
		out, err := run(t, "foobar", "base64", "encode")
		require.NoError(t, err)
		assert.Equal(t, "Zm9vYmFy\n", out)
	})

	t.Run("DecodeStdin", func(t *testing.T) {
		out, err := run(t, "Zm9vYmFy\n", "base64", "decode")
		require.NoError(t, err)
		assert.Equal(t, "foobar", out)
	})

	t.Run("URL", func(t *testing.T) {
		out, err := run(t, "\xfb\xff", "base64", "encode", "--url")
		require.NoError(t, err)
		assert.Equal(t, "-_8\n", out)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.txt")
		require.NoError(t, os.WriteFile(path, []byte("f"), 0o644))

		out, err := run(t, "", "base64", "encode", path)
		require.NoError(t, err)
		assert.Equal(t, "Zg==\n", out)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := run(t, "", "base64", "encode", filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})

	t.Run("Corrupt", func(t *testing.T) {
		_, err := run(t, "!!!!", "base64", "decode")
		assert.Error(t, err)
	})
}

func TestFilesCmd(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dst := filepath.Join(root, "dst")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0o755))

	_, err := run(t, "payload", "files", "write", filepath.Join(src, "sub", "a.txt"))
	require.NoError(t, err)

	out, err := run(t, "", "files", "read", filepath.Join(src, "sub", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "payload", out)

	_, err = run(t, "", "files", "copy", src, dst)
	require.NoError(t, err)

	out, err = run(t, "", "files", "read", filepath.Join(dst, "sub", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "payload", out)

	_, err = run(t, "", "files", "delete", dst)
	require.NoError(t, err)
	_, statErr := os.Stat(dst)
	assert.True(t, os.IsNotExist(statErr))

	_, err = run(t, "", "files", "read", filepath.Join(dst, "sub", "a.txt"))
	assert.Error(t, err)

	_, err = run(t, "", "files", "delete", dst)
	assert.NoError(t, err)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestCommands_ReportWriteErrors(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("FORMAT_TIMEZONE", "UTC")

	for _, args := range [][]string{
		{"size", "1234"},
		{"time", "1565656565656565656"},
		{"money", "1234"},
		{"capitalize", "hello"},
		{"base64", "encode"},
	} {
		t.Run(args[0], func(t *testing.T) {
			root := NewRootCmd()
			root.SetOut(brokenWriter{})
			root.SetErr(io.Discard)
			root.SetIn(strings.NewReader("payload"))
			root.SetArgs(args)

			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "broken pipe")
		})
	}
}
