package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	resetFlags(rootCmd)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersionFlag(t *testing.T) {
	output, err := executeCommand("--version")
	require.NoError(t, err)
	assert.Contains(t, output, "envread")
}

func TestHelpFlag(t *testing.T) {
	output, err := executeCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, output, "envread")
}

func TestCatCommand(t *testing.T) {
	path := writeTempFile(t, ".env", "KEY=VALUE\n")

	output, err := executeCommand("cat", path)
	require.NoError(t, err)
	assert.Equal(t, "KEY=VALUE\n", output)
}

func TestCatNoTrailingNewline(t *testing.T) {
	path := writeTempFile(t, ".env", "KEY=VALUE")

	output, err := executeCommand("cat", path)
	require.NoError(t, err)
	assert.Equal(t, "KEY=VALUE", output, "cat must not add a trailing newline")
}

func TestCatMissingFile(t *testing.T) {
	_, err := executeCommand("cat", filepath.Join(t.TempDir(), ".env"))
	assert.Error(t, err)
}

func TestCatLegacy(t *testing.T) {
	t.Run("missing file degrades to empty output", func(t *testing.T) {
		output, err := executeCommand("cat", "--legacy", filepath.Join(t.TempDir(), ".env"))
		assert.NoError(t, err)
		assert.Contains(t, output, "unable to open")
	})

	t.Run("existing file prints content", func(t *testing.T) {
		path := writeTempFile(t, ".env", "KEY=VALUE\n")
		output, err := executeCommand("cat", "--legacy", path)
		assert.NoError(t, err)
		assert.Equal(t, "KEY=VALUE\n", output)
	})
}

func TestCatDefaultPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("KEY=VALUE\n"), 0o600))
	chdir(t, dir)

	output, err := executeCommand("cat")
	require.NoError(t, err)
	assert.Equal(t, "KEY=VALUE\n", output)
}

func TestCheckCommand(t *testing.T) {
	path := writeTempFile(t, ".env", "KEY=VALUE\nDATABASE_URL=postgres://x\n")
	empty := writeTempFile(t, ".env", "")

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"existing file", []string{"check", path}, false},
		{"missing file", []string{"check", filepath.Join(t.TempDir(), ".env")}, true},
		{"not-empty passes", []string{"check", "--not-empty", path}, false},
		{"not-empty fails on empty file", []string{"check", "--not-empty", empty}, true},
		{"min-size passes", []string{"check", "--min-size", "10", path}, false},
		{"min-size fails", []string{"check", "--min-size", "10000", path}, true},
		{"contains passes", []string{"check", "--contains", "DATABASE_URL", path}, false},
		{"contains fails", []string{"check", "--contains", "MISSING", path}, true},
		{"match passes", []string{"check", "--match", "(?m)^KEY=", path}, false},
		{"match fails", []string{"check", "--match", "^NOPE=", path}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(tt.args...)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCheckFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHashCommand(t *testing.T) {
	path := writeTempFile(t, ".env", "KEY=VALUE\n")

	// sha256 of "KEY=VALUE\n"
	const want = "2a393c1fc8556a4c1cb671983d157c50b3da73c9153c52d55a26ac3b040eff7d"

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"compute digest", []string{"hash", path}, false},
		{"verify matching digest", []string{"hash", "--expect", want, path}, false},
		{"verify wrong digest", []string{"hash", "--expect", "0000000000000000000000000000000000000000000000000000000000000000", path}, true},
		{"blake3 digest", []string{"hash", "--algo", "blake3", path}, false},
		{"unsupported algorithm", []string{"hash", "--algo", "crc32", path}, true},
		{"missing file", []string{"hash", filepath.Join(t.TempDir(), ".env")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(tt.args...)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCheckFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFindCommand(t *testing.T) {
	t.Run("finds .env in working directory", func(t *testing.T) {
		dir := t.TempDir()
		envPath := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(envPath, []byte("KEY=VALUE\n"), 0o600))
		chdir(t, dir)

		output, err := executeCommand("find")
		require.NoError(t, err)
		assert.Contains(t, output, ".env")
	})

	t.Run("fails when no .env up to the repo root", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o700))
		chdir(t, dir)

		_, err := executeCommand("find")
		assert.Error(t, err)
	})

	t.Run("explicit file", func(t *testing.T) {
		path := writeTempFile(t, ".env", "KEY=VALUE\n")
		output, err := executeCommand("find", "--file", path)
		require.NoError(t, err)
		assert.Contains(t, output, path)
	})
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
