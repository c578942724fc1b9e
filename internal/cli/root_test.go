package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/permute/internal/config"
	"github.com/JonMunkholm/permute/internal/core"
	"github.com/JonMunkholm/permute/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Logging: config.LoggingConfig{Level: "debug", Format: "text"},
		Shuffle: config.ShuffleConfig{Seed: core.DefaultSeed},
	}
}

// runCommand executes the root command and returns stdout and log output.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logging.New(&logs, "debug", "text"))
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(testConfig(), &stdout)
	cmd.SetArgs(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), logs.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRoot_Success(t *testing.T) {
	in := writeInput(t, "in.csv", "a,b,c\n1,2,3\n4,5,6\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	stdout, logs, err := runCommand(t, in, out, "--header")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Successfully permuted data from "+in+" to "+out, lines[0])
	assert.Equal(t, "To reproduce this run: permute "+in+" "+out+" --file_type csv --header --delimiter ','", lines[1])

	assert.Contains(t, logs, "run_id=")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "a,b,c\n"))
}

func TestRoot_HeaderDefaultsOff(t *testing.T) {
	in := writeInput(t, "in.csv", "1,2,3\n4,5,6\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	_, _, err := runCommand(t, in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0,1,2", lines[0])
}

func TestRoot_Delimiter(t *testing.T) {
	in := writeInput(t, "in.csv", "a;b\n1;2\n3;4\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	stdout, _, err := runCommand(t, in, out, "--header", "--delimiter", ";")
	require.NoError(t, err)
	assert.Contains(t, stdout, "--delimiter ';'")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "a;b\n"))
}

func TestRoot_MissingInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "missing.csv")
	out := filepath.Join(dir, "out.csv")

	stdout, logs, err := runCommand(t, in, out)
	require.ErrorIs(t, err, ErrPermutationFailed)

	assert.Equal(t, "Data permutation failed. See logs for details.\n", stdout)
	assert.Contains(t, logs, "input file not found: "+in)
	assert.Contains(t, logs, "code=FILE001")
	assert.Contains(t, logs, "(Code: FILE001)")
	assert.Contains(t, logs, "data permutation failed")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRoot_InvalidFileType(t *testing.T) {
	in := writeInput(t, "in.csv", "a\n1\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	stdout, _, err := runCommand(t, in, out, "--file_type", "json")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPermutationFailed)
	assert.Contains(t, err.Error(), "--file_type")
	assert.Empty(t, stdout)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRoot_WrongArgCount(t *testing.T) {
	_, _, err := runCommand(t, "only-one.csv")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPermutationFailed)
}

func TestRoot_SeedChangesReproduceLine(t *testing.T) {
	in := writeInput(t, "in.csv", "a\n1\n2\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	stdout, _, err := runCommand(t, in, out, "--header", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "--seed 7")
}

func TestReproduceCommand(t *testing.T) {
	tests := []struct {
		name string
		req  core.Request
		want string
	}{
		{
			name: "defaults",
			req:  core.Request{InputPath: "in.csv", OutputPath: "out.csv", FileType: "csv", Delimiter: ",", Seed: 42},
			want: "permute in.csv out.csv --file_type csv --delimiter ','",
		},
		{
			name: "header and custom seed",
			req:  core.Request{InputPath: "in.xlsx", OutputPath: "out.xlsx", FileType: "excel", Header: true, Delimiter: ",", Seed: 1},
			want: "permute in.xlsx out.xlsx --file_type excel --header --delimiter ',' --seed 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReproduceCommand(tt.req, 42))
		})
	}
}
