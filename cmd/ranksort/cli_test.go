package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tOgg1/ranksort/internal/rankcli"
)

func writeConfig(t *testing.T, dataDir string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ranksort.yaml")
	content := "store:\n  data_dir: " + dataDir + "\nlogging:\n  level: error\n  format: console\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCLI(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	fullArgs := append(args, "--config", configPath)
	cmd.SetArgs(fullArgs)
	err := cmd.Execute()
	return out.String(), err
}

func TestIngestThenRankCommandsSeeEachOther(t *testing.T) {
	dataDir := t.TempDir()
	cfg := writeConfig(t, dataDir)

	file := filepath.Join(t.TempDir(), "submission.txt")
	require.NoError(t, os.WriteFile(file, []byte("#ideas\n/write-docs { doc task }\n/fix-bug { bug task }\n:difficulty\n/fix-bug 10:1 /write-docs\n"), 0644))

	_, err := runCLI(t, cfg, "ingest", file, "--from", "u@e")
	require.NoError(t, err)

	out, err := runCLI(t, cfg, "hashtags")
	require.NoError(t, err)
	assert.Contains(t, out, "#ideas")
}

func TestIngestWithNoDSLContentFails(t *testing.T) {
	dataDir := t.TempDir()
	cfg := writeConfig(t, dataDir)

	file := filepath.Join(t.TempDir(), "submission.txt")
	require.NoError(t, os.WriteFile(file, []byte("just saying hello\n"), 0644))

	_, err := runCLI(t, cfg, "ingest", file)
	require.Error(t, err)
	var exitErr *rankcli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, rankcli.ExitCodeFailure, exitErr.Code)
}

func TestRankCommandReadsStandaloneFileWithoutLog(t *testing.T) {
	file := filepath.Join(t.TempDir(), "standalone.sorter")
	require.NoError(t, os.WriteFile(file, []byte("#ideas\n/a\n/b\n:impact\n/a > /b\n"), 0644))

	cmd := newRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"rank", file, "ideas", "impact"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "a")
	assert.Contains(t, out.String(), "b")
}

func TestRankCommandOnMissingFileExitsUsage(t *testing.T) {
	cmd := newRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"rank", "/no/such/file.sorter", "ideas", "impact"})
	err := cmd.Execute()
	require.Error(t, err)
	var exitErr *rankcli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, rankcli.ExitCodeUsage, exitErr.Code)
}

func TestCompareCommandReportsAggregateWeights(t *testing.T) {
	dataDir := t.TempDir()
	cfg := writeConfig(t, dataDir)

	file := filepath.Join(t.TempDir(), "submission.txt")
	require.NoError(t, os.WriteFile(file, []byte("#ideas\n/a\n/b\n:impact\n/a 2:5 /b\n"), 0644))
	_, err := runCLI(t, cfg, "ingest", file)
	require.NoError(t, err)

	out, err := runCLI(t, cfg, "compare", "a", "b", "impact")
	require.NoError(t, err)
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
	assert.Contains(t, out, "based on 1 vote(s)")
}

func TestCompareCommandWithUnknownItemFails(t *testing.T) {
	dataDir := t.TempDir()
	cfg := writeConfig(t, dataDir)

	_, err := runCLI(t, cfg, "compare", "ghost1", "ghost2", "impact")
	require.Error(t, err)
	var exitErr *rankcli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, rankcli.ExitCodeFailure, exitErr.Code)
}

func TestReplayCommandReportsCounts(t *testing.T) {
	dataDir := t.TempDir()
	cfg := writeConfig(t, dataDir)

	file := filepath.Join(t.TempDir(), "submission.txt")
	require.NoError(t, os.WriteFile(file, []byte("#ideas\n/a\n"), 0644))
	_, err := runCLI(t, cfg, "ingest", file)
	require.NoError(t, err)

	out, err := runCLI(t, cfg, "replay")
	require.NoError(t, err)
	assert.Contains(t, out, "replayed 1/1 record(s)")
}

func TestIngestJSONOutputIsValidEnvelope(t *testing.T) {
	dataDir := t.TempDir()
	cfg := writeConfig(t, dataDir)

	file := filepath.Join(t.TempDir(), "submission.txt")
	require.NoError(t, os.WriteFile(file, []byte("#ideas\n/a\n"), 0644))

	out, err := runCLI(t, cfg, "ingest", file, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, "\"accepted_statements\"")
	assert.Contains(t, out, "\"source_filename\"")
}
