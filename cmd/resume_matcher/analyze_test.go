package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetCommandFlags restores every flag to its default so tests do not leak
// sticky flag state into each other.
func resetCommandFlags(t *testing.T) {
	t.Helper()
	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
}

func executeCommand(t *testing.T, args ...string) error {
	t.Helper()
	resetCommandFlags(t)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestAnalyzeCommand_RequiresResume(t *testing.T) {
	err := executeCommand(t, "analyze")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--resume is required")
}

func TestAnalyzeCommand_RequiresJobOrURL(t *testing.T) {
	tmpDir := t.TempDir()
	resumePath := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("resume"), 0644))

	err := executeCommand(t, "analyze", "--resume", resumePath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --job or --job-url must be provided")
}

func TestAnalyzeCommand_JobAndJobURLMutuallyExclusive(t *testing.T) {
	tmpDir := t.TempDir()
	resumePath := filepath.Join(tmpDir, "resume.txt")
	jobPath := filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("resume"), 0644))
	require.NoError(t, os.WriteFile(jobPath, []byte("job"), 0644))

	err := executeCommand(t, "analyze",
		"--resume", resumePath,
		"--job", jobPath,
		"--job-url", "https://example.com/job")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestAnalyzeCommand_InvalidThreshold(t *testing.T) {
	tmpDir := t.TempDir()
	resumePath := filepath.Join(tmpDir, "resume.txt")
	jobPath := filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("resume"), 0644))
	require.NoError(t, os.WriteFile(jobPath, []byte("job"), 0644))

	err := executeCommand(t, "analyze",
		"--resume", resumePath,
		"--job", jobPath,
		"--threshold", "1.5")

	require.Error(t, err)
}

func TestAnalyzeCommand_LocalAnalysisSucceeds(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	tmpDir := t.TempDir()
	resumePath := filepath.Join(tmpDir, "resume.txt")
	jobPath := filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(resumePath,
		[]byte("Senior Python engineer with Django experience."), 0644))
	require.NoError(t, os.WriteFile(jobPath,
		[]byte("Looking for a Python developer with PostgreSQL."), 0644))

	err := executeCommand(t, "analyze",
		"--resume", resumePath,
		"--job", jobPath,
		"--json")

	assert.NoError(t, err)
}

func TestAnalyzeCommand_LogFlags(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	tmpDir := t.TempDir()
	resumePath := filepath.Join(tmpDir, "resume.txt")
	jobPath := filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("Python engineer"), 0644))
	require.NoError(t, os.WriteFile(jobPath, []byte("Python role"), 0644))

	err := executeCommand(t, "analyze",
		"--resume", resumePath,
		"--job", jobPath,
		"--json",
		"--log-json",
		"--debug")

	assert.NoError(t, err)
}

func TestAnalyzeCommand_ConfigFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	tmpDir := t.TempDir()
	resumePath := filepath.Join(tmpDir, "resume.txt")
	jobPath := filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("Go engineer"), 0644))
	require.NoError(t, os.WriteFile(jobPath, []byte("Go role"), 0644))

	configPath := filepath.Join(tmpDir, "config.json")
	configJSON := `{"resume": "` + resumePath + `", "job": "` + jobPath + `", "json": true}`
	require.NoError(t, os.WriteFile(configPath, []byte(configJSON), 0644))

	err := executeCommand(t, "analyze", "--config", configPath)

	assert.NoError(t, err)
}
