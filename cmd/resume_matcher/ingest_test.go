package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestCommand_RequiresFileOrURL(t *testing.T) {
	err := executeCommand(t, "ingest")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --file or --url must be provided")
}

func TestIngestCommand_FileAndURLMutuallyExclusive(t *testing.T) {
	err := executeCommand(t, "ingest", "--file", "job.txt", "--url", "https://example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestIngestCommand_WritesOutputFiles(t *testing.T) {
	tmpDir := t.TempDir()
	jobPath := filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath,
		[]byte("# Senior Engineer\n\n- Go experience\n- Distributed systems"), 0644))

	outDir := filepath.Join(tmpDir, "out")
	err := executeCommand(t, "ingest", "--file", jobPath, "--out", outDir)
	require.NoError(t, err)

	cleaned, err := os.ReadFile(filepath.Join(outDir, "job_posting.cleaned.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(cleaned), "Senior Engineer")

	meta, err := os.ReadFile(filepath.Join(outDir, "job_posting.meta.json"))
	require.NoError(t, err)
	assert.Contains(t, string(meta), "hash")
}

func TestIngestCommand_ExtractionFailure(t *testing.T) {
	tmpDir := t.TempDir()
	badPDF := filepath.Join(tmpDir, "job.pdf")
	require.NoError(t, os.WriteFile(badPDF, []byte("not a pdf"), 0644))

	err := executeCommand(t, "ingest", "--file", badPDF)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not extract text")
}
