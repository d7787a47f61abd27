package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJobPosting = `Senior Go Engineer
Company: Initech
Location: Remote

We are looking for a senior backend engineer to join our platform team.

Requirements:
- 5+ years of experience with Go
- PostgreSQL
- Docker and Kubernetes

Nice to have:
- Terraform
`

func TestIngestJobCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "ingest-job")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --text-file or --url must be provided")
}

func TestIngestJobCommand_BothFlagsProvided(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "job.txt")
	err := os.WriteFile(testFile, []byte(sampleJobPosting), 0644)
	require.NoError(t, err)

	cmd := exec.Command(binaryPath, "ingest-job", "--text-file", testFile, "--url", "https://example.com/jobs/1")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestIngestJobCommand_InvalidTextFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "ingest-job", "--text-file", "/nonexistent/job.txt")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read text file")
}

func TestIngestJobCommand_InvalidURL(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "ingest-job", "--url", "not-a-url")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid url")
}

func TestIngestJobCommand_EmptyTextFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "empty.txt")
	err := os.WriteFile(testFile, []byte("   \n\t\n"), 0644)
	require.NoError(t, err)

	cmd := exec.Command(binaryPath, "ingest-job", "--text-file", testFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no readable text")
}

func TestIngestJobCommand_WritesOutputFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "job.txt")
	err := os.WriteFile(testFile, []byte(sampleJobPosting), 0644)
	require.NoError(t, err)

	outFile := filepath.Join(tmpDir, "job.json")

	cmd := exec.Command(binaryPath, "ingest-job", "--text-file", testFile, "--out", outFile)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "Successfully ingested job posting")

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"title"`)
	assert.Contains(t, string(content), "Senior Go Engineer")
}

func TestIngestJobCommand_PrintsJSONToStdout(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "job.txt")
	err := os.WriteFile(testFile, []byte(sampleJobPosting), 0644)
	require.NoError(t, err)

	cmd := exec.Command(binaryPath, "ingest-job", "--text-file", testFile)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), `"title"`)
	assert.Contains(t, string(output), "Initech")
}

func TestIngestJobCommand_SaveRequiresDatabaseURL(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "job.txt")
	err := os.WriteFile(testFile, []byte(sampleJobPosting), 0644)
	require.NoError(t, err)

	cmd := exec.Command(binaryPath, "ingest-job", "--text-file", testFile, "--save")
	cmd.Env = envWithout("DATABASE_URL")

	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "DATABASE_URL required when using --save")
}

func TestIngestJobCommand_SaveToDatabase(t *testing.T) {
	t.Skip("Skipping - requires a PostgreSQL instance with test fixtures")
}
