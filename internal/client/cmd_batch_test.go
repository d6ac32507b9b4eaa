package client

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-idiotic-api/idiotic"
	"github.com/MKhiriev/go-idiotic-api/internal/workers"
	"github.com/MKhiriev/go-idiotic-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const batchYAML = `jobs:
  - name: blame-bob
    endpoint: blame
    params:
      name: bob
  - endpoint: triggered
    params:
      avatar: http://a
    output: trig.png
`

func writeBatch(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBatch_WritesResults(t *testing.T) {
	ta := newTestApp(t, models.Production)
	outDir := t.TempDir()

	ta.gen.EXPECT().Call(gomock.Any(), "blame", idiotic.Params{"name": "bob"}).
		Return(models.Result{Kind: models.BinaryImage, Data: []byte{1}}, nil)
	ta.gen.EXPECT().Call(gomock.Any(), "triggered", idiotic.Params{"avatar": "http://a"}).
		Return(models.Result{Kind: models.BinaryImage, Data: []byte{2, 2}}, nil)

	err := ta.run("--token", "t", "batch", writeBatch(t, batchYAML), "--out", outDir, "--concurrency", "2")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(outDir, "blame-bob.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, got)

	got, err = os.ReadFile(filepath.Join(outDir, "trig.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 2}, got)

	assert.Contains(t, ta.out.String(), "blame-bob")
	assert.Contains(t, ta.out.String(), "002-triggered")
	assert.Equal(t, 1, ta.closer.n)
}

func TestBatch_ReportsFailures(t *testing.T) {
	ta := newTestApp(t, models.Production)

	ta.gen.EXPECT().Call(gomock.Any(), "blame", gomock.Any()).
		Return(models.Result{Kind: models.BinaryImage, Data: []byte{1}}, nil)
	ta.gen.EXPECT().Call(gomock.Any(), "triggered", gomock.Any()).
		Return(models.Result{}, &idiotic.RemoteRequestError{Endpoint: "triggered", StatusCode: 500})

	err := ta.run("--token", "t", "batch", writeBatch(t, batchYAML), "-o", t.TempDir())

	require.Error(t, err)
	assert.True(t, IsBatchFailure(err))
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, ta.out.String(), "FAIL")
}

func TestBatch_EmptyFile(t *testing.T) {
	ta := newTestApp(t, models.Production)

	err := ta.run("--token", "t", "batch", writeBatch(t, "jobs: []\n"))

	require.ErrorIs(t, err, workers.ErrNoJobs)
	assert.Zero(t, ta.factory)
}

func TestBatch_MissingFile(t *testing.T) {
	ta := newTestApp(t, models.Production)

	err := ta.run("--token", "t", "batch", filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrBatchFailed))
}
