package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AquaponicsSim_Go/internal/simulation"
)

func testBatch() *simulation.Batch {
	results := []simulation.GameResult{
		{GameID: 0, Strategy: "conservative", Outcome: simulation.OutcomeTimeLimit, Duration: 365, ExecutionTimeMs: 12, FinalState: simulation.FinalState{Money: 12345.5}},
		{GameID: 1, Strategy: "aggressive", Outcome: simulation.OutcomeBankruptcy, Duration: 80, ExecutionTimeMs: 8, FinalState: simulation.FinalState{Money: -700}},
		{GameID: 2, Strategy: "conservative", Outcome: simulation.OutcomeTimeLimit, Duration: 365, ExecutionTimeMs: 10, FinalState: simulation.FinalState{Money: 4000}},
	}
	cfg := simulation.DefaultConfig()
	cfg.Seed = 7
	return &simulation.Batch{
		Config:         cfg,
		Timestamp:      time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
		TotalGames:     len(results),
		AggregateStats: simulation.Aggregate(results),
		Results:        results,
	}
}

func TestSummaryWriter(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewSummaryWriter(&buf).Export(context.Background(), testBatch()))

	out := buf.String()
	assert.Contains(t, out, "Total games: 3\n")
	assert.Contains(t, out, "Avg execution time: 10.00 ms")
	assert.Contains(t, out, "  Time Limit: 2 (66.7%)")
	assert.Contains(t, out, "  Bankruptcy: 1 (33.3%)")
	assert.Contains(t, out, "  Conservative: 2 games, avg 365.0 days, avg $8,172.75")
	assert.Contains(t, out, "  Aggressive: 1 games, avg 80.0 days, avg $-700.00")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Aggressive")), bytes.Index(buf.Bytes(), []byte("Conservative")))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSummaryWriter_WriteError(t *testing.T) {
	err := NewSummaryWriter(failingWriter{}).Export(context.Background(), testBatch())
	assert.EqualError(t, err, "disk full")
}

func TestFileExporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")

	require.NoError(t, NewFileExporter(path).Export(context.Background(), testBatch()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.EqualValues(t, 3, doc["total_games"])
	assert.Contains(t, doc, "aggregate_stats")
	assert.Contains(t, doc, "config")
	assert.Len(t, doc["results"], 3)
}

func TestFileExporter_BadPath(t *testing.T) {
	err := NewFileExporter(filepath.Join(t.TempDir(), "missing", "results.json")).Export(context.Background(), testBatch())
	assert.Error(t, err)
}

// fakeS3 records PUT requests in memory
type fakeS3 struct {
	mu      sync.Mutex
	puts    map[string][]byte
	headers map[string]http.Header
}

func (f *fakeS3) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodPut {
		return &http.Response{StatusCode: http.StatusNotImplemented, Body: io.NopCloser(bytes.NewReader(nil)), Header: http.Header{}}, nil
	}
	body, _ := io.ReadAll(req.Body)
	f.mu.Lock()
	f.puts[req.URL.Path] = body
	f.headers[req.URL.Path] = req.Header.Clone()
	f.mu.Unlock()
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewReader(nil)), Header: http.Header{"Etag": {"\"etag\""}}}, nil
}

func newFakeS3Exporter(t *testing.T) (*S3Exporter, *fakeS3) {
	t.Helper()
	fake := &fakeS3{puts: make(map[string][]byte), headers: make(map[string]http.Header)}
	exp, err := NewS3Exporter(context.Background(), S3Config{
		Bucket:          "reports",
		Region:          "us-east-1",
		Endpoint:        "https://mock.s3.local",
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
		PathStyle:       true,
	}, func(o *s3.Options) {
		o.HTTPClient = &http.Client{Transport: fake}
	})
	require.NoError(t, err)
	return exp, fake
}

func TestS3Exporter(t *testing.T) {
	exp, fake := newFakeS3Exporter(t)
	batch := testBatch()

	require.NoError(t, exp.Export(context.Background(), batch))

	key := "simulations/simulation-20260301T123000Z-seed7.json"
	assert.Equal(t, key, exp.Key(batch))

	body, ok := fake.puts["/reports/"+key]
	require.True(t, ok, "object uploaded under bucket path")
	assert.Contains(t, string(body), `"total_games": 3`)
	assert.Equal(t, ContentTypeJSON, fake.headers["/reports/"+key].Get("Content-Type"))
}

func TestNewS3Exporter_RequiresBucket(t *testing.T) {
	_, err := NewS3Exporter(context.Background(), S3Config{})
	assert.EqualError(t, err, ErrMsgBucketRequired)
}

type exporterFunc func(ctx context.Context, b *simulation.Batch) error

func (f exporterFunc) Export(ctx context.Context, b *simulation.Batch) error { return f(ctx, b) }

func TestExportAll(t *testing.T) {
	var calls int32
	var mu sync.Mutex
	ok := exporterFunc(func(context.Context, *simulation.Batch) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil
	})

	require.NoError(t, ExportAll(context.Background(), testBatch(), ok, ok))
	assert.Equal(t, int32(2), calls)

	boom := errors.New("upload failed")
	err := ExportAll(context.Background(), testBatch(), ok, exporterFunc(func(context.Context, *simulation.Batch) error { return boom }))
	assert.ErrorIs(t, err, boom)
}
