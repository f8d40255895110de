package stats_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zestagio/download-service/internal/stats"
)

func TestRecorder(t *testing.T) {
	r := stats.NewRecorder([]string{"a.zip", "b.zip"})

	r.IndexRendered()
	r.IndexRendered()
	r.Download("a.zip", 100)
	r.Download("a.zip", 150)
	r.Download("unknown.zip", 1000)

	s := r.Snapshot()
	assert.EqualValues(t, 2, s.IndexRenders)

	require.Contains(t, s.Archives, "a.zip")
	assert.EqualValues(t, 2, s.Archives["a.zip"].Downloads)
	assert.EqualValues(t, 250, s.Archives["a.zip"].Bytes)

	require.Contains(t, s.Archives, "b.zip")
	assert.EqualValues(t, 0, s.Archives["b.zip"].Downloads)

	assert.NotContains(t, s.Archives, "unknown.zip")
}

func TestRecorder_Concurrent(t *testing.T) {
	r := stats.NewRecorder([]string{"a.zip"})

	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				r.Download("a.zip", 1)
				r.IndexRendered()
			}
		}()
	}
	wg.Wait()

	s := r.Snapshot()
	assert.EqualValues(t, workers*perWorker, s.IndexRenders)
	assert.EqualValues(t, workers*perWorker, s.Archives["a.zip"].Downloads)
	assert.EqualValues(t, workers*perWorker, s.Archives["a.zip"].Bytes)
}
