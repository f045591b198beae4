package offload_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/calculus"
	"github.com/katalvlaran/numlab/internal/offload"
)

func TestGoAwait_Value(t *testing.T) {
	f := offload.Go(func() (float64, error) {
		return calculus.Integral(func(x float64) float64 { return x * x }, 0, 3)
	})

	got, err := f.Await()
	require.NoError(t, err)
	assert.InDelta(t, 9.0, got, 1e-9)

	// A second Await returns the same result.
	again, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestGoAwait_Error(t *testing.T) {
	boom := errors.New("boom")

	_, err := offload.Run(func() (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
}

// TestAwait_Concurrent checks that several waiters observe the same value.
func TestAwait_Concurrent(t *testing.T) {
	release := make(chan struct{})
	f := offload.Go(func() (string, error) {
		<-release
		return "done", nil
	})

	var wg sync.WaitGroup
	results := make([]string, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = f.Await()
		}(i)
	}
	close(release)
	wg.Wait()

	assert.Equal(t, []string{"done", "done", "done", "done"}, results)
}
