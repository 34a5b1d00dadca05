package systems

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

func TestNewJobSystemRejectsBadSizes(t *testing.T) {
	_, err := NewJobSystem(0, 1)
	assert.ErrorIs(t, err, ErrNoWorkers)
	_, err = NewJobSystem(1, -1)
	assert.ErrorIs(t, err, ErrNegativeChannelSize)
}

func TestJobSystemRunsCallbacks(t *testing.T) {
	js, err := NewJobSystem(3, 4)
	require.NoError(t, err)

	var completed, failed, finished atomic.Int32
	boom := errors.New("boom")
	for i := 0; i < 20; i++ {
		fail := i%4 == 0
		require.NoError(t, js.Submit(metadata.JobTask{
			Name: "job",
			OnStart: func() error {
				if fail {
					return boom
				}
				return nil
			},
			OnComplete: func() { completed.Add(1) },
			OnFailure: func(err error) {
				if errors.Is(err, boom) {
					failed.Add(1)
				}
			},
			OnCompletionCallback: func() { finished.Add(1) },
		}))
	}

	// Shutdown drains the queue.
	require.NoError(t, js.Shutdown())
	assert.Equal(t, int32(15), completed.Load())
	assert.Equal(t, int32(5), failed.Load())
	assert.Equal(t, int32(20), finished.Load())
}

func TestJobSystemSubmitAfterShutdown(t *testing.T) {
	js, err := NewJobSystem(1, 0)
	require.NoError(t, err)
	require.NoError(t, js.Shutdown())
	require.NoError(t, js.Shutdown())

	assert.ErrorIs(t, js.Submit(metadata.JobTask{OnStart: func() error { return nil }}), ErrJobSystemClosed)
	assert.Error(t, js.Submit(metadata.JobTask{Name: "empty"}))
}
