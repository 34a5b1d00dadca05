package core

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsRegisterFireUnregister(t *testing.T) {
	require.True(t, EventInitialize())
	defer EventShutdown()
	assert.False(t, EventInitialize())

	var calls []string
	first, second := "first", "second"
	handler := func(code SystemEventCode, sender, inst interface{}, data EventContext) bool {
		calls = append(calls, inst.(string))
		return inst.(string) == first && data.Data.U32[0] == 1
	}

	require.True(t, EventRegister(EVENT_CODE_RESIZED, first, handler))
	require.True(t, EventRegister(EVENT_CODE_RESIZED, second, handler))
	assert.False(t, EventRegister(EVENT_CODE_RESIZED, first, handler))
	assert.False(t, EventRegister(EVENT_CODE_RESIZED, "third", nil))

	ctx := EventContext{}
	ctx.Data.U32[0] = 1
	assert.True(t, EventFire(EVENT_CODE_RESIZED, nil, ctx))
	assert.Equal(t, []string{first}, calls)

	calls = nil
	assert.False(t, EventFire(EVENT_CODE_RESIZED, nil, EventContext{}))
	assert.Equal(t, []string{first, second}, calls)

	assert.True(t, EventUnregister(EVENT_CODE_RESIZED, first))
	assert.False(t, EventUnregister(EVENT_CODE_RESIZED, first))
	calls = nil
	EventFire(EVENT_CODE_RESIZED, nil, ctx)
	assert.Equal(t, []string{second}, calls)

	assert.False(t, EventFire(EVENT_CODE_APPLICATION_QUIT, nil, ctx))
}

func TestEventsBeforeInitialize(t *testing.T) {
	handler := func(SystemEventCode, interface{}, interface{}, EventContext) bool { return true }
	assert.False(t, EventRegister(EVENT_CODE_RESIZED, nil, handler))
	assert.False(t, EventUnregister(EVENT_CODE_RESIZED, nil))
	assert.False(t, EventFire(EVENT_CODE_RESIZED, nil, EventContext{}))
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < int(AVG_COUNT); i++ {
		m.Update(0.02)
	}
	assert.InDelta(t, 20.0, m.FrameTime(), 1e-9)
	assert.Equal(t, float64(0), m.FPS)

	for i := 0; i < int(AVG_COUNT); i++ {
		m.Update(0.02)
	}
	fps, avg := m.Frame()
	assert.Equal(t, float64(50), fps)
	assert.InDelta(t, 20.0, avg, 1e-9)
}

func TestClock(t *testing.T) {
	c := NewClock()
	c.Update()
	assert.Equal(t, float64(0), c.Elapsed())

	c.Start()
	time.Sleep(5 * time.Millisecond)
	c.Update()
	elapsed := c.Elapsed()
	assert.GreaterOrEqual(t, elapsed, 0.005)

	c.Stop()
	c.Update()
	assert.Equal(t, elapsed, c.Elapsed())
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(nopWriter{})

	require.NoError(t, SetLogLevel("warn"))
	LogInfo("hidden")
	LogWarn("shown %d", 42)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 42")

	assert.Error(t, SetLogLevel("loud"))
	require.NoError(t, SetLogLevel("info"))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
