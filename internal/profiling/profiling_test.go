package profiling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

func TestTopNOrdersByDuration(t *testing.T) {
	ResetFrame()
	t.Cleanup(ResetFrame)

	record("scene.Render", 4200*time.Microsecond)
	record("view.Prepare", 100*time.Microsecond)
	record("glfw.SwapBuffers", 1500*time.Microsecond)

	assert.Equal(t, "scene.Render:4.2ms, glfw.SwapBuffers:1.5ms", TopN(2))
	assert.Equal(t, "scene.Render:4.2ms, glfw.SwapBuffers:1.5ms, view.Prepare:0.1ms", TopN(10))
}

func TestSumWithPrefixAndReset(t *testing.T) {
	ResetFrame()
	t.Cleanup(ResetFrame)

	record("glfw.PollEvents", time.Millisecond)
	record("glfw.SwapBuffers", 2*time.Millisecond)
	record("scene.Render", 5*time.Millisecond)

	assert.Equal(t, 3*time.Millisecond, SumWithPrefix("glfw."))

	ResetFrame()
	assert.Empty(t, Snapshot())
}

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	t.Cleanup(ResetFrame)

	Track("overlay.Render")()
	Track("overlay.Render")()

	_, ok := Snapshot()["overlay.Render"]
	assert.True(t, ok)
}
