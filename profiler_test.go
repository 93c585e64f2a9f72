package bubbles

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfiler_ScopesAndCounts(t *testing.T) {
	p := NewProfiler()
	p.BeginScope("Update")
	p.EndScope("Update")
	p.BeginScope("Render")
	p.EndScope("Render")
	p.BeginScope("Update")
	p.SetCount("Instances", 100)
	p.SetCount("Draws", 100)

	assert.Equal(t, []string{"Update", "Render"}, p.Order)

	stats := p.GetStatsString()
	assert.Less(t, strings.Index(stats, "Update"), strings.Index(stats, "Render"))
	assert.Less(t, strings.Index(stats, "Draws"), strings.Index(stats, "Instances"), "counters are sorted")
}

func TestProfiler_Tick(t *testing.T) {
	p := NewProfiler()

	for i := 0; i < 9; i++ {
		assert.False(t, p.Tick(100*time.Millisecond))
	}
	assert.True(t, p.Tick(100*time.Millisecond))
	assert.InDelta(t, 10.0, p.FPS, 1e-9)

	assert.False(t, p.Tick(0))
}
