package governor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMsPerMessageClampsToBounds(t *testing.T) {
	assert.Equal(t, Slowest, MsPerMessage(5*time.Second, 0))
	assert.Equal(t, Fastest, MsPerMessage(0, 1000))
	assert.Equal(t, Slowest, MsPerMessage(10*time.Second, 1))
	assert.Equal(t, 10*time.Millisecond, MsPerMessage(100*time.Millisecond, 10))
}

func TestGovernorSmartPollingOnAdoptsSample(t *testing.T) {
	g := New(true)
	got := g.Submit(100*time.Millisecond, 10)
	assert.Equal(t, 10*time.Millisecond, got)
}

func TestGovernorSmartPollingOffStaysDefault(t *testing.T) {
	g := New(false)
	got := g.Submit(100*time.Millisecond, 10)
	assert.Equal(t, Default, got)
}

func TestGovernorIdleRampsToSlowest(t *testing.T) {
	g := New(true)
	var last time.Duration
	for i := 0; i < 7; i++ {
		last = g.Submit(100*time.Millisecond, 0)
	}
	assert.Equal(t, Slowest, last)
}

func TestGovernorNeverExceedsSlowest(t *testing.T) {
	g := New(true)
	for i := 0; i < 50; i++ {
		got := g.Submit(10*time.Second, 0)
		assert.LessOrEqual(t, got, Slowest)
	}
}

func TestGovernorCollapsesImmediatelyOnTrafficResume(t *testing.T) {
	g := New(true)
	for i := 0; i < 7; i++ {
		g.Submit(100*time.Millisecond, 0)
	}
	// Idle ramp reached the ceiling; a burst of traffic should collapse
	// the base back down immediately rather than ramping down gradually.
	got := g.Submit(1*time.Millisecond, 100)
	assert.Less(t, got, Slowest)
}

func TestGovernorResetClearsHistory(t *testing.T) {
	g := New(true)
	for i := 0; i < 7; i++ {
		g.Submit(100*time.Millisecond, 0)
	}
	g.Reset()
	got := g.Submit(100*time.Millisecond, 10)
	assert.Equal(t, 10*time.Millisecond, got)
}
