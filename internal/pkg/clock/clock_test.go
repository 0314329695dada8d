//go:build unit

package clock_test

import (
	"sync"
	"testing"
	"time"

	"vinyl-record-house/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRealClockIsUTCMicroseconds(t *testing.T) {
	now := clock.NewRealClock().Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}

func TestMockClockConcurrentAdvance(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); clk.Add(time.Minute) }()
		go func() { defer wg.Done(); _ = clk.Now() }()
	}
	wg.Wait()

	assert.Equal(t, start.Add(10*time.Minute), clk.Now())

	clk.Set(start)
	assert.Equal(t, start, clk.Now())
}
