package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	c := NewMockClock(start)

	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())

	later := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestMonotonic(t *testing.T) {
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("stalled base still increases", func(t *testing.T) {
		m := NewMonotonic(NewMockClock(start))

		first := m.Now()
		second := m.Now()
		third := m.Now()

		assert.Equal(t, start, first)
		assert.True(t, second.After(first))
		assert.True(t, third.After(second))
	})

	t.Run("base stepping back is ignored", func(t *testing.T) {
		base := NewMockClock(start)
		m := NewMonotonic(base)

		first := m.Now()
		base.Set(start.Add(-time.Hour))
		second := m.Now()

		assert.True(t, second.After(first))
	})

	t.Run("base moving forward is followed", func(t *testing.T) {
		base := NewMockClock(start)
		m := NewMonotonic(base)

		m.Now()
		base.Advance(time.Second)
		assert.Equal(t, start.Add(time.Second), m.Now())
	})

	t.Run("concurrent readers get distinct times", func(t *testing.T) {
		m := NewMonotonic(NewMockClock(start))

		const n = 200
		var wg sync.WaitGroup
		results := make(chan time.Time, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- m.Now()
			}()
		}
		wg.Wait()
		close(results)

		seen := make(map[time.Time]bool, n)
		for ts := range results {
			require.False(t, seen[ts], "duplicate timestamp %s", ts)
			seen[ts] = true
		}
		assert.Len(t, seen, n)
	})
}
