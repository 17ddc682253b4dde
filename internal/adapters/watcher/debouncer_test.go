package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargokit/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var calls [][]string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			calls = append(calls, paths)
		})

		d.Add("/project/src/lib.rs")
		d.Add("/project/src/main.rs")
		d.Add("/project/src/lib.rs")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/project/src/lib.rs", "/project/src/main.rs"}, calls[0])
	})
}

func TestDebouncer_WindowRestartsOnAdd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		callCount := 0

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			defer mu.Unlock()
			callCount++
		})

		d.Add("/project/src/a.rs")
		time.Sleep(80 * time.Millisecond)
		d.Add("/project/src/b.rs")
		time.Sleep(80 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		assert.Equal(t, 0, callCount)
		mu.Unlock()

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		assert.Equal(t, 1, callCount)
		mu.Unlock()
	})
}

func TestDebouncer_SeparateBatches(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var calls [][]string

		d := watcher.NewDebouncer(50*time.Millisecond, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			calls = append(calls, paths)
		})

		d.Add("/project/src/a.rs")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("/project/src/b.rs")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, calls, 2)
		assert.Equal(t, []string{"/project/src/a.rs"}, calls[0])
		assert.Equal(t, []string{"/project/src/b.rs"}, calls[1])
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var received []string
		d := watcher.NewDebouncer(time.Hour, func(paths []string) {
			received = paths
		})

		d.Add("/project/Cargo.toml")
		require.Equal(t, 1, d.Pending())

		d.Flush()

		assert.Equal(t, []string{"/project/Cargo.toml"}, received)
		assert.Equal(t, 0, d.Pending())

		// Nothing left for the timer.
		received = nil
		time.Sleep(2 * time.Hour)
		synctest.Wait()
		assert.Nil(t, received)
	})
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	called := false
	d := watcher.NewDebouncer(time.Second, func([]string) { called = true })

	d.Flush()

	assert.False(t, called)
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		called := false
		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) { called = true })

		d.Add("/project/src/lib.rs")
		d.Stop()

		time.Sleep(time.Second)
		synctest.Wait()

		assert.False(t, called)
		assert.Equal(t, 0, d.Pending())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/project/src/lib.rs")

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 0, d.Pending())
	})
}
