package world

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/facetlabs/facet/domain"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yml")
	require.NoError(t, os.WriteFile(path, SampleYAML(), 0644))

	var mu sync.Mutex
	var reloaded *domain.Graph

	w, err := NewWatcher(path, 1, func(g *domain.Graph) {
		mu.Lock()
		defer mu.Unlock()
		reloaded = g
	})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	// Give the watcher a moment to arm before writing.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("owners:\n  - id: o9\n    name: Rewritten\n"), 0644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		if reloaded == nil {
			return false
		}
		_, ok := reloaded.NodeByScope(domain.NewScope(domain.KindOwner, "o9"))
		return ok
	}, 3*time.Second, 20*time.Millisecond, "watcher should deliver the rewritten world")
}

func TestWatcherKeepsOldWorldOnBrokenWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yml")
	require.NoError(t, os.WriteFile(path, SampleYAML(), 0644))

	var mu sync.Mutex
	reloads := 0

	w, err := NewWatcher(path, 1, func(*domain.Graph) {
		mu.Lock()
		defer mu.Unlock()
		reloads++
	})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("owners: [\n"), 0644))

	// The broken document must never reach the callback.
	time.Sleep(300 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	require.Zero(t, reloads)
}
