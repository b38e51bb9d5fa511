package rarity

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lethallib/go-levels/level"
	"github.com/lethallib/go-levels/root"
)

func writeConfig(t *testing.T, dir, doc string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rarities.yml"), []byte(doc), 0644))
}

func TestStoreRarity(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)
	s := NewStore(cfg)

	w, ok := s.Rarity("10 Example Moon")
	assert.True(t, ok)
	assert.Equal(t, 6, w)
	w, ok = s.Rarity("10 Example Moon")
	assert.True(t, ok)
	assert.Equal(t, 6, w)
	assert.Equal(t, 1, s.names.Len(), "custom names are memoized")

	res := s.Resolve("TitanLevel")
	assert.Equal(t, level.TierVanilla, res.Tier)
	assert.Equal(t, 1, s.names.Len(), "built-in names skip the normalizer")

	res = s.Resolve("Rend")
	assert.False(t, res.Builtin)
	assert.Equal(t, level.TierModded, res.Tier)

	assert.Error(t, s.Reload())
	assert.Equal(t, "", s.Path())
}

func TestStoreReload(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "rarities:\n  Vanilla: 10\n")
	s, err := OpenStore(root.Root(dir), "rarities.yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rarities.yml"), s.Path())

	w, _ := s.Rarity("DineLevel")
	assert.Equal(t, 10, w)

	writeConfig(t, dir, "rarities:\n  Vanilla: 20\n")
	require.NoError(t, s.Reload())
	w, _ = s.Rarity("DineLevel")
	assert.Equal(t, 20, w)

	writeConfig(t, dir, "rarities:\n  Dine: 30\n")
	assert.Error(t, s.Reload())
	w, _ = s.Rarity("DineLevel")
	assert.Equal(t, 20, w, "failed reload keeps the previous config")

	_, err = OpenStore(root.Root(dir), "missing.yml")
	assert.Error(t, err)
}

func TestStoreConcurrentReplace(t *testing.T) {
	s := NewStore(&Config{Builtin: level.BuiltinTable{level.All: 1}})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if i%2 == 0 {
					s.Replace(&Config{Builtin: level.BuiltinTable{level.All: j}})
					continue
				}
				_, ok := s.Rarity("Example Moon")
				assert.True(t, ok)
			}
		}(i)
	}
	wg.Wait()
}

func TestStoreWatch(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "rarities:\n  All: 1\n")
	s, err := OpenStore(root.Root(dir), "rarities.yml")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloaded := make(chan *Config, 16)
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx, func(c *Config) { reloaded <- c }) }()

	tick := time.NewTicker(500 * time.Millisecond)
	defer tick.Stop()
	deadline := time.After(10 * time.Second)
	for {
		select {
		case cfg := <-reloaded:
			assert.Equal(t, 2, cfg.Builtin[level.All])
			w, _ := s.Rarity("Example Moon")
			assert.Equal(t, 2, w)
			cancel()
			assert.NoError(t, <-done)
			return
		case <-tick.C:
			writeConfig(t, dir, "rarities:\n  All: 2\n")
		case <-deadline:
			t.Fatal("config was not reloaded")
		}
	}
}

func TestStoreWatchWithoutFile(t *testing.T) {
	s := NewStore(&Config{})
	assert.Error(t, s.Watch(context.Background(), nil))
}
