package rarity

import (
	"context"
	"log"
	"sync"

	"github.com/pkg/errors"

	"github.com/lethallib/go-levels/fnotify"
	"github.com/lethallib/go-levels/level"
	"github.com/lethallib/go-levels/root"
	"github.com/lethallib/go-levels/stringnorm"
)

// A Store serves rarity lookups from a Config that can be swapped out while
// lookups are running. Configs handed to a Store must not be modified
// afterwards.
type Store struct {
	root root.Root
	path string

	mu  sync.RWMutex
	cfg *Config

	names *stringnorm.Cached
}

// NewStore creates a Store serving cfg. Stores made this way cannot Reload.
func NewStore(cfg *Config) *Store {
	return &Store{
		cfg:   cfg,
		names: stringnorm.NewCached(level.Normalizer(), 0),
	}
}

// OpenStore loads the config file at path under r into a new Store.
func OpenStore(r root.Root, path string) (*Store, error) {
	cfg, err := LoadConfig(r, path)
	if err != nil {
		return nil, err
	}
	s := NewStore(cfg)
	s.root, s.path = r, path
	return s, nil
}

// Path returns the config file the Store was opened from, or "".
func (s *Store) Path() string {
	if s.path == "" {
		return ""
	}
	return s.root.Path(s.path)
}

// Config returns the Config currently served.
func (s *Store) Config() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Replace makes s serve cfg.
func (s *Store) Replace(cfg *Config) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

// Reload re-reads the Store's config file. On error the current Config is
// kept.
func (s *Store) Reload() error {
	if s.path == "" {
		return errors.New("rarity store has no config file")
	}
	cfg, err := LoadConfig(s.root, s.path)
	if err != nil {
		return err
	}
	s.Replace(cfg)
	return nil
}

// Resolve looks name up in the current Config. Normalized custom names are
// memoized across calls.
func (s *Store) Resolve(name string) level.Resolution {
	cfg := s.Config()
	return s.resolver().Resolve(name, cfg.Builtin, cfg.Custom)
}

func (s *Store) resolver() level.Resolver {
	return level.Resolver{Normalize: func(name string) string {
		return stringnorm.NormalizeNoErr(s.names, name)
	}}
}

// Rarity returns the weight for name and whether any table entry applied.
func (s *Store) Rarity(name string) (int, bool) {
	res := s.Resolve(name)
	return res.Weight, res.Found
}

// Watch reloads the Store whenever its config file changes, until ctx is
// done. Each successful reload is passed to onReload, if set. Failed
// reloads are logged and the previous Config stays in use.
func (s *Store) Watch(ctx context.Context, onReload func(*Config)) error {
	if s.path == "" {
		return errors.New("rarity store has no config file")
	}
	changes := make(chan string)
	watchErr := make(chan error, 1)
	go func() {
		watchErr <- fnotify.New("rarity").Notify(ctx, []string{s.Path()}, changes)
	}()

	for {
		select {
		case file := <-changes:
			if err := s.Reload(); err != nil {
				log.Printf("reload %s failed, keeping previous rarities: %s\n", file, err)
				continue
			}
			log.Printf("reloaded rarities from %s\n", file)
			if onReload != nil {
				onReload(s.Config())
			}
		case err := <-watchErr:
			return err
		}
	}
}
