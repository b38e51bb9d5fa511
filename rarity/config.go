// Package rarity loads level rarity tables and serves lookups from them.
package rarity

import (
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/lethallib/go-levels/conv"
	"github.com/lethallib/go-levels/ectx"
	"github.com/lethallib/go-levels/level"
	"github.com/lethallib/go-levels/qyaml"
	"github.com/lethallib/go-levels/root"
	"github.com/lethallib/go-levels/stringnorm"
	"github.com/lethallib/go-levels/text"
)

// Config file sections.
const (
	KeyRarities       = "rarities"
	KeyCustomRarities = "custom-rarities"
	KeyCustomLevels   = "custom-levels"
)

// ErrUnknownCategory is returned for built-in rarity keys that are not
// category names.
var ErrUnknownCategory = errors.New("unknown level category")

// ErrUnknownSection is returned for top-level config keys other than
// rarities, custom-rarities and custom-levels.
var ErrUnknownSection = errors.New("unknown rarity config section")

// ErrBadWeight is returned for weights that are not integers.
var ErrBadWeight = errors.New("rarity weight is not an integer")

// Config holds a pair of rarity tables.
type Config struct {
	Builtin level.BuiltinTable
	// Custom is nil when no custom rarities were configured.
	Custom level.CustomTable
	// Levels lists known custom levels by normalized name.
	Levels []string
}

// Resolve looks name up in c's tables.
func (c *Config) Resolve(name string) level.Resolution {
	return level.Resolve(name, c.Builtin, c.Custom)
}

// ParseConfig reads a Config from YAML:
//
//	rarities:
//	  ExperimentationLevel: 10
//	  Vanilla: 99
//	custom-rarities:
//	  "10 Example Moon": 5
//	custom-levels:
//	  - Example Moon
//
// Custom rarity names are normalized; when two normalize alike the later
// entry wins.
func ParseConfig(data []byte) (*Config, error) {
	y, err := qyaml.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse rarity config")
	}

	for _, key := range y.Keys() {
		switch key {
		case KeyRarities, KeyCustomRarities, KeyCustomLevels:
		default:
			return nil, errors.Wrapf(ErrUnknownSection, "%q", key)
		}
	}

	cfg := &Config{Builtin: level.BuiltinTable{}}
	for _, item := range y.Map(KeyRarities) {
		name := text.Str(item.Key)
		c, ok := level.ParseCategory(name)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownCategory, "%s: %q", KeyRarities, name)
		}
		w, err := weight(KeyRarities, name, item.Value)
		if err != nil {
			return nil, err
		}
		cfg.Builtin[c] = w
	}

	if y.Has(KeyCustomRarities) {
		pairs, err := customPairs(y.Map(KeyCustomRarities))
		if err != nil {
			return nil, err
		}
		cfg.Custom = level.NormalizePairs(pairs)
	}

	cfg.Levels = level.NormalizeNames(y.StringSlice(KeyCustomLevels))
	return cfg, nil
}

func customPairs(items yaml.MapSlice) ([]stringnorm.Pair, error) {
	pairs := make([]stringnorm.Pair, 0, len(items))
	for _, item := range items {
		name := text.Str(item.Key)
		w, err := weight(KeyCustomRarities, name, item.Value)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, stringnorm.Pair{Key: name, Value: w})
	}
	return pairs, nil
}

func weight(section, name string, v interface{}) (int, error) {
	w, ok := conv.IInt(v)
	if !ok {
		return 0, errors.Wrapf(ErrBadWeight, "%s: %q: %v", section, name, v)
	}
	return w, nil
}

// LoadConfig reads the rarity config file at path under r.
func LoadConfig(r root.Root, path string) (*Config, error) {
	data, err := r.Bytes(path)
	if err != nil {
		return nil, ectx.Err("load "+r.Path(path), err)
	}
	cfg, err := ParseConfig(data)
	return cfg, ectx.Err(r.Path(path), err)
}

// ParseRarities builds a Config from a compact list such as
// "ExperimentationLevel:10, Vanilla:99, Example Moon:5". Category names fill
// the built-in table; any other name is normalized into the custom table.
// Later entries override earlier ones.
func ParseRarities(list string) (*Config, error) {
	cfg := &Config{Builtin: level.BuiltinTable{}}
	var custom []stringnorm.Pair
	for _, pair := range text.SplitPairs(list, ",", ":") {
		name, value := pair[0], pair[1]
		w, ok := conv.IInt(value)
		if !ok {
			return nil, errors.Wrapf(ErrBadWeight, "%q: %q", name, value)
		}
		if c, isBuiltin := level.ParseCategory(name); isBuiltin {
			cfg.Builtin[c] = w
			continue
		}
		custom = append(custom, stringnorm.Pair{Key: name, Value: w})
	}
	if custom != nil {
		cfg.Custom = level.NormalizePairs(custom)
		cfg.Levels = customLevelNames(cfg.Custom)
	}
	return cfg, nil
}

func customLevelNames(custom level.CustomTable) []string {
	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KnownLevels lists every built-in moon followed by the configured custom
// levels and custom rarity keys, without duplicates.
func (c *Config) KnownLevels() []string {
	var names []string
	for _, l := range level.VanillaLevels() {
		names = append(names, l.String())
	}
	custom := append(append([]string{}, c.Levels...), customLevelNames(c.Custom)...)
	seen := conv.StringSliceSet(names)
	for _, name := range custom {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// Uncovered lists the built-in moons that no entry of the built-in table
// applies to, so they resolve as not found.
func (c *Config) Uncovered() []level.Category {
	var res []level.Category
	for _, l := range level.VanillaLevels() {
		covered := false
		for key := range c.Builtin {
			if key.Contains(l) {
				covered = true
				break
			}
		}
		if !covered {
			res = append(res, l)
		}
	}
	return res
}
