// Package level names the moons enemies and items can spawn on, and
// resolves spawn rarity weights for them.
package level

import "fmt"

// ID identifies a built-in moon.
type ID uint8

// Built-in moons.
const (
	Experimentation ID = iota + 1
	Assurance
	Vow
	Offense
	March
	Rend
	Dine
	Titan
	Adamance
	Artifice
	Embrion
)

var idNames = map[ID]string{
	Experimentation: "ExperimentationLevel",
	Assurance:       "AssuranceLevel",
	Vow:             "VowLevel",
	Offense:         "OffenseLevel",
	March:           "MarchLevel",
	Rend:            "RendLevel",
	Dine:            "DineLevel",
	Titan:           "TitanLevel",
	Adamance:        "AdamanceLevel",
	Artifice:        "ArtificeLevel",
	Embrion:         "EmbrionLevel",
}

func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return fmt.Sprintf("ID(%d)", uint8(id))
}

// Kind discriminates the variants of a Category.
type Kind uint8

const (
	// KindNone is the empty category. It names no level, but is still a
	// recognized built-in identifier.
	KindNone Kind = iota
	// KindSpecific is a single built-in moon.
	KindSpecific
	// KindVanilla is every built-in moon.
	KindVanilla
	// KindModded is every level that is not built in.
	KindModded
	// KindAll is every level, built in or not.
	KindAll
)

// A Category is a built-in moon or a group of levels. Categories are
// comparable and are used as rarity table keys.
type Category struct {
	Kind Kind
	// ID is set only when Kind == KindSpecific.
	ID ID
}

// Group categories.
var (
	None    = Category{Kind: KindNone}
	Vanilla = Category{Kind: KindVanilla}
	Modded  = Category{Kind: KindModded}
	All     = Category{Kind: KindAll}
)

// Specific returns the category of the single moon id.
func Specific(id ID) Category {
	return Category{Kind: KindSpecific, ID: id}
}

var vanillaLevels = []Category{
	Specific(Experimentation),
	Specific(Assurance),
	Specific(Vow),
	Specific(Offense),
	Specific(March),
	Specific(Rend),
	Specific(Dine),
	Specific(Titan),
	Specific(Adamance),
	Specific(Artifice),
	Specific(Embrion),
}

// VanillaLevels returns every built-in moon, in game order.
func VanillaLevels() []Category {
	res := make([]Category, len(vanillaLevels))
	copy(res, vanillaLevels)
	return res
}

var categoryNames = func() map[string]Category {
	names := map[string]Category{
		"None":    None,
		"Vanilla": Vanilla,
		"Modded":  Modded,
		"All":     All,
	}
	for _, c := range vanillaLevels {
		names[c.ID.String()] = c
	}
	return names
}()

// ParseCategory looks name up among the category identifiers. The match
// is exact and case-sensitive: "RendLevel" and "Vanilla" parse, "rendlevel"
// and "Rend" do not.
func ParseCategory(name string) (Category, bool) {
	c, ok := categoryNames[name]
	return c, ok
}

// MustParseCategory is ParseCategory, panicking on unknown names.
func MustParseCategory(name string) Category {
	c, ok := ParseCategory(name)
	if !ok {
		panic(fmt.Sprintf("level: unknown category %q", name))
	}
	return c
}

// IsBuiltin reports whether name is a category identifier. A custom level
// whose display name happens to equal an identifier is reported as built in.
func IsBuiltin(name string) bool {
	_, ok := categoryNames[name]
	return ok
}

func (c Category) String() string {
	switch c.Kind {
	case KindNone:
		return "None"
	case KindSpecific:
		return c.ID.String()
	case KindVanilla:
		return "Vanilla"
	case KindModded:
		return "Modded"
	case KindAll:
		return "All"
	}
	return fmt.Sprintf("Category(%d)", uint8(c.Kind))
}

// Contains reports whether every level in o is also in c.
func (c Category) Contains(o Category) bool {
	if o.Kind == KindNone {
		return true
	}
	switch c.Kind {
	case KindAll:
		return true
	case KindVanilla:
		return o.Kind == KindVanilla || o.Kind == KindSpecific
	case KindModded:
		return o.Kind == KindModded
	case KindSpecific:
		return o == c
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok := ParseCategory(string(text))
	if !ok {
		return fmt.Errorf("level: unknown category %q", text)
	}
	*c = parsed
	return nil
}
