package level

// BuiltinTable maps categories to spawn weights.
type BuiltinTable map[Category]int

// CustomTable maps normalized custom level names to spawn weights. A nil
// CustomTable means there is no custom table.
type CustomTable map[string]int

// Tier is the step of the rarity lookup that produced a weight.
type Tier uint8

// Lookup tiers, in the order they are tried.
const (
	TierNone    Tier = iota // nothing matched
	TierExact               // built-in name with its own entry
	TierVanilla             // built-in name, Vanilla entry
	TierCustom              // custom name with its own entry
	TierModded              // custom name, Modded entry
	TierAll                 // any name, All entry
)

var tierNames = [...]string{"none", "exact", "vanilla", "custom", "modded", "all"}

func (t Tier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return "unknown"
}

// Resolution describes how a level name was matched against rarity tables.
type Resolution struct {
	// Name is the name that was looked up.
	Name string
	// Key is the table key the name was compared against: Name itself for
	// built-in names, its normalized form otherwise.
	Key string
	// Builtin reports whether Name parsed as a Category.
	Builtin  bool
	Category Category
	Tier     Tier
	Weight   int
	Found    bool
}

// Resolve finds the weight that applies to the level name. Built-in names
// are tried against their own category, then Vanilla; custom names are
// normalized and tried against the custom table, then Modded. All is tried
// last for every name. The first entry found wins.
//
// Neither table is modified; custom may be nil.
func Resolve(name string, builtin BuiltinTable, custom CustomTable) Resolution {
	return Resolver{}.Resolve(name, builtin, custom)
}

// A Resolver resolves rarities with a custom name normalizer.
type Resolver struct {
	// Normalize converts custom level names to table keys. It must agree
	// with the package Normalize; nil selects Normalize itself.
	Normalize func(string) string
}

// Resolve is the package Resolve, normalizing custom names with r.Normalize.
func (r Resolver) Resolve(name string, builtin BuiltinTable, custom CustomTable) Resolution {
	res := Resolution{Name: name, Key: name}
	res.Category, res.Builtin = ParseCategory(name)
	if !res.Builtin {
		if r.Normalize != nil {
			res.Key = r.Normalize(name)
		} else {
			res.Key = Normalize(name)
		}
	}

	if res.Builtin {
		if w, ok := builtin[res.Category]; ok {
			return res.found(TierExact, w)
		}
		if w, ok := builtin[Vanilla]; ok {
			return res.found(TierVanilla, w)
		}
	} else {
		if w, ok := custom[res.Key]; ok {
			return res.found(TierCustom, w)
		}
		if w, ok := builtin[Modded]; ok {
			return res.found(TierModded, w)
		}
	}
	if w, ok := builtin[All]; ok {
		return res.found(TierAll, w)
	}
	return res
}

func (r Resolution) found(tier Tier, weight int) Resolution {
	r.Tier = tier
	r.Weight = weight
	r.Found = true
	return r
}

// ResolveRarity returns the spawn weight for the level name and whether any
// table entry applied. When found is false the caller picks the default.
func ResolveRarity(name string, builtin BuiltinTable, custom CustomTable) (weight int, found bool) {
	res := Resolve(name, builtin, custom)
	return res.Weight, res.Found
}
