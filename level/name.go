package level

import "github.com/lethallib/go-levels/stringnorm"

// Suffix ends every normalized level name.
const Suffix = "Level"

// nameNormalizer turns a moon's display name into the name LethalLevelLoader
// registers it under, so that custom rarity keys match whether or not
// LethalLevelLoader is installed.
var nameNormalizer = stringnorm.Combine(
	stringnorm.SkipToLetters,
	stringnorm.StripSpecial,
	stringnorm.Suffix{Suffix: Suffix},
)

// Normalizer returns the level name normalizer.
func Normalizer() stringnorm.Normalizer {
	return nameNormalizer
}

// Normalize converts a level display name to its canonical form:
//
//	"10 Example Moon" -> "Example MoonLevel"
//	"Example Moon!"   -> "Example MoonLevel"
//	"RendLevel"       -> "RendLevel"
//
// The result holds only letters, digits and spaces, starts with a letter
// unless nothing but the suffix is left, and always ends in "Level".
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	return stringnorm.NormalizeNoErr(nameNormalizer, name)
}

// NormalizePtr is Normalize for an optional name; nil yields "".
func NormalizePtr(name *string) string {
	if name == nil {
		return ""
	}
	return Normalize(*name)
}

// NormalizeRarities returns a copy of rarities keyed by normalized names.
// Colliding keys keep the weight of the lexically greatest raw name. A nil
// map stays nil.
func NormalizeRarities(rarities map[string]int) map[string]int {
	res, _ := stringnorm.MapKeys(nameNormalizer, rarities)
	return res
}

// NormalizePairs builds a custom rarity table from ordered name/weight
// pairs. Colliding keys keep the weight of the later pair. A nil slice gives
// a nil table.
func NormalizePairs(pairs []stringnorm.Pair) CustomTable {
	res, _ := stringnorm.PairKeys(nameNormalizer, pairs)
	return res
}

// NormalizeNames returns the normalized form of each name, in order. A nil
// slice stays nil.
func NormalizeNames(names []string) []string {
	res, _ := stringnorm.Slice(nameNormalizer, names)
	return res
}
