package stringnorm

import "sort"

// A Pair is a named weight in the order it was declared.
type Pair struct {
	Key   string
	Value int
}

// PairKeys normalizes the key of each pair and collects the pairs into a
// map. When two keys normalize to the same string, the later pair wins.
// A nil slice gives a nil map.
func PairKeys(norm Normalizer, pairs []Pair) (map[string]int, error) {
	if pairs == nil {
		return nil, nil
	}
	res := make(map[string]int, len(pairs))
	for _, p := range pairs {
		key, err := apply(norm, p.Key)
		if err != nil {
			return nil, err
		}
		res[key] = p.Value
	}
	return res, nil
}

// MapKeys returns a copy of m with every key normalized and values left
// alone. Go maps carry no insertion order, so keys are visited in sorted
// order: on a collision the lexically greatest raw key wins. A nil map gives
// a nil map.
func MapKeys(norm Normalizer, m map[string]int) (map[string]int, error) {
	if m == nil {
		return nil, nil
	}
	return PairKeys(norm, SortedPairs(m))
}

// SortedPairs flattens m into pairs sorted by key.
func SortedPairs(m map[string]int) []Pair {
	pairs := make([]Pair, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}

// Slice returns a new slice holding the normalized form of each name, in
// the same order. A nil slice is returned as nil.
func Slice(norm Normalizer, names []string) ([]string, error) {
	if names == nil {
		return nil, nil
	}
	res := make([]string, len(names))
	for i, name := range names {
		n, err := apply(norm, name)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}

func apply(norm Normalizer, text string) (string, error) {
	res, err := norm.Normalize(text)
	if err == ErrNormalizeComplete {
		err = nil
	}
	return res, err
}
