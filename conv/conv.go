// Package conv converts loosely typed values decoded from YAML.
package conv

import (
	"math"
	"strconv"
	"strings"

	"github.com/lethallib/go-levels/text"
)

// IStringSlice converts islice into a []string, provided islice is a
// []interface{}, or returns nil if not.
func IStringSlice(islice interface{}) []string {
	if islice == nil {
		return nil
	}
	if slice, ok := islice.([]interface{}); ok {
		sarr := make([]string, len(slice))
		for i, v := range slice {
			sarr[i] = text.Str(v)
		}
		return sarr
	}
	return nil
}

// IInt converts v into an int. Integer values and strings holding a base-10
// integer convert; floats convert only when they have no fractional part.
func IInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 32)
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}

// StringSliceSet converts a []string into a map[string]bool where the keys
// in the map are values in the []string mapped to true.
func StringSliceSet(slice []string) map[string]bool {
	res := make(map[string]bool, len(slice))
	for _, val := range slice {
		res[val] = true
	}
	return res
}
