package text

import (
	"fmt"
	"strings"
)

// Str converts any value to a string: strings as is, Stringers through
// String, everything else through fmt. nil becomes "".
func Str(any interface{}) string {
	if any == nil {
		return ""
	}
	switch t := any.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// FirstNotEmpty returns the first non-empty string in choices.
func FirstNotEmpty(choices ...string) string {
	for _, val := range choices {
		if val != "" {
			return val
		}
	}
	return ""
}

// SplitPairs splits a list such as "RendLevel:10, Example Moon:5" into
// [name, value] pairs. Items are separated by sep; the name ends at the last
// kv in each item, so names may contain kv themselves. Surrounding space is
// trimmed and empty items are skipped. An item with no kv is returned with
// an empty value.
func SplitPairs(list, sep, kv string) [][]string {
	var res [][]string
	for _, item := range strings.Split(list, sep) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, value := item, ""
		if i := strings.LastIndex(item, kv); i >= 0 {
			name, value = item[:i], item[i+len(kv):]
		}
		res = append(res, []string{strings.TrimSpace(name), strings.TrimSpace(value)})
	}
	return res
}
