package util

import "sort"

// SortedKeys returns the keys of m in ascending order
func SortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// UnionKeys returns the keys present in a or b, each once and
// in ascending order. Either map may be nil.
func UnionKeys[V any](a, b map[int]V) []int {
	seen := make(map[int]struct{}, len(a)+len(b))
	keys := make([]int, 0, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Ints(keys)
	return keys
}
