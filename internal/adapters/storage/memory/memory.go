// Package memory implementa los repositorios sobre maps, sin persistencia.
// Se usa cuando no hay directorio de datos configurado y en tests.
package memory

import (
	"slices"
)

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
