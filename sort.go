package ari

import "sort"

// sortAMEntries orders entries by their key's structural hash, stable on
// ties so that the rare hash collision keeps a reproducible order rather
// than an arbitrary one.
func sortAMEntries(entries []AMEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return Hash(entries[i].Key) < Hash(entries[j].Key)
	})
}
