package footprint

import "sort"

// Category is a named, ordered group of item identifiers.
type Category struct {
	Name    string
	Members []string
}

// CategoryOrder is an explicit ordering of categories. Items are sorted by
// category position first and by member position within the category.
type CategoryOrder []Category

// CategoryOf returns the name of the first category listing id.
func (o CategoryOrder) CategoryOf(id string) (string, bool) {
	for _, cat := range o {
		for _, m := range cat.Members {
			if m == id {
				return cat.Name, true
			}
		}
	}
	return "", false
}

// Sort returns a copy of items in category order. Items that belong to no
// category are placed last, ordered by identifier.
func (o CategoryOrder) Sort(items []ItemFootprint) []ItemFootprint {
	rank := make(map[string]int)
	pos := 0
	for _, cat := range o {
		for _, m := range cat.Members {
			if _, seen := rank[m]; !seen {
				rank[m] = pos
				pos++
			}
		}
	}

	sorted := make([]ItemFootprint, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, iok := rank[sorted[i].ID]
		rj, jok := rank[sorted[j].ID]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return sorted[i].ID < sorted[j].ID
		}
	})
	return sorted
}
