package footprint

import "sort"

// Selection maps item identifiers to quantities in grams. Depending on the
// caller it describes a meal, a set of dietary choices or an annual
// consumption profile.
type Selection map[string]float64

// IDs returns the selection identifiers in lexical order.
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TotalWeight returns the summed quantity of the selection in grams.
func (s Selection) TotalWeight() float64 {
	var total float64
	for _, id := range s.IDs() {
		total += s[id]
	}
	return total
}

// ItemFootprint is the contribution of a single item to a Result.
type ItemFootprint struct {
	// ID is the item identifier.
	ID string `json:"id"`

	// Grams is the quantity evaluated.
	Grams float64 `json:"grams"`

	// Coefficient is the table coefficient in kg soil per kg food.
	Coefficient float64 `json:"coefficient"`

	// Footprint is Coefficient * Grams / 1000, in kg of soil.
	Footprint float64 `json:"footprint"`
}

// Result holds the per-item breakdown and total of a selection.
type Result struct {
	// Items is sorted by identifier.
	Items []ItemFootprint `json:"items"`

	// Total is the sum of all item footprints in kg of soil.
	Total float64 `json:"total"`

	// MinimumAlternative is the best achievable total over the choice
	// groups the selection was evaluated against, if any.
	MinimumAlternative *float64 `json:"minimum_alternative,omitempty"`
}

// Item returns the contribution for id.
func (r Result) Item(id string) (ItemFootprint, bool) {
	for _, it := range r.Items {
		if it.ID == id {
			return it, true
		}
	}
	return ItemFootprint{}, false
}

// Savings returns Total minus MinimumAlternative, or 0 if no minimum was
// computed.
func (r Result) Savings() float64 {
	if r.MinimumAlternative == nil {
		return 0
	}
	return Savings(r.Total, *r.MinimumAlternative)
}

// SortDescending returns a copy of the items ordered by footprint, largest
// first. Equal footprints are ordered by identifier.
func (r Result) SortDescending() []ItemFootprint {
	items := make([]ItemFootprint, len(r.Items))
	copy(items, r.Items)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Footprint != items[j].Footprint {
			return items[i].Footprint > items[j].Footprint
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// Candidate is one option of a ChoiceGroup.
type Candidate struct {
	ID    string  `json:"id" yaml:"id"`
	Grams float64 `json:"grams" yaml:"grams"`
}

// ChoiceGroup is a set of mutually exclusive candidates. Candidate order is
// significant: it breaks ties in MinimumAlternative and BestChoices.
type ChoiceGroup struct {
	Name       string      `json:"name" yaml:"name"`
	Candidates []Candidate `json:"candidates" yaml:"candidates"`
}

// Contains reports whether id is one of the group's candidates.
func (g ChoiceGroup) Contains(id string) bool {
	for _, c := range g.Candidates {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Candidate returns the candidate for id.
func (g ChoiceGroup) Candidate(id string) (Candidate, bool) {
	for _, c := range g.Candidates {
		if c.ID == id {
			return c, true
		}
	}
	return Candidate{}, false
}

// Pick is the lowest-footprint candidate of a group.
type Pick struct {
	Group     string  `json:"group"`
	ID        string  `json:"id"`
	Footprint float64 `json:"footprint"`
}

// Recommendation is the cheapest item not present in a selection.
type Recommendation struct {
	ID        string  `json:"id"`
	Footprint float64 `json:"footprint"`
}

// Savings returns how much soil would be saved going from selected to
// minimum.
func Savings(selected, minimum float64) float64 {
	return selected - minimum
}
