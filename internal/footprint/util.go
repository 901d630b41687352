package footprint

// Annualize converts a daily consumption profile into a yearly one.
func Annualize(daily Selection) Selection {
	return scale(daily, DaysPerYear)
}

// AnnualizeGroups returns a copy of groups with daily candidate quantities
// converted to yearly ones.
func AnnualizeGroups(groups []ChoiceGroup) []ChoiceGroup {
	out := make([]ChoiceGroup, len(groups))
	for i, g := range groups {
		out[i] = ChoiceGroup{Name: g.Name, Candidates: make([]Candidate, len(g.Candidates))}
		for j, c := range g.Candidates {
			out[i].Candidates[j] = Candidate{ID: c.ID, Grams: c.Grams * DaysPerYear}
		}
	}
	return out
}

// KilogramsToGrams converts a profile expressed in kilograms into grams.
func KilogramsToGrams(kg Selection) Selection {
	return scale(kg, GramsPerKilogram)
}

// Share is the percentage an item represents of a whole.
type Share struct {
	ID      string  `json:"id"`
	Percent float64 `json:"percent"`
}

// WeightShares returns each item's share of the selection weight, ordered by
// identifier. An empty or zero-weight selection yields all-zero shares.
func WeightShares(s Selection) []Share {
	total := s.TotalWeight()
	shares := make([]Share, 0, len(s))
	for _, id := range s.IDs() {
		shares = append(shares, Share{ID: id, Percent: percent(s[id], total)})
	}
	return shares
}

// FootprintShares returns each item's share of the result total, in the
// order of r.Items.
func FootprintShares(r Result) []Share {
	shares := make([]Share, 0, len(r.Items))
	for _, it := range r.Items {
		shares = append(shares, Share{ID: it.ID, Percent: percent(it.Footprint, r.Total)})
	}
	return shares
}

func percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * PercentScale
}

func scale(s Selection, factor float64) Selection {
	out := make(Selection, len(s))
	for id, q := range s {
		out[id] = q * factor
	}
	return out
}
